package cli

import (
	"fmt"
	"strings"

	"github.com/ktsuji/sqltrace/internal/engine"
	"github.com/ktsuji/sqltrace/internal/sqlfmt"
	"github.com/ktsuji/sqltrace/internal/ui"
)

// executionView is the JSON shape of one recovered execution.
type executionView struct {
	ID        string      `json:"id"`
	Sequence  int         `json:"sequence"`
	Timestamp string      `json:"timestamp,omitempty"`
	Caller    string      `json:"caller"`
	Template  string      `json:"template"`
	SQL       string      `json:"sql"`
	Filled    bool        `json:"filled"`
	Params    []paramView `json:"params,omitempty"`
}

type paramView struct {
	Position int    `json:"position"`
	Type     string `json:"type"`
	Value    string `json:"value"`
}

func executionViews(execs []engine.Execution) []executionView {
	views := make([]executionView, 0, len(execs))
	for _, e := range execs {
		views = append(views, executionView{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			Caller:    e.Caller,
			Template:  e.Template,
			SQL:       e.FilledSQL,
			Filled:    e.Filled(),
			Params:    paramViews(e),
		})
	}
	return views
}

func paramViews(e engine.Execution) []paramView {
	var views []paramView
	for _, pos := range e.Params.Positions() {
		b := e.Params[pos]
		views = append(views, paramView{Position: b.Position, Type: b.Type, Value: b.Raw})
	}
	return views
}

// printExecutions renders an execution set in human-readable form. All
// executions share one ID and caller, so those print once in the header.
func printExecutions(execs []engine.Execution) {
	if len(execs) == 0 {
		return
	}

	first := execs[0]
	fmt.Printf("%s  %s  %s\n",
		ui.Header(first.ID),
		first.Caller,
		ui.Hint(ui.Count(len(execs), "execution", "executions")))

	for _, e := range execs {
		fmt.Println()
		printExecutionBody(e, len(execs))
	}
}

func printExecutionBody(e engine.Execution, total int) {
	meta := fmt.Sprintf("#%d", e.Sequence)
	if total == 1 {
		meta = ""
	}
	if e.Timestamp != "" {
		if meta != "" {
			meta += "  "
		}
		meta += e.Timestamp
	}
	if meta != "" {
		fmt.Println(ui.Muted.Render(meta))
	}

	fmt.Println(ui.SQL(sqlfmt.BreakClauses(e.FilledSQL)))

	if params := sqlfmt.FormatParams(e.Params); params != "" {
		fmt.Print(params)
	}
	if strings.Contains(e.Template, "?") && !e.Filled() {
		fmt.Println(ui.Warning("parameters could not be substituted; showing the raw template"))
	}
}
