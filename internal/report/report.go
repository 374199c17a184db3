// Package report renders an execution list as a standalone HTML document.
package report

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/ktsuji/sqltrace/internal/atomicfile"
	"github.com/ktsuji/sqltrace/internal/engine"
	"github.com/ktsuji/sqltrace/internal/sqlfmt"
)

//go:embed report.gohtml
var templateFS embed.FS

var reportTemplate = template.Must(template.ParseFS(templateFS, "report.gohtml"))

// Params bundle the non-execution inputs of a report.
type Params struct {
	Title      string
	SourceFile string
}

type reportData struct {
	Title       string
	SourceFile  string
	GeneratedAt string
	Executions  []executionCard
}

type executionCard struct {
	Index     int
	ID        string
	Sequence  int
	Timestamp string
	Caller    string
	PrettySQL string
	Filled    bool
	Params    []paramRow
}

type paramRow struct {
	Position int
	Type     string
	Value    string
}

// Generate renders the HTML document for execs. The execution list is
// consumed as-is; the report never re-parses or re-substitutes anything.
func Generate(execs []engine.Execution, p Params) (string, error) {
	data := reportData{
		Title:       p.Title,
		SourceFile:  p.SourceFile,
		GeneratedAt: time.Now().Format("2006/01/02 15:04:05"),
		Executions:  make([]executionCard, 0, len(execs)),
	}
	if data.Title == "" {
		data.Title = "SQL Report"
	}

	for i, e := range execs {
		card := executionCard{
			Index:     i + 1,
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			Caller:    e.Caller,
			PrettySQL: sqlfmt.BreakClauses(e.FilledSQL),
			Filled:    e.Filled() || !strings.Contains(e.Template, "?"),
		}
		for _, pos := range e.Params.Positions() {
			b := e.Params[pos]
			card.Params = append(card.Params, paramRow{
				Position: b.Position,
				Type:     b.Type,
				Value:    b.Raw,
			})
		}
		data.Executions = append(data.Executions, card)
	}

	var b strings.Builder
	if err := reportTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return b.String(), nil
}

// Save writes an already-rendered report atomically.
func Save(path, html string) error {
	if err := atomicfile.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// DefaultFilename derives an output filename from the report title, e.g.
// "Checkout Queries" -> "checkout-queries.html".
func DefaultFilename(title string) string {
	s := slug.Make(title)
	if s == "" {
		s = "sql-report"
	}
	return s + ".html"
}
