// Package engine correlates statement and parameter records into concrete
// executions and groups them by template.
//
// Every operation takes the decoded log text as an explicit argument and
// returns owned values; the package keeps no state between calls, so
// concurrent invocations over the same text are safe. Each call is one or two
// linear scans over the text; there is no cache to invalidate and no
// incremental parsing.
package engine

import (
	"github.com/ktsuji/sqltrace/internal/logscan"
	"github.com/ktsuji/sqltrace/internal/sqlfill"
	"github.com/ktsuji/sqltrace/internal/sqlfmt"
)

// Execution is one concrete statement+parameters pairing recovered from the
// log. Values are never mutated after construction.
type Execution struct {
	ID        string
	Timestamp string
	Caller    string
	Template  string
	FilledSQL string // equals Template when substitution was impossible
	Params    sqlfill.ParamSet
	Sequence  int // 1-based, strictly increasing per ID
}

// Filled reports whether placeholder substitution actually produced a
// runnable statement distinct from the raw template.
func (e Execution) Filled() bool {
	return !e.Params.Empty() && e.FilledSQL != e.Template
}

// QueryGroup collects the executions sharing one SQL template, in file-scan
// order. Groups are non-empty by construction.
type QueryGroup struct {
	Template       string
	PrettyTemplate string
	Executions     []Execution
}

// IDSummary re-exports the logscan summary for callers that only import the
// engine.
type IDSummary = logscan.IDSummary

// LocateByID returns one execution per parameter record logged for id, or a
// single unfilled execution when the statement was logged without parameters.
// An empty result means no statement record exists for id (NotFound); callers
// surface that as a message, not a crash.
func LocateByID(text, id string) []Execution {
	lines := logscan.SplitLines(text)
	stmt := logscan.FindStatement(lines, id)
	if !stmt.Found {
		return nil
	}
	return buildExecutions(lines, stmt)
}

// LocateLast returns the execution set for the most recent statement in the
// file, recovering its ID. The last statement's template wins even if the
// same ID appeared earlier with a different one.
func LocateLast(text string) []Execution {
	lines := logscan.SplitLines(text)
	stmt := logscan.FindLastStatement(lines)
	if !stmt.Found {
		return nil
	}
	return buildExecutions(lines, stmt)
}

// IndexIDs lists all IDs that have a statement record, with parameter-set
// counts, in first-seen order. It never decodes parameters or substitutes
// placeholders: index construction stays cheap relative to a full locate.
func IndexIDs(text string) []IDSummary {
	return logscan.IndexIDs(logscan.SplitLines(text))
}

// GroupByTemplate partitions executions by exact template equality,
// preserving first-seen group order and within-group execution order.
func GroupByTemplate(execs []Execution) []QueryGroup {
	var groups []QueryGroup
	at := make(map[string]int)

	for _, exec := range execs {
		if i, ok := at[exec.Template]; ok {
			groups[i].Executions = append(groups[i].Executions, exec)
			continue
		}
		at[exec.Template] = len(groups)
		groups = append(groups, QueryGroup{
			Template:       exec.Template,
			PrettyTemplate: sqlfmt.BreakClauses(exec.Template),
			Executions:     []Execution{exec},
		})
	}
	return groups
}

// buildExecutions pairs one located statement with all parameter records for
// its ID. Substitution failures degrade that one execution to the raw
// template; siblings are unaffected.
func buildExecutions(lines []string, stmt logscan.StatementMatch) []Execution {
	caller := logscan.ResolveCaller(lines, stmt.LineIndex)
	paramSets := logscan.FindParamSets(lines, stmt.ID)

	if len(paramSets) == 0 {
		return []Execution{{
			ID:        stmt.ID,
			Timestamp: stmt.Timestamp,
			Caller:    caller,
			Template:  stmt.Template,
			FilledSQL: stmt.Template,
			Params:    sqlfill.ParamSet{},
			Sequence:  1,
		}}
	}

	execs := make([]Execution, 0, len(paramSets))
	for i, pm := range paramSets {
		params := sqlfill.ParseParams(pm.Raw)

		filled := stmt.Template
		if !params.Empty() {
			if s, err := sqlfill.Fill(stmt.Template, params); err == nil {
				filled = s
			}
		}

		ts := pm.Timestamp
		if ts == "" {
			ts = stmt.Timestamp
		}

		execs = append(execs, Execution{
			ID:        stmt.ID,
			Timestamp: ts,
			Caller:    caller,
			Template:  stmt.Template,
			FilledSQL: filled,
			Params:    params,
			Sequence:  i + 1,
		})
	}
	return execs
}
