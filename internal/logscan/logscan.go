// Package logscan locates SQL statement and parameter records in DAO-style
// application logs.
//
// The log grammar is line-oriented: a statement line carries
// "id=<ID> sql=<text>" and zero or more later lines carry
// "id=<ID> params=[type:pos:value]...". Matching is done with direct string
// search rather than regular expressions so behavior stays auditable and
// immune to backtracking blowups on hostile log content.
package logscan

import (
	"strings"
)

const (
	idTag     = "id="
	sqlTag    = "sql="
	paramsTag = "params="
)

// StatementMatch is a located "id=... sql=..." record.
type StatementMatch struct {
	ID        string
	Template  string // SQL text after sql=, right-trimmed
	LineIndex int
	Timestamp string // empty if no timestamp prefix on this or the previous line
	Found     bool
}

// ParamMatch is a located "id=... params=[...]" record.
type ParamMatch struct {
	Raw       string // bracket list text, starting at the first '['
	LineIndex int
	Timestamp string // empty if the line has no timestamp prefix
}

// SplitLines breaks normalized text into logical lines. Trailing carriage
// returns are stripped; empty lines are kept because callers do line-index
// arithmetic (e.g. the caller-resolution window) over the result.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// FindStatement returns the first statement record for id. The ID must match
// exactly: a line holding id=abcd never matches a search for "abc".
func FindStatement(lines []string, id string) StatementMatch {
	for i, line := range lines {
		template, ok := statementText(line, id)
		if !ok {
			continue
		}
		return StatementMatch{
			ID:        id,
			Template:  strings.TrimRight(template, " \t"),
			LineIndex: i,
			Timestamp: timestampNear(lines, i),
			Found:     true,
		}
	}
	return StatementMatch{ID: id}
}

// FindLastStatement scans the whole file and returns the final statement
// record, recovering the ID that produced it. Used for "show the most recent
// query" behavior.
func FindLastStatement(lines []string) StatementMatch {
	var last StatementMatch
	for i, line := range lines {
		id, template, ok := anyStatementText(line)
		if !ok {
			continue
		}
		last = StatementMatch{
			ID:        id,
			Template:  strings.TrimRight(template, " \t"),
			LineIndex: i,
			Timestamp: timestampNear(lines, i),
			Found:     true,
		}
	}
	return last
}

// FindParamSets returns every parameter record for id, in file order.
func FindParamSets(lines []string, id string) []ParamMatch {
	var matches []ParamMatch
	for i, line := range lines {
		raw, ok := paramsText(line, id)
		if !ok {
			continue
		}
		matches = append(matches, ParamMatch{
			Raw:       raw,
			LineIndex: i,
			Timestamp: TimestampPrefix(line),
		})
	}
	return matches
}

// statementText matches "id=<id><ws>sql=" on one line and returns the text
// after sql=.
func statementText(line, id string) (string, bool) {
	rest, ok := afterTag(line, id, sqlTag)
	if !ok {
		return "", false
	}
	return strings.TrimLeft(rest, " \t"), true
}

// paramsText matches "id=<id><ws>params=[" on one line and returns the
// bracket list starting at '['.
func paramsText(line, id string) (string, bool) {
	rest, ok := afterTag(line, id, paramsTag)
	if !ok || !strings.HasPrefix(rest, "[") {
		return "", false
	}
	return rest, true
}

// afterTag finds "id=<id>" followed by whitespace and tag, returning the text
// after the tag. The byte after the ID must be whitespace so that partial ID
// prefixes never match.
func afterTag(line, id, tag string) (string, bool) {
	from := 0
	for {
		i := strings.Index(line[from:], idTag)
		if i < 0 {
			return "", false
		}
		pos := from + i + len(idTag)
		from = pos
		if !strings.HasPrefix(line[pos:], id) {
			continue
		}
		rest := line[pos+len(id):]
		trimmed := strings.TrimLeft(rest, " \t")
		if len(trimmed) == len(rest) {
			continue // ID not followed by whitespace: longer token or no separator
		}
		if !strings.HasPrefix(trimmed, tag) {
			continue
		}
		return trimmed[len(tag):], true
	}
}

// anyStatementText matches "id=<token><ws>sql=" for any non-space token.
func anyStatementText(line string) (id, template string, ok bool) {
	from := 0
	for {
		i := strings.Index(line[from:], idTag)
		if i < 0 {
			return "", "", false
		}
		pos := from + i + len(idTag)
		from = pos

		end := pos
		for end < len(line) && line[end] != ' ' && line[end] != '\t' {
			end++
		}
		if end == pos || end == len(line) {
			continue
		}
		rest := strings.TrimLeft(line[end:], " \t")
		if !strings.HasPrefix(rest, sqlTag) {
			continue
		}
		return line[pos:end], strings.TrimLeft(rest[len(sqlTag):], " \t"), true
	}
}

// timestampNear returns the timestamp prefix of line i, falling back to the
// previous line (some log layouts put the timestamp on its own line).
func timestampNear(lines []string, i int) string {
	if ts := TimestampPrefix(lines[i]); ts != "" {
		return ts
	}
	if i > 0 {
		return TimestampPrefix(lines[i-1])
	}
	return ""
}

// TimestampPrefix extracts a leading "YYYY/MM/DD HH:MM:SS" timestamp from a
// line, or returns "".
func TimestampPrefix(line string) string {
	// Date part: dddd/dd/dd
	if len(line) < 10 || !digits(line[0:4]) || line[4] != '/' ||
		!digits(line[5:7]) || line[7] != '/' || !digits(line[8:10]) {
		return ""
	}
	// One or more spaces/tabs between date and time.
	i := 10
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i == 10 || len(line) < i+8 {
		return ""
	}
	t := line[i : i+8]
	if !digits(t[0:2]) || t[2] != ':' || !digits(t[3:5]) || t[5] != ':' || !digits(t[6:8]) {
		return ""
	}
	return line[:i+8]
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
