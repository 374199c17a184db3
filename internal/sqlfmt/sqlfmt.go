// Package sqlfmt provides cosmetic formatting for recovered SQL and
// parameter lists. Nothing here changes SQL semantics.
package sqlfmt

import (
	"fmt"
	"strings"

	"github.com/ktsuji/sqltrace/internal/sqlfill"
)

// clauseKeywords get a line break inserted before them. Multi-word keywords
// are listed after their prefixes would fail the whole-word boundary check
// ("OR" never matches inside "ORDER BY" because of the trailing space rule).
var clauseKeywords = []string{
	"SELECT", "FROM", "WHERE", "AND", "OR", "ORDER BY", "GROUP BY",
}

// BreakClauses inserts a newline before each major clause keyword that is
// bounded by single spaces, matching case-insensitively but leaving the
// keyword text untouched. Applying it to already-broken text is a no-op,
// since broken keywords are preceded by a newline rather than a space.
func BreakClauses(sql string) string {
	var b strings.Builder
	b.Grow(len(sql))

	for i := 0; i < len(sql); i++ {
		if sql[i] == ' ' && keywordAt(sql[i+1:]) {
			b.WriteByte('\n')
			continue
		}
		b.WriteByte(sql[i])
	}

	return strings.TrimSpace(b.String())
}

// keywordAt reports whether s starts with a clause keyword followed by a
// space (the whole-word boundary). The fold comparison stays on the original
// bytes: an uppercased copy of the input could shift byte offsets, since
// ToUpper is not length-preserving for all of Unicode. Keywords are ASCII, so
// an equal-byte-length prefix that cuts a multibyte rune can never fold-match
// one.
func keywordAt(s string) bool {
	for _, kw := range clauseKeywords {
		if len(s) > len(kw) && s[len(kw)] == ' ' && strings.EqualFold(s[:len(kw)], kw) {
			return true
		}
	}
	return false
}

// FormatParams renders a parameter set for display, one binding per line in
// position order:
//
//	[1] String: hello
//	[2] Int: 42
func FormatParams(params sqlfill.ParamSet) string {
	if params.Empty() {
		return ""
	}
	var b strings.Builder
	for _, pos := range params.Positions() {
		binding := params[pos]
		fmt.Fprintf(&b, "  [%d] %s: %s\n", binding.Position, binding.Type, binding.Raw)
	}
	return b.String()
}
