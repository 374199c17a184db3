// Package sqlfill decodes logged parameter dumps and substitutes them into
// SQL templates.
package sqlfill

import (
	"strconv"
	"strings"
)

// Binding is one positional parameter as logged: "[Type:position:value]".
type Binding struct {
	Type     string
	Position int // 1-based
	Raw      string
}

// ParamSet maps 1-based positions to bindings. Positions need not be
// contiguous or appear in order on the source line.
type ParamSet map[int]Binding

// Empty reports whether the set holds no bindings.
func (p ParamSet) Empty() bool { return len(p) == 0 }

// Positions returns the bound positions in ascending order.
func (p ParamSet) Positions() []int {
	out := make([]int, 0, len(p))
	for pos := range p {
		out = append(out, pos)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// ParseParams decodes a parameter-dump capture of the form
// "[type:pos:value][type:pos:value]...".
//
// Each bracket is split on its first two colons only, so values may contain
// colons. A bracket that does not yield a (type, integer position, value)
// triple is dropped silently: logs are not guaranteed well-formed and one bad
// token must not discard its siblings. Duplicate positions keep the last
// occurrence.
func ParseParams(raw string) ParamSet {
	set := make(ParamSet)
	for i := 0; i < len(raw); {
		open := strings.IndexByte(raw[i:], '[')
		if open < 0 {
			break
		}
		start := i + open + 1
		closing := strings.IndexByte(raw[start:], ']')
		if closing < 0 {
			break
		}
		content := raw[start : start+closing]
		i = start + closing + 1

		if b, ok := parseBinding(content); ok {
			set[b.Position] = b
		}
	}
	return set
}

func parseBinding(content string) (Binding, bool) {
	parts := strings.SplitN(content, ":", 3)
	if len(parts) != 3 {
		return Binding{}, false
	}
	pos, err := strconv.Atoi(parts[1])
	if err != nil {
		return Binding{}, false
	}
	return Binding{Type: parts[0], Position: pos, Raw: parts[2]}, true
}
