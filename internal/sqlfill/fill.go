package sqlfill

import (
	"errors"
	"fmt"
	"strings"
)

// Substitution failure modes. Callers are expected to fall back to the
// unfilled template; a bad parameter must never abort sibling executions.
var (
	ErrUnsupportedType = errors.New("unsupported parameter type")
	ErrMissingValue    = errors.New("missing parameter value")
)

// numericTypes are substituted verbatim, unquoted.
var numericTypes = map[string]bool{
	"bigdecimal": true,
	"number":     true,
	"int":        true,
	"long":       true,
	"float":      true,
}

// Fill replaces each ? placeholder in template with the binding at the
// matching position: the Nth ? consumes position N regardless of the order
// bindings appeared on the source line.
//
// String values are wrapped in single quotes with embedded quotes doubled;
// the numeric types pass through verbatim. Any other type, or a ? with no
// binding at its position, fails the whole statement with
// ErrUnsupportedType / ErrMissingValue.
func Fill(template string, params ParamSet) (string, error) {
	var b strings.Builder
	b.Grow(len(template))

	position := 0
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '?' {
			b.WriteByte(c)
			continue
		}
		position++

		binding, ok := params[position]
		if !ok {
			return "", fmt.Errorf("%w at position %d", ErrMissingValue, position)
		}

		literal, err := renderValue(binding)
		if err != nil {
			return "", err
		}
		b.WriteString(literal)
	}

	return b.String(), nil
}

func renderValue(binding Binding) (string, error) {
	typ := strings.ToLower(binding.Type)
	switch {
	case typ == "string":
		return "'" + strings.ReplaceAll(binding.Raw, "'", "''") + "'", nil
	case numericTypes[typ]:
		return binding.Raw, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, binding.Type)
	}
}
