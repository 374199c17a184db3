package sqlfill

import (
	"errors"
	"strings"
	"testing"
)

func TestFill(t *testing.T) {
	tests := []struct {
		name     string
		template string
		raw      string
		want     string
	}{
		{
			name:     "string and int",
			template: "SELECT * FROM users WHERE name = ? AND id = ?",
			raw:      "[String:1:John][Int:2:42]",
			want:     "SELECT * FROM users WHERE name = 'John' AND id = 42",
		},
		{
			name:     "single quote doubled exactly once",
			template: "INSERT INTO t (name) VALUES (?)",
			raw:      "[String:1:O'Brien]",
			want:     "INSERT INTO t (name) VALUES ('O''Brien')",
		},
		{
			name:     "numeric type tokens are case-insensitive",
			template: "SELECT ?, ?, ?, ?, ?",
			raw:      "[BIGDECIMAL:1:1.5][Number:2:2][INT:3:3][Long:4:4][float:5:5.0]",
			want:     "SELECT 1.5, 2, 3, 4, 5.0",
		},
		{
			name:     "bindings out of order on the source line",
			template: "SELECT * FROM t WHERE a = ? AND b = ?",
			raw:      "[Int:2:20][Int:1:10]",
			want:     "SELECT * FROM t WHERE a = 10 AND b = 20",
		},
		{
			name:     "no placeholders passes through",
			template: "SELECT 1",
			raw:      "",
			want:     "SELECT 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Fill(tt.template, ParseParams(tt.raw))
			if err != nil {
				t.Fatalf("Fill: %v", err)
			}
			if got != tt.want {
				t.Errorf("Fill = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFillCompleteSubstitutionLeavesNoPlaceholders(t *testing.T) {
	template := "UPDATE t SET a = ?, b = ?, c = ? WHERE k = ?"
	got, err := Fill(template, ParseParams("[Int:1:1][String:2:x][Int:3:3][Int:4:4]"))
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if strings.Contains(got, "?") {
		t.Errorf("filled SQL still contains placeholders: %q", got)
	}
	// Non-placeholder bytes are preserved.
	if !strings.HasPrefix(got, "UPDATE t SET a = ") || !strings.Contains(got, " WHERE k = ") {
		t.Errorf("surrounding text corrupted: %q", got)
	}
}

func TestFillMissingValue(t *testing.T) {
	_, err := Fill("SELECT * FROM t WHERE a = ? AND b = ?", ParseParams("[Int:1:1]"))
	if !errors.Is(err, ErrMissingValue) {
		t.Fatalf("err = %v, want ErrMissingValue", err)
	}
}

func TestFillUnsupportedType(t *testing.T) {
	_, err := Fill("SELECT * FROM t WHERE a = ?", ParseParams("[Blob:1:0xdead]"))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestFillGapInConsumedPositionsFails(t *testing.T) {
	// Two placeholders consume positions 1 and 2; a set binding 1 and 3 is
	// missing position 2 even though it has two entries.
	_, err := Fill("? ?", ParseParams("[Int:1:1][Int:3:3]"))
	if !errors.Is(err, ErrMissingValue) {
		t.Fatalf("err = %v, want ErrMissingValue", err)
	}
}
