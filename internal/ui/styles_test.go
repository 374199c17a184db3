package ui

import "testing"

func TestNormalizeAccentColor(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"39", "39", true},
		{"0", "0", true},
		{"255", "255", true},
		{"256", "", false},
		{"-1", "", false},
		{"#A78BFA", "#A78BFA", true},
		{"#a78bfa", "#a78bfa", true},
		{"#GGGGGG", "", false},
		{"#FFF", "", false},
		{"blue", "", false},
		{" 39 ", "39", true},
	}
	for _, tt := range tests {
		got, ok := normalizeAccentColor(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("normalizeAccentColor(%q) = (%q, %v), want (%q, %v)",
				tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestConfigureThemeAccentColor(t *testing.T) {
	origAccent := Accent
	origAccentBold := AccentBold
	origAccentColor := accentColor
	defer func() {
		Accent = origAccent
		AccentBold = origAccentBold
		accentColor = origAccentColor
	}()

	ConfigureTheme("39")
	got, ok := AccentColor()
	if !ok || got != "39" {
		t.Errorf("AccentColor() = (%q, %v), want (39, true)", got, ok)
	}

	ConfigureTheme("none")
	if _, ok = AccentColor(); ok {
		t.Error("AccentColor() ok after disabling, want false")
	}

	// Invalid values leave the theme alone.
	ConfigureTheme("39")
	ConfigureTheme("not-a-color")
	if got, _ := AccentColor(); got != "39" {
		t.Errorf("invalid accent changed theme to %q", got)
	}
}

func TestTable(t *testing.T) {
	tbl := NewTable(3)
	tbl.AddRow("ID", "SQL", "PARAM SETS")
	tbl.AddRow("abc123", "yes", "2")
	got := tbl.String()
	want := "ID      SQL  PARAM SETS\nabc123  yes  2\n"
	if got != want {
		t.Errorf("Table.String() = %q, want %q", got, want)
	}
}
