package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ktsuji/sqltrace/internal/engine"
	"github.com/ktsuji/sqltrace/internal/sqlfill"
)

func sampleExecutions() []engine.Execution {
	return []engine.Execution{
		{
			ID:        "abc",
			Timestamp: "2024/03/01 09:00:00",
			Caller:    "UserDao",
			Template:  "SELECT * FROM users WHERE name = ?",
			FilledSQL: "SELECT * FROM users WHERE name = 'O''Brien'",
			Params:    sqlfill.ParseParams("[String:1:O'Brien]"),
			Sequence:  1,
		},
	}
}

func TestGenerate(t *testing.T) {
	html, err := Generate(sampleExecutions(), Params{Title: "Checkout Queries", SourceFile: "app.log"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, want := range []string{
		"<title>Checkout Queries</title>",
		"Source: app.log",
		"UserDao",
		"execution 1",
		// Filled SQL is HTML-escaped and pretty-printed.
		"SELECT *\nFROM users\nWHERE name = &#39;O&#39;&#39;Brien&#39;",
		"[1]",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestGenerateEscapesSQL(t *testing.T) {
	execs := sampleExecutions()
	execs[0].FilledSQL = "SELECT '<script>alert(1)</script>'"
	html, err := Generate(execs, Params{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Contains(html, "<script>alert") {
		t.Error("script tag not escaped")
	}
	if !strings.Contains(html, "<title>SQL Report</title>") {
		t.Error("empty title did not default")
	}
}

func TestGenerateEmpty(t *testing.T) {
	html, err := Generate(nil, Params{Title: "Empty"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(html, "No executions.") {
		t.Error("empty report lacks placeholder text")
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	if err := Save(path, "<html></html>"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<html></html>" {
		t.Errorf("file content = %q", data)
	}
}

func TestDefaultFilename(t *testing.T) {
	if got := DefaultFilename("Checkout Queries"); got != "checkout-queries.html" {
		t.Errorf("DefaultFilename = %q, want checkout-queries.html", got)
	}
	if got := DefaultFilename(""); got != "sql-report.html" {
		t.Errorf("DefaultFilename(\"\") = %q", got)
	}
	// Non-ASCII titles are transliterated by the slug library; just require
	// a usable .html name.
	if got := DefaultFilename("リリース確認"); !strings.HasSuffix(got, ".html") || got == ".html" {
		t.Errorf("DefaultFilename = %q, want a non-empty .html name", got)
	}
}
