// Package dbexec runs recovered SQL against a live database.
//
// The filled SQL is treated as an opaque string: no parsing, no rewriting.
// Supported drivers are the pure-Go sqlite driver and the MySQL driver.
package dbexec

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// DefaultMaxRows caps how many rows a query result carries back for display.
const DefaultMaxRows = 500

// Result holds a query result shaped for table rendering. For statements
// without a result set (INSERT, UPDATE, ...), Columns is empty and
// RowsAffected is meaningful.
type Result struct {
	Columns      []string
	Rows         [][]string
	Truncated    bool
	RowsAffected int64
}

// Run executes query against the database named by driver and dsn. Queries
// that return rows are fetched up to maxRows; anything else is executed and
// reported via RowsAffected.
func Run(ctx context.Context, driver, dsn, query string, maxRows int) (*Result, error) {
	name := normalizeDriver(driver)
	if name == "" {
		return nil, fmt.Errorf("unsupported driver %q (use sqlite or mysql)", driver)
	}
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}

	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if isQuery(query) {
		return runQuery(ctx, db, query, maxRows)
	}
	return runExec(ctx, db, query)
}

func runQuery(ctx context.Context, db *sql.DB, query string, maxRows int) (*Result, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	result := &Result{Columns: cols}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if len(result.Rows) >= maxRows {
			result.Truncated = true
			break
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make([]string, len(cols))
		for i, v := range values {
			row[i] = renderCell(v)
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return result, nil
}

func runExec(ctx context.Context, db *sql.DB, query string) (*Result, error) {
	res, err := db.ExecContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}
	affected, _ := res.RowsAffected()
	return &Result{RowsAffected: affected}, nil
}

func renderCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}

func normalizeDriver(driver string) string {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "sqlite", "sqlite3":
		return "sqlite"
	case "mysql":
		return "mysql"
	default:
		return ""
	}
}

// isQuery guesses whether a statement returns rows. SELECT and WITH cover
// what DAO logs produce in practice; everything else goes through Exec.
func isQuery(query string) bool {
	head := strings.ToUpper(strings.TrimSpace(query))
	return strings.HasPrefix(head, "SELECT") || strings.HasPrefix(head, "WITH")
}
