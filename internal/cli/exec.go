package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ktsuji/sqltrace/internal/dbexec"
	"github.com/ktsuji/sqltrace/internal/engine"
	"github.com/ktsuji/sqltrace/internal/ui"
)

var (
	execDriver  string
	execDSN     string
	execSeq     int
	execMaxRows int
	execTimeout time.Duration
)

var execCmd = &cobra.Command{
	Use:   "exec <id>",
	Short: "Run a recovered statement against a database",
	Long: `Run a recovered statement against a database.

Recovers the filled SQL for the ID and executes it over the connection given
by --driver/--dsn (or the [db] section of the config). With multiple parameter
sets, --seq picks which execution to run; the default is the last one.

Examples:
  sqltrace exec 1a2b3c --driver sqlite --dsn ./app.db
  sqltrace exec 1a2b3c --seq 2 --max-rows 50`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		driver := execDriver
		if driver == "" {
			driver = getConfig().DB.Driver
		}
		dsn := execDSN
		if dsn == "" {
			dsn = getConfig().DB.DSN
		}
		if strings.TrimSpace(driver) == "" || strings.TrimSpace(dsn) == "" {
			return handleErrorMsg(ErrMissingArgument,
				"no database connection specified",
				"Pass --driver and --dsn, or set the [db] section in the config")
		}

		text, path, err := loadLogText()
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		id := args[0]
		execs := engine.LocateByID(text, id)
		if len(execs) == 0 {
			return handleErrorMsg(ErrNotFound,
				fmt.Sprintf("no statement found for id '%s' in %s", id, path),
				"Run 'sqltrace ids' to list the IDs present in the log")
		}

		chosen := execs[len(execs)-1]
		if execSeq > 0 {
			found := false
			for _, e := range execs {
				if e.Sequence == execSeq {
					chosen = e
					found = true
					break
				}
			}
			if !found {
				return handleErrorMsg(ErrInvalidInput,
					fmt.Sprintf("no execution #%d for id '%s'", execSeq, id),
					fmt.Sprintf("Valid range: 1-%d", len(execs)))
			}
		}
		if strings.Contains(chosen.Template, "?") && !chosen.Filled() {
			return handleErrorMsg(ErrInvalidInput,
				fmt.Sprintf("parameters for execution #%d could not be substituted; refusing to run the raw template", chosen.Sequence),
				"Use 'sqltrace query' to inspect the parameter records")
		}

		ctx, cancel := context.WithTimeout(context.Background(), execTimeout)
		defer cancel()

		result, err := dbexec.Run(ctx, driver, dsn, chosen.FilledSQL, execMaxRows)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"sql":           chosen.FilledSQL,
				"columns":       result.Columns,
				"rows":          result.Rows,
				"truncated":     result.Truncated,
				"rows_affected": result.RowsAffected,
			}, &Meta{Count: len(result.Rows)})
			return nil
		}

		printExecResult(chosen.FilledSQL, result)
		return nil
	},
}

func printExecResult(sql string, result *dbexec.Result) {
	fmt.Println(ui.Hint(sql))
	fmt.Println()

	if len(result.Columns) == 0 {
		fmt.Println(ui.Successf("%d rows affected", result.RowsAffected))
		return
	}

	table := ui.NewTable(len(result.Columns))
	table.AddRow(result.Columns...)
	for _, row := range result.Rows {
		table.AddRow(row...)
	}
	fmt.Print(table.String())
	fmt.Println()
	if result.Truncated {
		fmt.Println(ui.Warningf("output truncated at %d rows", len(result.Rows)))
	} else {
		fmt.Println(ui.Hint(fmt.Sprintf("%d rows", len(result.Rows))))
	}
}

func init() {
	execCmd.Flags().StringVar(&execDriver, "driver", "", "Database driver (sqlite or mysql)")
	execCmd.Flags().StringVar(&execDSN, "dsn", "", "Database connection string")
	execCmd.Flags().IntVar(&execSeq, "seq", 0, "Execution number to run (default: last)")
	execCmd.Flags().IntVar(&execMaxRows, "max-rows", dbexec.DefaultMaxRows, "Maximum rows to fetch")
	execCmd.Flags().DurationVar(&execTimeout, "timeout", 30*time.Second, "Statement timeout")

	rootCmd.AddCommand(execCmd)
}
