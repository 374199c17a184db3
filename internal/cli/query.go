package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/ktsuji/sqltrace/internal/engine"
	"github.com/ktsuji/sqltrace/internal/ui"
)

var (
	queryCopy     bool
	queryFillOnly bool
)

var queryCmd = &cobra.Command{
	Use:   "query <id>",
	Short: "Recover the SQL executed under an execution ID",
	Long: `Recover the SQL executed under an execution ID.

Finds the statement template logged for the ID, pairs it with every parameter
record logged under the same ID, and substitutes the '?' placeholders. One
statement logged with three parameter sets yields three executions.

Examples:
  sqltrace query 1a2b3c
  sqltrace query 1a2b3c --fill-only      # just the SQL, for piping
  sqltrace query 1a2b3c --copy           # also copy the SQL to the clipboard`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		return outputExecutions(execs)
	},
}

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Recover the most recent SQL execution in the log",
	Long: `Recover the most recent SQL execution in the log.

Scans for the last statement record in the file, recovers its execution ID,
and shows every execution logged under that ID.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, path, err := loadLogText()
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		execs := engine.LocateLast(text)
		if len(execs) == 0 {
			return handleErrorMsg(ErrNotFound,
				fmt.Sprintf("no statement records found in %s", path),
				"Check the log file and its --encoding")
		}

		return outputExecutions(execs)
	},
}

// outputExecutions is the shared tail of query and last: JSON envelope,
// fill-only piping, human display, and optional clipboard copy.
func outputExecutions(execs []engine.Execution) error {
	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"id":         execs[0].ID,
			"caller":     execs[0].Caller,
			"executions": executionViews(execs),
		}, &Meta{Count: len(execs)})
		return nil
	}

	final := execs[len(execs)-1]

	if queryFillOnly {
		for _, e := range execs {
			fmt.Println(e.FilledSQL)
		}
		return copyIfRequested(final.FilledSQL, true)
	}

	printExecutions(execs)
	return copyIfRequested(final.FilledSQL, false)
}

func copyIfRequested(sql string, quiet bool) error {
	if !queryCopy && !getConfig().AutoCopy {
		return nil
	}
	if err := clipboard.WriteAll(sql); err != nil {
		return handleError(ErrInternal, fmt.Errorf("copy to clipboard: %w", err), "")
	}
	if !quiet {
		fmt.Println()
		fmt.Println(ui.Success("copied to clipboard"))
	}
	return nil
}

func init() {
	for _, cmd := range []*cobra.Command{queryCmd, lastCmd} {
		cmd.Flags().BoolVar(&queryCopy, "copy", false, "Copy the filled SQL of the last execution to the clipboard")
		cmd.Flags().BoolVar(&queryFillOnly, "fill-only", false, "Print only the filled SQL of the last execution")
	}

	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(lastCmd)
}
