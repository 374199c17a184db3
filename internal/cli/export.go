package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktsuji/sqltrace/internal/engine"
	"github.com/ktsuji/sqltrace/internal/report"
	"github.com/ktsuji/sqltrace/internal/ui"
)

var (
	exportOut   string
	exportTitle string
	exportAll   bool
)

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export recovered SQL as an HTML report",
	Long: `Export recovered SQL as an HTML report.

With an ID, the report covers that ID's executions. With --all, it covers
every ID in the log. The output filename defaults to a slug of the title.

Examples:
  sqltrace export 1a2b3c
  sqltrace export 1a2b3c --title "Checkout Queries" --out checkout.html
  sqltrace export --all --title "Release Audit"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportAll == (len(args) == 1) {
			return handleErrorMsg(ErrMissingArgument,
				"pass exactly one of <id> or --all", "")
		}

		text, path, err := loadLogText()
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		var execs []engine.Execution
		if exportAll {
			var all []engine.Execution
			for _, s := range engine.IndexIDs(text) {
				all = append(all, engine.LocateByID(text, s.ID)...)
			}
			// Order the report by template so repeated statements sit together.
			for _, group := range engine.GroupByTemplate(all) {
				execs = append(execs, group.Executions...)
			}
			if len(execs) == 0 {
				return handleErrorMsg(ErrNotFound,
					fmt.Sprintf("no statement records found in %s", path),
					"Check the log file and its --encoding")
			}
		} else {
			id := args[0]
			execs = engine.LocateByID(text, id)
			if len(execs) == 0 {
				return handleErrorMsg(ErrNotFound,
					fmt.Sprintf("no statement found for id '%s' in %s", id, path),
					"Run 'sqltrace ids' to list the IDs present in the log")
			}
		}

		html, err := report.Generate(execs, report.Params{
			Title:      exportTitle,
			SourceFile: path,
		})
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		out := exportOut
		if out == "" {
			out = report.DefaultFilename(exportTitle)
		}
		if err := report.Save(out, html); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"report_path": out,
				"executions":  len(execs),
			}, &Meta{Count: len(execs)})
			return nil
		}

		fmt.Println(ui.Successf("wrote %s %s",
			ui.FilePath(out),
			ui.Count(len(execs), "execution", "executions")))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file path (default: slug of the title)")
	exportCmd.Flags().StringVarP(&exportTitle, "title", "t", "", "Report title")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every ID in the log")

	rootCmd.AddCommand(exportCmd)
}
