package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ktsuji/sqltrace/internal/engine"
	"github.com/ktsuji/sqltrace/internal/ui"
)

type idSummaryView struct {
	ID            string `json:"id"`
	ParamSetCount int    `json:"param_set_count"`
}

var idsCmd = &cobra.Command{
	Use:   "ids",
	Short: "List the execution IDs present in the log",
	Long: `List the execution IDs present in the log.

Shows every ID that has a statement record, in the order they first appear,
with the number of parameter records logged under each. Parameter records
whose ID never appears with a statement are not listed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, path, err := loadLogText()
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}

		summaries := engine.IndexIDs(text)

		if isJSONOutput() {
			views := make([]idSummaryView, 0, len(summaries))
			for _, s := range summaries {
				views = append(views, idSummaryView{ID: s.ID, ParamSetCount: s.ParamSetCount})
			}
			outputSuccess(map[string]interface{}{
				"log_file": path,
				"ids":      views,
			}, &Meta{Count: len(views)})
			return nil
		}

		if len(summaries) == 0 {
			fmt.Printf("No statement records found in %s\n", path)
			return nil
		}

		table := ui.NewTable(2)
		table.AddRow("ID", "PARAM SETS")
		for _, s := range summaries {
			table.AddRow(s.ID, strconv.Itoa(s.ParamSetCount))
		}
		fmt.Print(table.String())
		fmt.Println()
		fmt.Println(ui.Hint(fmt.Sprintf("%d IDs in %s", len(summaries), path)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(idsCmd)
}
