package cli

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	builtindocs "github.com/ktsuji/sqltrace/docs"
	"github.com/ktsuji/sqltrace/internal/ui"
)

type docsTopicView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Browse long-form Markdown documentation",
	Long: `Browse long-form documentation bundled into the sqltrace binary.

Without arguments, lists the available topics. With a topic, renders it.
For command-level usage, use 'sqltrace help <command>'.

Examples:
  sqltrace docs
  sqltrace docs getting-started
  sqltrace docs log-format`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := listBundledTopics()
		if err != nil {
			return handleError(ErrInternal, err, "Rebuild sqltrace so bundled docs are available")
		}

		if len(args) == 0 {
			return listDocsTopics(topics)
		}
		return showDocsTopic(topics, args[0])
	},
}

func listDocsTopics(topics []docsTopicView) error {
	if isJSONOutput() {
		outputSuccess(map[string]interface{}{"topics": topics}, &Meta{Count: len(topics)})
		return nil
	}

	fmt.Println(ui.Header("Documentation topics"))
	table := ui.NewTable(2)
	for _, t := range topics {
		table.AddRow(t.ID, t.Title)
	}
	fmt.Print(table.String())
	fmt.Println()
	fmt.Println(ui.Hint("Run 'sqltrace docs <topic>' to read one."))
	return nil
}

func showDocsTopic(topics []docsTopicView, id string) error {
	found := false
	for _, t := range topics {
		if t.ID == id {
			found = true
			break
		}
	}
	if !found {
		return handleErrorMsg(ErrNotFound,
			fmt.Sprintf("unknown docs topic '%s'", id),
			"Run 'sqltrace docs' to list topics")
	}

	content, err := fs.ReadFile(builtindocs.FS, path.Join("guide", id+".md"))
	if err != nil {
		return handleError(ErrInternal, err, "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"topic":   id,
			"content": string(content),
		}, nil)
		return nil
	}

	dc := ui.NewDisplayContext()
	if !dc.IsTTY {
		fmt.Print(string(content))
		return nil
	}

	rendered, err := ui.RenderMarkdown(string(content), dc.TermWidth)
	if err != nil {
		fmt.Print(string(content))
		return nil
	}
	fmt.Print(rendered)
	return nil
}

// listBundledTopics enumerates guide/*.md, titling each topic from its first
// heading line.
func listBundledTopics() ([]docsTopicView, error) {
	entries, err := fs.ReadDir(builtindocs.FS, "guide")
	if err != nil {
		return nil, err
	}

	var topics []docsTopicView
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		id := strings.TrimSuffix(name, ".md")
		content, err := fs.ReadFile(builtindocs.FS, path.Join("guide", name))
		if err != nil {
			return nil, err
		}
		topics = append(topics, docsTopicView{ID: id, Title: docTitle(string(content), id)})
	}

	sort.Slice(topics, func(i, j int) bool { return topics[i].ID < topics[j].ID })
	return topics, nil
}

func docTitle(content, fallback string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return fallback
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
