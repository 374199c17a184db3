// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ktsuji/sqltrace/internal/config"
	"github.com/ktsuji/sqltrace/internal/encoding"
	"github.com/ktsuji/sqltrace/internal/ui"
)

var (
	// Global flags
	logPathFlag    string
	encodingFlag   string
	configPathFlag string

	// Resolved values
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sqltrace",
	Short: "sqltrace - recover executed SQL from DAO application logs",
	Long: `sqltrace recovers the SQL a DAO layer actually executed from its log file.

DAO logs record each statement template and its bound parameters on separate
lines, correlated by an execution ID. sqltrace pairs them back up, substitutes
the '?' placeholders with the logged values, and presents runnable SQL.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		switch cmd.Name() {
		case "version", "docs", "completion", "help":
			return nil
		}
		if cmd.Parent() != nil && (cmd.Parent().Name() == "completion" || cmd.Parent().Name() == "docs" || cmd.Parent().Name() == "config") {
			return nil
		}
		if cmd.Name() == "config" {
			return nil
		}

		var err error
		cfg, err = loadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		ui.ConfigureTheme(cfg.UI.Accent)
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logPathFlag, "log", "l", "", "Path to the DAO log file (overrides log_file in config)")
	rootCmd.PersistentFlags().StringVarP(&encodingFlag, "encoding", "e", "", "Log file encoding (utf-8, shift_jis, euc-jp, ...)")
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

func loadGlobalConfig() (*config.Config, error) {
	if strings.TrimSpace(configPathFlag) != "" {
		return config.LoadFrom(configPathFlag)
	}
	return config.Load()
}

// getConfig returns the loaded config, tolerating commands that skipped
// PersistentPreRunE.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

// resolvedLogPath resolves the log file path: --log flag > config log_file.
func resolvedLogPath() (string, error) {
	if logPathFlag != "" {
		return logPathFlag, nil
	}
	if path := strings.TrimSpace(getConfig().LogFile); path != "" {
		return path, nil
	}
	return "", fmt.Errorf(`no log file specified

Either:
  1. Use --log /path/to/dao.log
  2. Set log_file in %s (run 'sqltrace config init' to create it)`, config.DefaultPath())
}

// resolvedEncoding resolves the log encoding: --encoding flag > config > utf-8.
func resolvedEncoding() string {
	if encodingFlag != "" {
		return encodingFlag
	}
	if label := strings.TrimSpace(getConfig().Encoding); label != "" {
		return label
	}
	return encoding.DefaultLabel
}

// loadLogText reads and decodes the resolved log file.
func loadLogText() (string, string, error) {
	path, err := resolvedLogPath()
	if err != nil {
		return "", "", err
	}
	text, err := encoding.ReadFile(path, resolvedEncoding())
	if err != nil {
		return "", "", err
	}
	return text, path, nil
}
