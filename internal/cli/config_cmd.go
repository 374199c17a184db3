package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ktsuji/sqltrace/internal/config"
)

func resolvedConfigPath() string {
	if strings.TrimSpace(configPathFlag) != "" {
		return configPathFlag
	}
	return config.DefaultPath()
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path := resolvedConfigPath()
	_, statErr := os.Stat(path)
	exists := statErr == nil

	var loaded *config.Config
	if exists {
		var err error
		loaded, err = config.LoadFrom(path)
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
	} else {
		loaded = &config.Config{}
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"config_path": path,
			"exists":      exists,
			"log_file":    loaded.LogFile,
			"encoding":    loaded.Encoding,
			"auto_copy":   loaded.AutoCopy,
			"db": map[string]interface{}{
				"driver": loaded.DB.Driver,
				"dsn":    loaded.DB.DSN,
			},
			"ui": map[string]interface{}{
				"accent": loaded.UI.Accent,
			},
		}, nil)
		return nil
	}

	if !exists {
		fmt.Printf("Config file does not exist: %s\n", path)
		fmt.Println("Run 'sqltrace config init' to create it.")
		return nil
	}

	fmt.Printf("config: %s\n", path)
	if v := strings.TrimSpace(loaded.LogFile); v != "" {
		fmt.Printf("log_file: %s\n", v)
	}
	if v := strings.TrimSpace(loaded.Encoding); v != "" {
		fmt.Printf("encoding: %s\n", v)
	}
	if loaded.AutoCopy {
		fmt.Printf("auto_copy: %t\n", loaded.AutoCopy)
	}
	if v := strings.TrimSpace(loaded.DB.Driver); v != "" {
		fmt.Printf("db.driver: %s\n", v)
	}
	if v := strings.TrimSpace(loaded.DB.DSN); v != "" {
		fmt.Printf("db.dsn: %s\n", v)
	}
	if v := strings.TrimSpace(loaded.UI.Accent); v != "" {
		fmt.Printf("ui.accent: %s\n", v)
	}
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global sqltrace config.toml settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default global config.toml if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetPath := resolvedConfigPath()
		_, statErr := os.Stat(targetPath)
		existed := statErr == nil
		if statErr != nil && !os.IsNotExist(statErr) {
			return handleError(ErrFileReadError, statErr, "")
		}

		createdPath, err := config.CreateDefaultAt(targetPath)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": createdPath,
				"created":     !existed,
			}, nil)
			return nil
		}

		if existed {
			fmt.Printf("Config already exists: %s\n", createdPath)
		} else {
			fmt.Printf("Created config: %s\n", createdPath)
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resolved config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolvedConfigPath()
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"config_path": path}, nil)
			return nil
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current global config.toml values",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})

	rootCmd.AddCommand(configCmd)
}
