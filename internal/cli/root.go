// Package cli implements the docforge command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/config"
	"github.com/docforge/docforge/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "docforge",
	Short: "docforge: documentation build configuration manager",
	Long: `docforge manages documentation build configuration as sectioned,
validated YAML files and renders them into the flat configuration
namespace consumed by the documentation builder.

Section files live under .docforge/config/sections/ in the project root.
The HTML theme is resolved from the READTHEDOCS environment variable
unless an explicit theme is configured.`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("docforge %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().String("root", "", "Project root directory (default: current directory)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// projectRoot resolves the project root from the --root flag, falling back
// to the current working directory.
func projectRoot(cmd *cobra.Command) (string, error) {
	if root := getStringFlag(cmd, "root"); root != "" {
		return root, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return cwd, nil
}

// loadConfig creates a manager and loads the configuration for the command's
// project root, wiring logging from the system section.
func loadConfig(cmd *cobra.Command) (*config.ConfigManager, *config.Config, error) {
	root, err := projectRoot(cmd)
	if err != nil {
		return nil, nil, err
	}

	manager := config.NewConfigManager()
	cfg, err := manager.Load(root)
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	setupLogging(cfg.System)
	return manager, cfg, nil
}

// noColor decides whether styled output is disabled for this invocation.
func noColor(cmd *cobra.Command, cfg *config.Config) bool {
	if getBoolFlag(cmd, "no-color") {
		return true
	}
	if cfg != nil && cfg.System.NoColor {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// setupLogging configures the default slog logger from the system section.
func setupLogging(sys config.SystemConfig) {
	var level slog.Level
	switch strings.ToLower(sys.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(sys.LogFormat) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
