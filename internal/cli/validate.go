package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/config"
	"github.com/docforge/docforge/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	Long: `Validate the section files against the configuration rules.

Each violation is reported with its field path. The command exits
non-zero when the configuration is invalid.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	root, err := projectRoot(cmd)
	if err != nil {
		return err
	}

	manager := config.NewConfigManager()
	_, loadErr := manager.Load(root)
	if loadErr == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid.")
		return nil
	}

	var verrs *config.ValidationErrors
	if !errors.As(loadErr, &verrs) {
		return loadErr
	}

	theme := ui.NewTheme(noColor(cmd, nil))
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n",
		theme.Warn.Render(fmt.Sprintf("Configuration has %d problem(s):", len(verrs.Errors))))
	for _, ve := range verrs.Errors {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", theme.Key.Render(ve.Field), ve.Message)
	}

	return fmt.Errorf("configuration invalid: %w", config.ErrInvalidConfig)
}
