package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/docforge/docforge/internal/config"
	"github.com/docforge/docforge/internal/render"
	"github.com/docforge/docforge/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Long: `Show the resolved configuration namespace.

Without flags, prints a grouped summary of every namespace key with the
HTML theme resolved for the current environment. With --section, prints
one section as YAML.`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().String("section", "",
		"Print a single section as YAML: "+strings.Join(config.ValidSectionNames(), ", "))
}

func runShow(cmd *cobra.Command, _ []string) error {
	manager, cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if section := getStringFlag(cmd, "section"); section != "" {
		return showSection(cmd, manager, section)
	}

	theme := config.ResolveTheme(cfg)
	ns := render.BuildNamespace(cfg, theme)

	uiTheme := ui.NewTheme(noColor(cmd, cfg))
	ui.WriteSummary(cmd.OutOrStdout(), uiTheme, ns)
	return nil
}

// showSection prints one named section as YAML.
func showSection(cmd *cobra.Command, manager *config.ConfigManager, name string) error {
	value, err := manager.GetSection(name)
	if err != nil {
		return fmt.Errorf("section %q: %w (valid: %s)",
			name, err, strings.Join(config.ValidSectionNames(), ", "))
	}

	data, err := yaml.Marshal(map[string]any{name: value})
	if err != nil {
		return fmt.Errorf("marshal section %q: %w", name, err)
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
