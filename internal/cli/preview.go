package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/config"
	"github.com/docforge/docforge/internal/render"
	"github.com/docforge/docforge/internal/ui"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the resolved configuration as a rendered report",
	Long: `Preview the resolved configuration namespace as a markdown report
rendered for the terminal. Use --raw to get the plain markdown, for
example to paste into a pull request.`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().Bool("raw", false, "Print plain markdown without terminal rendering")
}

func runPreview(cmd *cobra.Command, _ []string) error {
	_, cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	theme := config.ResolveTheme(cfg)
	ns := render.BuildNamespace(cfg, theme)
	report := ui.BuildMarkdownReport(ns, theme)

	if getBoolFlag(cmd, "raw") {
		fmt.Fprint(cmd.OutOrStdout(), report)
		return nil
	}

	rendered, err := ui.RenderMarkdown(report, noColor(cmd, cfg))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
