package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/config"
	"github.com/docforge/docforge/internal/defs"
	"github.com/docforge/docforge/internal/render"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the resolved configuration namespace",
	Long: `Export the resolved configuration namespace for the documentation builder.

Formats:
  yaml   Flat namespace as YAML (default)
  json   Flat namespace as JSON
  conf   Builder configuration file (conf.py)

The conf format keeps the READTHEDOCS branch in the generated file unless
an explicit html.theme is configured, so the theme is still decided at
build time. Output goes to stdout unless --out is given; --out with no
value and format conf writes conf.py in the project root.`,
	PreRunE: validateExportFlags,
	RunE:    runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("format", "yaml", "Output format: yaml, json, or conf")
	exportCmd.Flags().String("out", "", "Output file (default: stdout)")
	exportCmd.Flags().Bool("write", false, "Write to the conventional file name in the project root")
}

// validateExportFlags validates flag values before execution.
func validateExportFlags(cmd *cobra.Command, _ []string) error {
	format := getStringFlag(cmd, "format")
	switch format {
	case "yaml", "json", "conf":
		return nil
	}
	return fmt.Errorf("invalid --format value %q: must be one of: yaml, json, conf", format)
}

func runExport(cmd *cobra.Command, _ []string) error {
	_, cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	format := getStringFlag(cmd, "format")
	data, err := exportData(cfg, format)
	if err != nil {
		return err
	}

	out := getStringFlag(cmd, "out")
	if out == "" && getBoolFlag(cmd, "write") {
		root, err := projectRoot(cmd)
		if err != nil {
			return err
		}
		out = filepath.Join(root, defaultExportName(format))
	}

	if out == "" {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
	return nil
}

// exportData renders cfg in the requested format.
func exportData(cfg *config.Config, format string) ([]byte, error) {
	switch format {
	case "conf":
		return render.ConfPy(cfg)
	case "json":
		ns := render.BuildNamespace(cfg, config.ResolveTheme(cfg))
		return ns.ExportJSON()
	default:
		ns := render.BuildNamespace(cfg, config.ResolveTheme(cfg))
		return ns.ExportYAML()
	}
}

// defaultExportName returns the conventional file name for a format.
func defaultExportName(format string) string {
	switch format {
	case "conf":
		return defs.ConfPy
	case "json":
		return "docforge-namespace.json"
	default:
		return "docforge-namespace.yaml"
	}
}
