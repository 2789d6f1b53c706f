package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/cli/wizard"
	"github.com/docforge/docforge/internal/config"
	"github.com/docforge/docforge/internal/defs"
	"github.com/docforge/docforge/internal/template"
	"github.com/docforge/docforge/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init [project-dir]",
	Short: "Initialize documentation configuration in a project",
	Long: `Initialize docforge configuration and documentation scaffolding.

Usage patterns:
  docforge init <project-dir>   Create the folder and initialize inside it
  docforge init .               Initialize in the current directory
  docforge init                 Initialize in the current directory

The command lays down .docforge/config/sections/, a master document, and a
convenience Makefile. On a terminal an interactive wizard asks for project
metadata; otherwise flags and defaults are used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("name", "", "Project name (default: directory name)")
	initCmd.Flags().String("author", "", "Author name")
	initCmd.Flags().String("doc-version", "", "Version series (example: 1.2)")
	initCmd.Flags().String("release", "", "Full release (example: 1.2.1, default: same as version)")
	initCmd.Flags().String("theme", "", "Fixed HTML theme (default: resolve from build environment)")
	initCmd.Flags().Bool("non-interactive", false, "Skip interactive wizard; use flags and defaults")
	initCmd.Flags().Bool("force", false, "Reinitialize an existing project (backs up current .docforge/)")
}

func runInit(cmd *cobra.Command, args []string) error {
	root, err := resolveInitRoot(cmd, args)
	if err != nil {
		return err
	}

	force := getBoolFlag(cmd, "force")
	docforgeDir := filepath.Join(root, defs.DocforgeDir)
	if _, err := os.Stat(docforgeDir); err == nil {
		if !force {
			return fmt.Errorf("%s already exists in %s; use --force to reinitialize", defs.DocforgeDir, root)
		}
		if err := backupDocforgeDir(docforgeDir); err != nil {
			return err
		}
	}

	answers, err := gatherInitAnswers(cmd, root)
	if err != nil {
		return err
	}

	sctx := template.NewScaffoldContext(
		answers.ProjectName, answers.Author, "", answers.Version, answers.Release)

	hm := ui.NewHeadlessManager()
	theme := ui.NewTheme(noColor(cmd, nil))
	spin := ui.NewSpinner(theme, hm, cmd.OutOrStdout(), "Deploying documentation scaffold...")

	deployer := template.NewDeployer(template.ScaffoldFS())
	if force {
		deployer = template.NewDeployerWithOverwrite(template.ScaffoldFS())
	}
	deployErr := deployer.Deploy(cmd.Context(), root, sctx)
	spin.Stop("")
	if deployErr != nil {
		return fmt.Errorf("deploy scaffold: %w", deployErr)
	}

	if answers.Theme != "" {
		if err := applyThemeOverride(root, answers.Theme); err != nil {
			return err
		}
	}

	// Load once to prove the scaffolded configuration validates.
	manager := config.NewConfigManager()
	if _, err := manager.Load(root); err != nil {
		return fmt.Errorf("scaffolded configuration is invalid: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s documentation configuration in %s\n",
		answers.ProjectName, root)
	return nil
}

// resolveInitRoot determines and creates the target project directory.
func resolveInitRoot(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "." {
		root := filepath.Clean(args[0])
		if err := os.MkdirAll(root, 0o755); err != nil {
			return "", fmt.Errorf("create project directory: %w", err)
		}
		return root, nil
	}
	return projectRoot(cmd)
}

// backupDocforgeDir moves an existing .docforge directory aside.
func backupDocforgeDir(docforgeDir string) error {
	backup := fmt.Sprintf("%s.backup-%s", docforgeDir, time.Now().Format("20060102-150405"))
	if err := os.Rename(docforgeDir, backup); err != nil {
		return fmt.Errorf("back up existing %s: %w", docforgeDir, err)
	}
	return nil
}

// gatherInitAnswers collects project metadata from the wizard or from flags.
func gatherInitAnswers(cmd *cobra.Command, root string) (*wizard.Result, error) {
	interactive := !getBoolFlag(cmd, "non-interactive") &&
		isatty.IsTerminal(os.Stdin.Fd()) &&
		getStringFlag(cmd, "name") == ""

	if interactive {
		result, err := wizard.RunWithDefaults(root)
		if err != nil {
			return nil, err
		}
		if result.Release == "" {
			result.Release = result.Version
		}
		return result, nil
	}

	result := &wizard.Result{
		ProjectName: getStringFlag(cmd, "name"),
		Author:      getStringFlag(cmd, "author"),
		Version:     getStringFlag(cmd, "doc-version"),
		Release:     getStringFlag(cmd, "release"),
		Theme:       getStringFlag(cmd, "theme"),
	}
	if result.ProjectName == "" {
		result.ProjectName = wizard.DefaultProjectName(root)
	}
	if result.Author == "" {
		result.Author = "Unknown"
	}
	if result.Version == "" {
		result.Version = "0.1"
	}
	if result.Release == "" {
		result.Release = result.Version
	}
	return result, nil
}

// applyThemeOverride writes the chosen fixed theme into html.yaml.
func applyThemeOverride(root, themeName string) error {
	manager := config.NewConfigManager()
	if _, err := manager.Load(root); err != nil {
		return fmt.Errorf("load scaffolded configuration: %w", err)
	}

	html := manager.Get().HTML
	html.Theme = themeName
	if err := manager.SetSection("html", html); err != nil {
		return fmt.Errorf("set html section: %w", err)
	}
	if err := manager.Save(); err != nil {
		return fmt.Errorf("save html section: %w", err)
	}
	return nil
}
