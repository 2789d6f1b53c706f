package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/config"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch section files and revalidate on change",
	Long: `Watch the section files and reload the configuration whenever one
changes. A reload that fails validation keeps the previous configuration
and logs the problem. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	manager, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := manager.Watch(func(cfg config.Config) {
		theme := config.ResolveTheme(&cfg)
		fmt.Fprintf(cmd.OutOrStdout(), "reloaded: project %q, release %q, theme %q\n",
			cfg.Project.Name, cfg.Project.Release, theme)
	}); err != nil {
		return err
	}

	watcher, err := config.NewSectionWatcher(manager)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Stop()

	fmt.Fprintln(cmd.OutOrStdout(), "Watching section files. Press Ctrl-C to stop.")
	<-ctx.Done()
	return nil
}
