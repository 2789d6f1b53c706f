package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docforge/docforge/internal/config"
)

func TestBackupDocforgeDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	docforgeDir := filepath.Join(root, ".docforge")
	if err := os.MkdirAll(filepath.Join(docforgeDir, "config"), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	if err := backupDocforgeDir(docforgeDir); err != nil {
		t.Fatalf("backupDocforgeDir() error: %v", err)
	}

	if _, err := os.Stat(docforgeDir); !os.IsNotExist(err) {
		t.Error("original .docforge should have been moved aside")
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("read root: %v", err)
	}
	var found bool
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".docforge.backup-") {
			found = true
		}
	}
	if !found {
		t.Error("backup directory not created")
	}
}

func TestBackupDocforgeDirMissing(t *testing.T) {
	t.Parallel()

	if err := backupDocforgeDir(filepath.Join(t.TempDir(), ".docforge")); err == nil {
		t.Error("expected error when backing up a missing directory")
	}
}

func TestApplyThemeOverride(t *testing.T) {
	root, _ := scaffoldProject(t)

	if err := applyThemeOverride(root, "alabaster"); err != nil {
		t.Fatalf("applyThemeOverride() error: %v", err)
	}

	cfg, err := config.NewConfigManager().Load(root)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if cfg.HTML.Theme != "alabaster" {
		t.Errorf("HTML.Theme: got %q, want %q", cfg.HTML.Theme, "alabaster")
	}
	// The override makes theme resolution ignore the environment.
	if got := config.ResolveTheme(cfg); got != "alabaster" {
		t.Errorf("ResolveTheme: got %q, want %q", got, "alabaster")
	}
}
