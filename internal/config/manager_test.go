package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/docforge/docforge/internal/defs"
	"github.com/docforge/docforge/pkg/models"
)

// setupManagerTestDir creates a project root with .docforge/config/sections
// and copies testdata files into it. Returns the project root path.
func setupManagerTestDir(t *testing.T, files []string) string {
	t.Helper()
	tempDir := t.TempDir()
	sectionsDir := filepath.Join(tempDir, ".docforge", "config", "sections")
	if err := os.MkdirAll(sectionsDir, 0o755); err != nil {
		t.Fatalf("failed to create sections dir: %v", err)
	}

	for _, f := range files {
		data, err := os.ReadFile(filepath.Join("testdata", "valid", f))
		if err != nil {
			t.Fatalf("failed to read testdata file %s: %v", f, err)
		}
		if err := os.WriteFile(filepath.Join(sectionsDir, f), data, 0o644); err != nil {
			t.Fatalf("failed to write test file %s: %v", f, err)
		}
	}
	return tempDir
}

func TestNewConfigManager(t *testing.T) {
	t.Parallel()

	m := NewConfigManager()
	if m == nil {
		t.Fatal("NewConfigManager() returned nil")
	}
	if m.loader == nil {
		t.Error("NewConfigManager() should initialize loader")
	}
	if m.state != stateUninitialized {
		t.Errorf("expected state %d (uninitialized), got %d", stateUninitialized, m.state)
	}
}

func TestConfigManagerLoadValid(t *testing.T) {
	t.Parallel()

	root := setupManagerTestDir(t, []string{"project.yaml", "source.yaml", "html.yaml"})
	m := NewConfigManager()

	cfg, err := m.Load(root)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if cfg.Project.Name != "Bit Recovery" {
		t.Errorf("Project.Name: got %q, want %q", cfg.Project.Name, "Bit Recovery")
	}
	if cfg.Project.Author != "Dirk Roorda" {
		t.Errorf("Project.Author: got %q, want %q", cfg.Project.Author, "Dirk Roorda")
	}
}

func TestConfigManagerLoadDefaults(t *testing.T) {
	t.Parallel()

	// Empty project root with no .docforge directory
	root := t.TempDir()
	m := NewConfigManager()

	cfg, err := m.Load(root)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Source.MasterDoc != DefaultMasterDoc {
		t.Errorf("Source.MasterDoc: got %q, want default %q", cfg.Source.MasterDoc, DefaultMasterDoc)
	}
	if cfg.Epub.ShowURLs != DefaultEpubShowURLs {
		t.Errorf("Epub.ShowURLs: got %q, want default %q", cfg.Epub.ShowURLs, DefaultEpubShowURLs)
	}
}

func TestConfigManagerConfigDirOverride(t *testing.T) {
	configDir := setupLoaderTestDir(t, "valid", []string{"project.yaml"})
	t.Setenv(defs.EnvConfigDir, configDir)

	// Project root without any .docforge: config comes from the override dir.
	m := NewConfigManager()
	cfg, err := m.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Project.Name != "Bit Recovery" {
		t.Errorf("Project.Name: got %q, want %q", cfg.Project.Name, "Bit Recovery")
	}
}

func TestConfigManagerEnvOverrides(t *testing.T) {
	t.Setenv(defs.EnvLogLevel, "debug")
	t.Setenv(defs.EnvNoColor, "1")

	m := NewConfigManager()
	cfg, err := m.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.System.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want %q", cfg.System.LogLevel, "debug")
	}
	if !cfg.System.NoColor {
		t.Error("NoColor: got false, want true")
	}
}

func TestConfigManagerUninitialized(t *testing.T) {
	t.Parallel()

	m := NewConfigManager()

	if m.Get() != nil {
		t.Error("Get() on uninitialized manager should return nil")
	}
	if _, err := m.GetSection("project"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("GetSection: expected ErrNotInitialized, got %v", err)
	}
	if err := m.SetSection("project", models.ProjectConfig{}); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("SetSection: expected ErrNotInitialized, got %v", err)
	}
	if err := m.Save(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Save: expected ErrNotInitialized, got %v", err)
	}
	if err := m.Reload(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Reload: expected ErrNotInitialized, got %v", err)
	}
	if err := m.Watch(func(Config) {}); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Watch: expected ErrNotInitialized, got %v", err)
	}
}

func TestConfigManagerSections(t *testing.T) {
	t.Parallel()

	m := NewConfigManager()
	if _, err := m.Load(t.TempDir()); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	t.Run("get unknown section", func(t *testing.T) {
		if _, err := m.GetSection("builders"); !errors.Is(err, ErrSectionNotFound) {
			t.Errorf("expected ErrSectionNotFound, got %v", err)
		}
	})

	t.Run("set and get roundtrip", func(t *testing.T) {
		project := models.ProjectConfig{Name: "Bit Recovery", Author: "Dirk Roorda", Version: "1.2", Release: "1.2.1"}
		if err := m.SetSection("project", project); err != nil {
			t.Fatalf("SetSection() error: %v", err)
		}

		got, err := m.GetSection("project")
		if err != nil {
			t.Fatalf("GetSection() error: %v", err)
		}
		if got.(models.ProjectConfig).Name != "Bit Recovery" {
			t.Errorf("roundtrip name: got %q", got.(models.ProjectConfig).Name)
		}
	})

	t.Run("type mismatch", func(t *testing.T) {
		if err := m.SetSection("project", "not a struct"); !errors.Is(err, ErrSectionTypeMismatch) {
			t.Errorf("expected ErrSectionTypeMismatch, got %v", err)
		}
	})
}

func TestConfigManagerSaveReload(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	m := NewConfigManager()
	if _, err := m.Load(root); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	project := models.ProjectConfig{Name: "Bit Recovery", Author: "Dirk Roorda", Version: "1.2", Release: "1.2.1"}
	if err := m.SetSection("project", project); err != nil {
		t.Fatalf("SetSection() error: %v", err)
	}
	if err := m.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// All section files must exist after Save.
	sectionsDir := filepath.Join(root, ".docforge", "config", "sections")
	for _, name := range []string{"project.yaml", "source.yaml", "html.yaml", "latex.yaml",
		"man.yaml", "texinfo.yaml", "epub.yaml", "system.yaml"} {
		if _, err := os.Stat(filepath.Join(sectionsDir, name)); err != nil {
			t.Errorf("section file %s missing after Save: %v", name, err)
		}
	}

	// A fresh manager reads back the saved values.
	fresh := NewConfigManager()
	cfg, err := fresh.Load(root)
	if err != nil {
		t.Fatalf("fresh Load() error: %v", err)
	}
	if cfg.Project.Release != "1.2.1" {
		t.Errorf("reloaded Release: got %q, want %q", cfg.Project.Release, "1.2.1")
	}
}

func TestConfigManagerReloadNotifiesCallbacks(t *testing.T) {
	t.Parallel()

	root := setupManagerTestDir(t, []string{"project.yaml"})
	m := NewConfigManager()
	if _, err := m.Load(root); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	var seen []string
	if err := m.Watch(func(cfg Config) {
		seen = append(seen, cfg.Project.Name)
	}); err != nil {
		t.Fatalf("Watch() error: %v", err)
	}

	if err := m.Reload(); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}

	if len(seen) != 1 || seen[0] != "Bit Recovery" {
		t.Errorf("callback invocations: got %v, want [Bit Recovery]", seen)
	}
}

func TestConfigManagerReloadKeepsOldConfigOnError(t *testing.T) {
	t.Parallel()

	root := setupManagerTestDir(t, []string{"project.yaml"})
	m := NewConfigManager()
	if _, err := m.Load(root); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Corrupt the project file so the reload fails validation.
	sectionsDir := filepath.Join(root, ".docforge", "config", "sections")
	broken := "project:\n  name: \"\"\n  author: \"\"\n"
	if err := os.WriteFile(filepath.Join(sectionsDir, "project.yaml"), []byte(broken), 0o644); err != nil {
		t.Fatalf("failed to write broken project.yaml: %v", err)
	}

	if err := m.Reload(); err == nil {
		t.Fatal("Reload() with invalid file: expected error")
	}

	// The previous configuration stays in place.
	if m.Get().Project.Name != "Bit Recovery" {
		t.Errorf("config after failed reload: got %q, want %q", m.Get().Project.Name, "Bit Recovery")
	}
}
