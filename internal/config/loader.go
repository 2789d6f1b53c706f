package config

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/docforge/docforge/internal/defs"
)

// Loader reads configuration from YAML section files.
// It is thread-safe via sync.RWMutex.
type Loader struct {
	mu             sync.RWMutex
	loadedSections map[string]bool
}

// NewLoader creates a new Loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads all configuration section files from the given .docforge
// directory and returns a merged Config with defaults applied for missing
// fields. Missing files use default values. Invalid YAML files are skipped
// with a warning.
func (l *Loader) Load(configDir string) (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loadedSections = make(map[string]bool)
	cfg := NewDefaultConfig()

	sectionsDir := filepath.Join(filepath.Clean(configDir), defs.SectionsSubdir)

	// If sections directory does not exist, return defaults
	if _, err := os.Stat(sectionsDir); os.IsNotExist(err) {
		slog.Warn("config sections directory not found, using defaults", "path", sectionsDir)
		return cfg, nil
	}

	l.loadProjectSection(sectionsDir, cfg)
	l.loadSourceSection(sectionsDir, cfg)
	l.loadHTMLSection(sectionsDir, cfg)
	l.loadLatexSection(sectionsDir, cfg)
	l.loadManSection(sectionsDir, cfg)
	l.loadTexinfoSection(sectionsDir, cfg)
	l.loadEpubSection(sectionsDir, cfg)
	l.loadSystemSection(sectionsDir, cfg)

	return cfg, nil
}

// LoadedSections returns a copy of the map indicating which sections
// were successfully loaded from YAML files.
func (l *Loader) LoadedSections() map[string]bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]bool, len(l.loadedSections))
	maps.Copy(result, l.loadedSections)
	return result
}

// loadProjectSection loads the project configuration section from project.yaml.
func (l *Loader) loadProjectSection(dir string, cfg *Config) {
	wrapper := &projectFileWrapper{Project: cfg.Project}
	loaded, err := loadYAMLFile(dir, defs.ProjectYAML, wrapper)
	if err != nil {
		slog.Warn("failed to load project config, using defaults", "error", err)
		return
	}
	if loaded {
		cfg.Project = wrapper.Project
		l.loadedSections["project"] = true
	}
}

// loadSourceSection loads the source configuration section from source.yaml.
func (l *Loader) loadSourceSection(dir string, cfg *Config) {
	wrapper := &sourceFileWrapper{Source: cfg.Source}
	loaded, err := loadYAMLFile(dir, defs.SourceYAML, wrapper)
	if err != nil {
		slog.Warn("failed to load source config, using defaults", "error", err)
		return
	}
	if loaded {
		cfg.Source = wrapper.Source
		l.loadedSections["source"] = true
	}
}

// loadHTMLSection loads the HTML builder configuration from html.yaml.
func (l *Loader) loadHTMLSection(dir string, cfg *Config) {
	wrapper := &htmlFileWrapper{HTML: cfg.HTML}
	loaded, err := loadYAMLFile(dir, defs.HTMLYAML, wrapper)
	if err != nil {
		slog.Warn("failed to load html config, using defaults", "error", err)
		return
	}
	if loaded {
		cfg.HTML = wrapper.HTML
		l.loadedSections["html"] = true
	}
}

// loadLatexSection loads the LaTeX builder configuration from latex.yaml.
func (l *Loader) loadLatexSection(dir string, cfg *Config) {
	wrapper := &latexFileWrapper{Latex: cfg.Latex}
	loaded, err := loadYAMLFile(dir, defs.LatexYAML, wrapper)
	if err != nil {
		slog.Warn("failed to load latex config, using defaults", "error", err)
		return
	}
	if loaded {
		cfg.Latex = wrapper.Latex
		l.loadedSections["latex"] = true
	}
}

// loadManSection loads the manual page configuration from man.yaml.
func (l *Loader) loadManSection(dir string, cfg *Config) {
	wrapper := &manFileWrapper{Man: cfg.Man}
	loaded, err := loadYAMLFile(dir, defs.ManYAML, wrapper)
	if err != nil {
		slog.Warn("failed to load man config, using defaults", "error", err)
		return
	}
	if loaded {
		cfg.Man = wrapper.Man
		l.loadedSections["man"] = true
	}
}

// loadTexinfoSection loads the Texinfo configuration from texinfo.yaml.
func (l *Loader) loadTexinfoSection(dir string, cfg *Config) {
	wrapper := &texinfoFileWrapper{Texinfo: cfg.Texinfo}
	loaded, err := loadYAMLFile(dir, defs.TexinfoYAML, wrapper)
	if err != nil {
		slog.Warn("failed to load texinfo config, using defaults", "error", err)
		return
	}
	if loaded {
		cfg.Texinfo = wrapper.Texinfo
		l.loadedSections["texinfo"] = true
	}
}

// loadEpubSection loads the Epub configuration from epub.yaml.
func (l *Loader) loadEpubSection(dir string, cfg *Config) {
	wrapper := &epubFileWrapper{Epub: cfg.Epub}
	loaded, err := loadYAMLFile(dir, defs.EpubYAML, wrapper)
	if err != nil {
		slog.Warn("failed to load epub config, using defaults", "error", err)
		return
	}
	if loaded {
		cfg.Epub = wrapper.Epub
		l.loadedSections["epub"] = true
	}
}

// loadSystemSection loads the system configuration from system.yaml.
func (l *Loader) loadSystemSection(dir string, cfg *Config) {
	wrapper := &systemFileWrapper{System: cfg.System}
	loaded, err := loadYAMLFile(dir, defs.SystemYAML, wrapper)
	if err != nil {
		slog.Warn("failed to load system config, using defaults", "error", err)
		return
	}
	if loaded {
		cfg.System = wrapper.System
		l.loadedSections["system"] = true
	}
}

// loadYAMLFile reads a YAML file from the given directory and unmarshals it
// into the target struct. Returns (true, nil) if the file was found and parsed,
// (false, nil) if the file does not exist, or (false, error) on failure.
func loadYAMLFile(dir, filename string, target any) (bool, error) {
	path := filepath.Join(dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", filename, ErrInvalidYAML)
	}

	return true, nil
}
