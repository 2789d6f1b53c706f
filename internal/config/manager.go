package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/docforge/docforge/internal/defs"
	"github.com/docforge/docforge/pkg/models"
)

// managerState represents the lifecycle state of the ConfigManager.
type managerState int

const (
	stateUninitialized managerState = iota
	stateInitialized
	stateWatching
)

// ConfigManager provides thread-safe configuration management.
// It must be initialized via Load() before use.
type ConfigManager struct {
	mu             sync.RWMutex
	config         *Config
	root           string
	state          managerState
	loader         *Loader
	callbacks      []func(Config)
	loadedSections map[string]bool
}

// NewConfigManager creates a new ConfigManager instance in uninitialized state.
func NewConfigManager() *ConfigManager {
	return &ConfigManager{
		loader: NewLoader(),
		state:  stateUninitialized,
	}
}

// Load reads configuration from the project root's .docforge/ directory.
// It merges file values with compiled defaults and applies environment
// variable overrides. The configuration is validated before being stored.
func (m *ConfigManager) Load(projectRoot string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	configDir := filepath.Join(filepath.Clean(projectRoot), defs.DocforgeDir)

	// Support DOCFORGE_CONFIG_DIR environment variable override
	if envDir := os.Getenv(defs.EnvConfigDir); envDir != "" {
		configDir = filepath.Clean(envDir)
	}

	cfg, err := m.loader.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Track which sections were loaded from files
	m.loadedSections = m.loader.LoadedSections()

	// Apply environment variable overrides (higher priority than files)
	applyEnvOverrides(cfg)

	// Validate the merged configuration
	if err := Validate(cfg, m.loadedSections); err != nil {
		return nil, err
	}

	m.config = cfg
	m.root = projectRoot
	m.state = stateInitialized

	return cfg, nil
}

// Get returns the current in-memory configuration.
// Returns nil if the manager has not been initialized via Load().
func (m *ConfigManager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// LoadedSections returns which sections were loaded from files during the
// most recent Load or Reload.
func (m *ConfigManager) LoadedSections() map[string]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]bool, len(m.loadedSections))
	for k, v := range m.loadedSections {
		result[k] = v
	}
	return result
}

// GetSection returns a named configuration section.
// Returns ErrNotInitialized if Load() has not been called.
// Returns ErrSectionNotFound if the section name is invalid.
func (m *ConfigManager) GetSection(name string) (any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state == stateUninitialized {
		return nil, ErrNotInitialized
	}

	return m.getSectionLocked(name)
}

// SetSection updates a named configuration section in memory.
// Returns ErrNotInitialized if Load() has not been called.
// Returns ErrSectionNotFound if the section name is invalid.
// Returns ErrSectionTypeMismatch if the value type does not match.
func (m *ConfigManager) SetSection(name string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateUninitialized {
		return ErrNotInitialized
	}

	return m.setSectionLocked(name, value)
}

// Save persists the current configuration to disk atomically.
// Each section is saved to its corresponding YAML file using
// temp file + os.Rename for atomic writes.
// Returns ErrNotInitialized if Load() has not been called.
func (m *ConfigManager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateUninitialized {
		return ErrNotInitialized
	}

	sectionsDir := filepath.Join(filepath.Clean(m.root), defs.DocforgeDir, defs.SectionsSubdir)

	// Ensure directory exists
	if err := os.MkdirAll(sectionsDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	sections := []struct {
		filename string
		data     any
	}{
		{defs.ProjectYAML, projectFileWrapper{Project: m.config.Project}},
		{defs.SourceYAML, sourceFileWrapper{Source: m.config.Source}},
		{defs.HTMLYAML, htmlFileWrapper{HTML: m.config.HTML}},
		{defs.LatexYAML, latexFileWrapper{Latex: m.config.Latex}},
		{defs.ManYAML, manFileWrapper{Man: m.config.Man}},
		{defs.TexinfoYAML, texinfoFileWrapper{Texinfo: m.config.Texinfo}},
		{defs.EpubYAML, epubFileWrapper{Epub: m.config.Epub}},
		{defs.SystemYAML, systemFileWrapper{System: m.config.System}},
	}

	for _, s := range sections {
		if err := saveSection(sectionsDir, s.filename, s.data); err != nil {
			return fmt.Errorf("save %s: %w", s.filename, err)
		}
	}

	return nil
}

// Reload forces a re-read from disk, replacing the in-memory configuration.
// Returns ErrNotInitialized if Load() has not been called.
func (m *ConfigManager) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateUninitialized {
		return ErrNotInitialized
	}

	configDir := filepath.Join(filepath.Clean(m.root), defs.DocforgeDir)
	if envDir := os.Getenv(defs.EnvConfigDir); envDir != "" {
		configDir = filepath.Clean(envDir)
	}

	cfg, err := m.loader.Load(configDir)
	if err != nil {
		return fmt.Errorf("reload config: %w", err)
	}

	m.loadedSections = m.loader.LoadedSections()
	applyEnvOverrides(cfg)

	if err := Validate(cfg, m.loadedSections); err != nil {
		return err
	}

	m.config = cfg

	// Notify registered callbacks
	for _, cb := range m.callbacks {
		cb(*m.config)
	}

	return nil
}

// Watch registers a callback to be invoked when configuration is reloaded.
// Returns ErrNotInitialized if Load() has not been called.
func (m *ConfigManager) Watch(callback func(Config)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateUninitialized {
		return ErrNotInitialized
	}

	m.callbacks = append(m.callbacks, callback)
	m.state = stateWatching
	return nil
}

// getSectionLocked returns a section by name. Caller must hold at least RLock.
func (m *ConfigManager) getSectionLocked(name string) (any, error) {
	switch name {
	case "project":
		return m.config.Project, nil
	case "source":
		return m.config.Source, nil
	case "html":
		return m.config.HTML, nil
	case "latex":
		return m.config.Latex, nil
	case "man":
		return m.config.Man, nil
	case "texinfo":
		return m.config.Texinfo, nil
	case "epub":
		return m.config.Epub, nil
	case "system":
		return m.config.System, nil
	default:
		return nil, ErrSectionNotFound
	}
}

// setSectionLocked updates a section by name. Caller must hold Lock.
func (m *ConfigManager) setSectionLocked(name string, value any) error {
	switch name {
	case "project":
		v, ok := value.(models.ProjectConfig)
		if !ok {
			return fmt.Errorf("%w: expected ProjectConfig for section %q", ErrSectionTypeMismatch, name)
		}
		m.config.Project = v
	case "source":
		v, ok := value.(models.SourceConfig)
		if !ok {
			return fmt.Errorf("%w: expected SourceConfig for section %q", ErrSectionTypeMismatch, name)
		}
		m.config.Source = v
	case "html":
		v, ok := value.(models.HTMLConfig)
		if !ok {
			return fmt.Errorf("%w: expected HTMLConfig for section %q", ErrSectionTypeMismatch, name)
		}
		m.config.HTML = v
	case "latex":
		v, ok := value.(LatexConfig)
		if !ok {
			return fmt.Errorf("%w: expected LatexConfig for section %q", ErrSectionTypeMismatch, name)
		}
		m.config.Latex = v
	case "man":
		v, ok := value.(ManConfig)
		if !ok {
			return fmt.Errorf("%w: expected ManConfig for section %q", ErrSectionTypeMismatch, name)
		}
		m.config.Man = v
	case "texinfo":
		v, ok := value.(TexinfoConfig)
		if !ok {
			return fmt.Errorf("%w: expected TexinfoConfig for section %q", ErrSectionTypeMismatch, name)
		}
		m.config.Texinfo = v
	case "epub":
		v, ok := value.(EpubConfig)
		if !ok {
			return fmt.Errorf("%w: expected EpubConfig for section %q", ErrSectionTypeMismatch, name)
		}
		m.config.Epub = v
	case "system":
		v, ok := value.(SystemConfig)
		if !ok {
			return fmt.Errorf("%w: expected SystemConfig for section %q", ErrSectionTypeMismatch, name)
		}
		m.config.System = v
	default:
		return ErrSectionNotFound
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables have higher priority than file-based values.
func applyEnvOverrides(cfg *Config) {
	if level := os.Getenv(defs.EnvLogLevel); level != "" {
		cfg.System.LogLevel = level
	}
	if format := os.Getenv(defs.EnvLogFormat); format != "" {
		cfg.System.LogFormat = format
	}
	if noColor := os.Getenv(defs.EnvNoColor); noColor == "true" || noColor == "1" {
		cfg.System.NoColor = true
	}
}

// saveSection marshals data to YAML and writes it atomically.
func saveSection(dir, filename string, data any) error {
	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filename, err)
	}

	path := filepath.Join(dir, filename)
	return atomicWrite(path, yamlData)
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".docforge-config-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
