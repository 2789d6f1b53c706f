package config

import (
	"slices"

	"github.com/docforge/docforge/pkg/models"
)

// Config is the root configuration aggregate containing all sections.
// It imports types from pkg/models for shared types (ProjectConfig,
// SourceConfig, HTMLConfig) and defines internal types for the rest.
type Config struct {
	Project models.ProjectConfig `yaml:"project"`
	Source  models.SourceConfig  `yaml:"source"`
	HTML    models.HTMLConfig    `yaml:"html"`
	Latex   LatexConfig          `yaml:"latex"`
	Man     ManConfig            `yaml:"man"`
	Texinfo TexinfoConfig        `yaml:"texinfo"`
	Epub    EpubConfig           `yaml:"epub"`
	System  SystemConfig         `yaml:"system"`
}

// LatexConfig represents the LaTeX builder configuration section.
// Elements holds builder preamble options keyed by option name
// (papersize, pointsize, preamble, ...).
type LatexConfig struct {
	Elements  map[string]string     `yaml:"elements"`
	Documents []models.DocumentSpec `yaml:"documents"`
}

// ManConfig represents the manual page builder configuration section.
type ManConfig struct {
	Pages []models.ManPageSpec `yaml:"pages"`
}

// TexinfoConfig represents the Texinfo builder configuration section.
type TexinfoConfig struct {
	Documents []models.TexinfoSpec `yaml:"documents"`
}

// EpubConfig represents the Epub builder configuration section.
// Empty Title, Author, Publisher, and Copyright fall back to the
// project section when the namespace is rendered.
type EpubConfig struct {
	Title     string `yaml:"title"`
	Author    string `yaml:"author"`
	Publisher string `yaml:"publisher"`
	Copyright string `yaml:"copyright"`
	Basename  string `yaml:"basename"`
	Theme     string `yaml:"theme"`
	ShowURLs  string `yaml:"show_urls"` // "footnote", "inline", "no"
	UseIndex  bool   `yaml:"use_index"`
}

// SystemConfig represents the system configuration section.
type SystemConfig struct {
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
	NoColor        bool   `yaml:"no_color"`
	NonInteractive bool   `yaml:"non_interactive"`
}

// sectionNames lists all valid configuration section names.
var sectionNames = []string{
	"project", "source", "html", "latex",
	"man", "texinfo", "epub", "system",
}

// IsValidSectionName checks if the given name is a valid section name.
func IsValidSectionName(name string) bool {
	return slices.Contains(sectionNames, name)
}

// ValidSectionNames returns all valid section names.
func ValidSectionNames() []string {
	result := make([]string, len(sectionNames))
	copy(result, sectionNames)
	return result
}

// YAML file wrapper types for proper unmarshaling with top-level keys.
// Each section file wraps its content under a top-level key.

type projectFileWrapper struct {
	Project models.ProjectConfig `yaml:"project"`
}

type sourceFileWrapper struct {
	Source models.SourceConfig `yaml:"source"`
}

type htmlFileWrapper struct {
	HTML models.HTMLConfig `yaml:"html"`
}

type latexFileWrapper struct {
	Latex LatexConfig `yaml:"latex"`
}

type manFileWrapper struct {
	Man ManConfig `yaml:"man"`
}

type texinfoFileWrapper struct {
	Texinfo TexinfoConfig `yaml:"texinfo"`
}

type epubFileWrapper struct {
	Epub EpubConfig `yaml:"epub"`
}

type systemFileWrapper struct {
	System SystemConfig `yaml:"system"`
}
