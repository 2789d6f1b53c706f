package config

import (
	"github.com/docforge/docforge/pkg/models"
)

// Default value constants to avoid magic strings.
const (
	DefaultSourceSuffix  = ".rst"
	DefaultMasterDoc     = "index"
	DefaultPygmentsStyle = "sphinx"

	DefaultTemplatesDir = "_templates"
	DefaultStaticDir    = "_static"
	DefaultThemesDir    = "_themes"
	DefaultBuildDir     = "_build"

	// Theme identifiers used by theme resolution.
	DefaultHostedTheme = "default"
	DefaultLocalTheme  = "sphinx_rtd_theme"

	DefaultLatexPapersize = "a4paper"
	DefaultLatexPointsize = "10pt"
	DefaultLatexClass     = "manual"

	DefaultManSection = 1

	DefaultTexinfoCategory = "Miscellaneous"

	DefaultEpubTheme    = "epub"
	DefaultEpubShowURLs = "footnote"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// DefaultExtensions returns the stock builder extension list.
func DefaultExtensions() []string {
	return []string{
		"sphinx.ext.autodoc",
		"sphinx.ext.doctest",
		"sphinxcontrib.napoleon",
		"sphinx.ext.todo",
		"sphinx.ext.coverage",
		"sphinx.ext.mathjax",
		"sphinx.ext.ifconfig",
		"sphinx.ext.viewcode",
	}
}

// NewDefaultConfig returns a Config with all fields set to compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Project: NewDefaultProjectConfig(),
		Source:  NewDefaultSourceConfig(),
		HTML:    NewDefaultHTMLConfig(),
		Latex:   NewDefaultLatexConfig(),
		Man:     NewDefaultManConfig(),
		Texinfo: NewDefaultTexinfoConfig(),
		Epub:    NewDefaultEpubConfig(),
		System:  NewDefaultSystemConfig(),
	}
}

// NewDefaultProjectConfig returns a ProjectConfig with default values.
// Note: Name and Author are intentionally empty; they are populated from
// project.yaml or the init wizard.
func NewDefaultProjectConfig() models.ProjectConfig {
	return models.ProjectConfig{}
}

// NewDefaultSourceConfig returns a SourceConfig with default values.
func NewDefaultSourceConfig() models.SourceConfig {
	return models.SourceConfig{
		Extensions:             DefaultExtensions(),
		TemplatesPath:          []string{DefaultTemplatesDir},
		SourceSuffix:           DefaultSourceSuffix,
		MasterDoc:              DefaultMasterDoc,
		ExcludePatterns:        []string{DefaultBuildDir},
		AddFunctionParentheses: true,
		AddModuleNames:         false,
		PygmentsStyle:          DefaultPygmentsStyle,
		AutoclassContent:       models.AutoclassBoth,
	}
}

// NewDefaultHTMLConfig returns an HTMLConfig with default values.
// Theme is intentionally empty so resolution falls through to the
// build environment (see ResolveTheme).
func NewDefaultHTMLConfig() models.HTMLConfig {
	return models.HTMLConfig{
		ThemePath:         []string{DefaultThemesDir},
		StaticPath:        []string{DefaultStaticDir},
		DomainIndices:     true,
		UseIndex:          true,
		SplitIndex:        false,
		ShowSourcelink:    true,
		ShowBuilderCredit: true,
		ShowCopyright:     true,
	}
}

// NewDefaultLatexConfig returns a LatexConfig with default values.
func NewDefaultLatexConfig() LatexConfig {
	return LatexConfig{
		Elements: map[string]string{
			"papersize": DefaultLatexPapersize,
			"pointsize": DefaultLatexPointsize,
		},
	}
}

// NewDefaultManConfig returns a ManConfig with default values.
func NewDefaultManConfig() ManConfig {
	return ManConfig{}
}

// NewDefaultTexinfoConfig returns a TexinfoConfig with default values.
func NewDefaultTexinfoConfig() TexinfoConfig {
	return TexinfoConfig{}
}

// NewDefaultEpubConfig returns an EpubConfig with default values.
func NewDefaultEpubConfig() EpubConfig {
	return EpubConfig{
		Theme:    DefaultEpubTheme,
		ShowURLs: DefaultEpubShowURLs,
		UseIndex: true,
	}
}

// NewDefaultSystemConfig returns a SystemConfig with default values.
func NewDefaultSystemConfig() SystemConfig {
	return SystemConfig{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}
