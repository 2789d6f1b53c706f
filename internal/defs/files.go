// Package defs centralizes file and directory names used across docforge.
package defs

// Directory layout under the project root.
const (
	// DocforgeDir is the docforge metadata directory in a project root.
	DocforgeDir = ".docforge"

	// ConfigSubdir is the configuration directory under DocforgeDir.
	ConfigSubdir = "config"

	// SectionsSubdir is the section-file directory under ConfigSubdir.
	SectionsSubdir = "config/sections"
)

// Section YAML file names under .docforge/config/sections/.
const (
	ProjectYAML = "project.yaml"
	SourceYAML  = "source.yaml"
	HTMLYAML    = "html.yaml"
	LatexYAML   = "latex.yaml"
	ManYAML     = "man.yaml"
	TexinfoYAML = "texinfo.yaml"
	EpubYAML    = "epub.yaml"
	SystemYAML  = "system.yaml"
)

// Scaffold file names deployed by docforge init.
const (
	// MasterDocRST is the default master document file.
	MasterDocRST = "index.rst"

	// MakefileName is the generated convenience Makefile.
	MakefileName = "Makefile"

	// ConfPy is the generated builder configuration file.
	ConfPy = "conf.py"
)

// Environment variable names.
const (
	// EnvConfigDir overrides the configuration directory location.
	EnvConfigDir = "DOCFORGE_CONFIG_DIR"

	// EnvLogLevel overrides system.log_level.
	EnvLogLevel = "DOCFORGE_LOG_LEVEL"

	// EnvLogFormat overrides system.log_format.
	EnvLogFormat = "DOCFORGE_LOG_FORMAT"

	// EnvNoColor disables colored output when set to "true" or "1".
	EnvNoColor = "DOCFORGE_NO_COLOR"

	// EnvReadTheDocs is set by the hosted documentation build environment.
	// Theme resolution compares it against the literal string "True".
	EnvReadTheDocs = "READTHEDOCS"
)
