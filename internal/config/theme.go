package config

import (
	"os"

	"github.com/docforge/docforge/internal/defs"
)

// readTheDocsTrue is the exact value the hosted build environment sets.
// The comparison is case-sensitive: "TRUE", "true", or any other value
// selects the local theme.
const readTheDocsTrue = "True"

// ResolveTheme returns the HTML theme identifier for the current build
// environment. An explicit html.theme value in the configuration wins.
// Otherwise the READTHEDOCS environment variable decides: exactly "True"
// selects the hosted builder's bundled theme, anything else (including
// unset) selects the locally installed theme.
func ResolveTheme(cfg *Config) string {
	if cfg != nil && cfg.HTML.Theme != "" {
		return cfg.HTML.Theme
	}
	return resolveEnvTheme(os.Getenv(defs.EnvReadTheDocs))
}

// resolveEnvTheme maps the READTHEDOCS value to a theme identifier.
func resolveEnvTheme(value string) string {
	if value == readTheDocsTrue {
		return DefaultHostedTheme
	}
	return DefaultLocalTheme
}

// OnHostedBuilder reports whether the current process runs inside the
// hosted documentation build environment.
func OnHostedBuilder() bool {
	return os.Getenv(defs.EnvReadTheDocs) == readTheDocsTrue
}
