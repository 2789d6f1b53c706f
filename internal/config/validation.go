package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/docforge/docforge/pkg/models"
)

// Dynamic token patterns that must not appear in configuration values.
// These indicate unexpanded template variables leaking into section files.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),        // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`),      // {{VAR}}
	regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`), // $VAR
}

// versionPattern matches dotted numeric version strings like "1.2" or "1.2.1".
var versionPattern = regexp.MustCompile(`^\d+(\.\d+)*$`)

// extensionPattern matches dotted extension identifiers like "sphinx.ext.autodoc".
var extensionPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Validate checks the configuration for correctness.
// The loadedSections map indicates which sections were loaded from YAML files
// (as opposed to using defaults). Required field validation only applies
// to sections that were explicitly loaded.
func Validate(cfg *Config, loadedSections map[string]bool) error {
	var errs []ValidationError

	// Check required fields for loaded sections
	errs = append(errs, validateRequired(cfg, loadedSections)...)

	// Check project version/release format and prefix invariant
	errs = append(errs, validateProjectConfig(&cfg.Project)...)

	// Check source layout and extension names
	errs = append(errs, validateSourceConfig(&cfg.Source)...)

	// Check builder output sections
	errs = append(errs, validateManConfig(&cfg.Man)...)
	errs = append(errs, validateEpubConfig(&cfg.Epub)...)

	// Check for unexpanded dynamic tokens
	errs = append(errs, validateDynamicTokens(cfg)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateRequired checks that required fields are populated for loaded sections.
func validateRequired(cfg *Config, loadedSections map[string]bool) []ValidationError {
	var errs []ValidationError

	if loadedSections["project"] && cfg.Project.Name == "" {
		errs = append(errs, ValidationError{
			Field:   "project.name",
			Message: "required field is empty; set the project name in .docforge/config/sections/project.yaml (example: name: My Docs)",
			Wrapped: ErrInvalidConfig,
		})
	}

	if loadedSections["project"] && cfg.Project.Author == "" {
		errs = append(errs, ValidationError{
			Field:   "project.author",
			Message: "required field is empty; set the author in .docforge/config/sections/project.yaml (example: author: YourName)",
			Wrapped: ErrInvalidConfig,
		})
	}

	return errs
}

// validateProjectConfig validates version and release formats.
// When both are set, release must extend version (version "1.2",
// release "1.2.1").
func validateProjectConfig(p *models.ProjectConfig) []ValidationError {
	var errs []ValidationError

	if p.Version != "" && !versionPattern.MatchString(p.Version) {
		errs = append(errs, ValidationError{
			Field:   "project.version",
			Message: "must be a dotted numeric version (example: 1.2)",
			Value:   p.Version,
			Wrapped: ErrInvalidConfig,
		})
	}

	if p.Release != "" && !versionPattern.MatchString(p.Release) {
		errs = append(errs, ValidationError{
			Field:   "project.release",
			Message: "must be a dotted numeric version (example: 1.2.1)",
			Value:   p.Release,
			Wrapped: ErrInvalidConfig,
		})
	}

	if p.Version != "" && p.Release != "" &&
		versionPattern.MatchString(p.Version) && versionPattern.MatchString(p.Release) {
		if p.Release != p.Version && !strings.HasPrefix(p.Release, p.Version+".") {
			errs = append(errs, ValidationError{
				Field:   "project.release",
				Message: fmt.Sprintf("must extend version %q (example: %s.1)", p.Version, p.Version),
				Value:   p.Release,
				Wrapped: ErrInvalidConfig,
			})
		}
	}

	return errs
}

// validPygmentsStyles lists recognized highlighting style names.
var validPygmentsStyles = map[string]bool{
	"sphinx":   true,
	"default":  true,
	"friendly": true,
	"colorful": true,
	"manni":    true,
	"monokai":  true,
	"murphy":   true,
	"tango":    true,
	"trac":     true,
}

// validateSourceConfig validates source layout and extension names.
func validateSourceConfig(s *models.SourceConfig) []ValidationError {
	var errs []ValidationError

	if s.MasterDoc == "" {
		errs = append(errs, ValidationError{
			Field:   "source.master_doc",
			Message: "must not be empty",
			Wrapped: ErrInvalidConfig,
		})
	}

	if s.SourceSuffix != "" && !strings.HasPrefix(s.SourceSuffix, ".") {
		errs = append(errs, ValidationError{
			Field:   "source.source_suffix",
			Message: "must start with a dot (example: .rst)",
			Value:   s.SourceSuffix,
			Wrapped: ErrInvalidConfig,
		})
	}

	if s.PygmentsStyle != "" && !validPygmentsStyles[s.PygmentsStyle] {
		errs = append(errs, ValidationError{
			Field:   "source.pygments_style",
			Message: "unrecognized highlighting style",
			Value:   s.PygmentsStyle,
			Wrapped: ErrInvalidConfig,
		})
	}

	if s.AutoclassContent != "" && !s.AutoclassContent.IsValid() {
		validModes := autoclassContentStrings()
		errs = append(errs, ValidationError{
			Field:   "source.autoclass_content",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validModes, ", ")),
			Value:   string(s.AutoclassContent),
			Wrapped: ErrInvalidAutoclassContent,
		})
	}

	for i, ext := range s.Extensions {
		if !extensionPattern.MatchString(ext) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("source.extensions[%d]", i),
				Message: "must be a dotted identifier (example: sphinx.ext.autodoc)",
				Value:   ext,
				Wrapped: ErrInvalidConfig,
			})
		}
	}

	return errs
}

// validateManConfig checks manual page entries.
func validateManConfig(m *ManConfig) []ValidationError {
	var errs []ValidationError

	for i, page := range m.Pages {
		if page.Section < 1 || page.Section > 9 {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("man.pages[%d].section", i),
				Message: "must be between 1 and 9",
				Value:   page.Section,
				Wrapped: ErrInvalidConfig,
			})
		}
		if page.Name == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("man.pages[%d].name", i),
				Message: "must not be empty",
				Wrapped: ErrInvalidConfig,
			})
		}
	}

	return errs
}

// validEpubShowURLs lists recognized epub show_urls values.
var validEpubShowURLs = map[string]bool{
	"footnote": true,
	"inline":   true,
	"no":       true,
}

// validateEpubConfig checks the Epub builder configuration.
func validateEpubConfig(e *EpubConfig) []ValidationError {
	var errs []ValidationError

	if e.ShowURLs != "" && !validEpubShowURLs[e.ShowURLs] {
		errs = append(errs, ValidationError{
			Field:   "epub.show_urls",
			Message: "must be one of: footnote, inline, no",
			Value:   e.ShowURLs,
			Wrapped: ErrInvalidConfig,
		})
	}

	return errs
}

// validateDynamicTokens checks all string fields for unexpanded dynamic tokens.
func validateDynamicTokens(cfg *Config) []ValidationError {
	var errs []ValidationError

	// Project section
	errs = append(errs, checkStringField("project.name", cfg.Project.Name)...)
	errs = append(errs, checkStringField("project.author", cfg.Project.Author)...)
	errs = append(errs, checkStringField("project.copyright", cfg.Project.Copyright)...)
	errs = append(errs, checkStringField("project.version", cfg.Project.Version)...)
	errs = append(errs, checkStringField("project.release", cfg.Project.Release)...)

	// Source section
	errs = append(errs, checkStringField("source.source_suffix", cfg.Source.SourceSuffix)...)
	errs = append(errs, checkStringField("source.master_doc", cfg.Source.MasterDoc)...)
	errs = append(errs, checkStringField("source.pygments_style", cfg.Source.PygmentsStyle)...)

	// HTML section
	errs = append(errs, checkStringField("html.theme", cfg.HTML.Theme)...)
	errs = append(errs, checkStringField("html.help_basename", cfg.HTML.HelpBasename)...)

	// Latex section
	for key, value := range cfg.Latex.Elements {
		errs = append(errs, checkStringField("latex.elements."+key, value)...)
	}
	for i, doc := range cfg.Latex.Documents {
		prefix := fmt.Sprintf("latex.documents[%d].", i)
		errs = append(errs, checkStringField(prefix+"title", doc.Title)...)
		errs = append(errs, checkStringField(prefix+"author", doc.Author)...)
		errs = append(errs, checkStringField(prefix+"target", doc.Target)...)
	}

	// Man section
	for i, page := range cfg.Man.Pages {
		prefix := fmt.Sprintf("man.pages[%d].", i)
		errs = append(errs, checkStringField(prefix+"name", page.Name)...)
		errs = append(errs, checkStringField(prefix+"description", page.Description)...)
	}

	// Epub section
	errs = append(errs, checkStringField("epub.title", cfg.Epub.Title)...)
	errs = append(errs, checkStringField("epub.author", cfg.Epub.Author)...)
	errs = append(errs, checkStringField("epub.publisher", cfg.Epub.Publisher)...)
	errs = append(errs, checkStringField("epub.basename", cfg.Epub.Basename)...)

	// System section
	errs = append(errs, checkStringField("system.log_level", cfg.System.LogLevel)...)
	errs = append(errs, checkStringField("system.log_format", cfg.System.LogFormat)...)

	return errs
}

// checkStringField checks a single string field for dynamic token patterns.
func checkStringField(field, value string) []ValidationError {
	if value == "" {
		return nil
	}
	for _, pattern := range dynamicTokenPatterns {
		if match := pattern.FindString(value); match != "" {
			return []ValidationError{
				{
					Field:   field,
					Message: fmt.Sprintf("contains unexpanded dynamic token: %s", match),
					Value:   value,
					Wrapped: ErrDynamicToken,
				},
			}
		}
	}
	return nil
}

// autoclassContentStrings returns valid autoclass content values as strings.
func autoclassContentStrings() []string {
	modes := models.ValidAutoclassContents()
	strs := make([]string, len(modes))
	for i, m := range modes {
		strs[i] = string(m)
	}
	return strs
}
