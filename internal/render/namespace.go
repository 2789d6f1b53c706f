// Package render flattens the sectioned configuration into the flat
// key namespace consumed by the documentation builder and renders it
// to YAML, JSON, and conf.py.
package render

import (
	"github.com/docforge/docforge/internal/config"
	"github.com/docforge/docforge/pkg/models"
)

// Entry is one key-value binding in the flat configuration namespace.
type Entry struct {
	Key   string
	Value any
}

// Namespace is the ordered flat view of a configuration. Keys follow the
// schema the external builder recognizes (project, version, html_theme, ...).
type Namespace []Entry

// Get returns the value bound to key. The second return value indicates
// whether the key exists.
func (n Namespace) Get(key string) (any, bool) {
	for _, e := range n {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the namespace keys in order.
func (n Namespace) Keys() []string {
	keys := make([]string, len(n))
	for i, e := range n {
		keys[i] = e.Key
	}
	return keys
}

// BuildNamespace flattens cfg into the builder's flat key namespace.
// The theme argument is the resolved HTML theme (see config.ResolveTheme);
// it is bound to html_theme so exports always carry a concrete value.
// Empty epub fields and missing document lists are derived from the
// project section the way the builder's quickstart would.
func BuildNamespace(cfg *config.Config, theme string) Namespace {
	docTitle := cfg.Project.Name + " Documentation"

	return Namespace{
		{Key: "project", Value: cfg.Project.Name},
		{Key: "copyright", Value: cfg.Project.Copyright},
		{Key: "version", Value: cfg.Project.Version},
		{Key: "release", Value: cfg.Project.Release},

		{Key: "extensions", Value: cfg.Source.Extensions},
		{Key: "templates_path", Value: cfg.Source.TemplatesPath},
		{Key: "source_suffix", Value: cfg.Source.SourceSuffix},
		{Key: "master_doc", Value: cfg.Source.MasterDoc},
		{Key: "exclude_patterns", Value: cfg.Source.ExcludePatterns},
		{Key: "add_function_parentheses", Value: cfg.Source.AddFunctionParentheses},
		{Key: "add_module_names", Value: cfg.Source.AddModuleNames},
		{Key: "pygments_style", Value: cfg.Source.PygmentsStyle},
		{Key: "autoclass_content", Value: string(cfg.Source.AutoclassContent)},

		{Key: "html_theme", Value: theme},
		{Key: "html_theme_path", Value: cfg.HTML.ThemePath},
		{Key: "html_static_path", Value: cfg.HTML.StaticPath},
		{Key: "html_domain_indices", Value: cfg.HTML.DomainIndices},
		{Key: "html_use_index", Value: cfg.HTML.UseIndex},
		{Key: "html_split_index", Value: cfg.HTML.SplitIndex},
		{Key: "html_show_sourcelink", Value: cfg.HTML.ShowSourcelink},
		{Key: "html_show_sphinx", Value: cfg.HTML.ShowBuilderCredit},
		{Key: "html_show_copyright", Value: cfg.HTML.ShowCopyright},
		{Key: "htmlhelp_basename", Value: helpBasename(cfg)},

		{Key: "latex_elements", Value: cfg.Latex.Elements},
		{Key: "latex_documents", Value: latexDocuments(cfg, docTitle)},

		{Key: "man_pages", Value: manPages(cfg, docTitle)},

		{Key: "texinfo_documents", Value: texinfoDocuments(cfg, docTitle)},

		{Key: "epub_title", Value: fallback(cfg.Epub.Title, cfg.Project.Name)},
		{Key: "epub_author", Value: fallback(cfg.Epub.Author, cfg.Project.Author)},
		{Key: "epub_publisher", Value: fallback(cfg.Epub.Publisher, cfg.Project.Author)},
		{Key: "epub_copyright", Value: fallback(cfg.Epub.Copyright, cfg.Project.Copyright)},
		{Key: "epub_basename", Value: fallback(cfg.Epub.Basename, cfg.Project.Name)},
		{Key: "epub_theme", Value: cfg.Epub.Theme},
		{Key: "epub_show_urls", Value: cfg.Epub.ShowURLs},
		{Key: "epub_use_index", Value: cfg.Epub.UseIndex},
	}
}

// helpBasename returns the HTML help basename, defaulting to the project name.
func helpBasename(cfg *config.Config) string {
	return fallback(cfg.HTML.HelpBasename, cfg.Project.Name)
}

// latexDocuments returns the configured LaTeX documents, deriving a single
// manual-class entry from the project section when none are configured.
func latexDocuments(cfg *config.Config, docTitle string) []models.DocumentSpec {
	if len(cfg.Latex.Documents) > 0 {
		return cfg.Latex.Documents
	}
	if cfg.Project.Name == "" {
		return nil
	}
	return []models.DocumentSpec{
		{
			StartDoc: cfg.Source.MasterDoc,
			Target:   cfg.Project.Name + ".tex",
			Title:    docTitle,
			Author:   cfg.Project.Author,
			Class:    config.DefaultLatexClass,
		},
	}
}

// manPages returns the configured manual pages, deriving one from the
// project section when none are configured.
func manPages(cfg *config.Config, docTitle string) []models.ManPageSpec {
	if len(cfg.Man.Pages) > 0 {
		return cfg.Man.Pages
	}
	if cfg.Project.Name == "" {
		return nil
	}
	return []models.ManPageSpec{
		{
			StartDoc:    cfg.Source.MasterDoc,
			Name:        cfg.Project.Name,
			Description: docTitle,
			Authors:     []string{cfg.Project.Author},
			Section:     config.DefaultManSection,
		},
	}
}

// texinfoDocuments returns the configured Texinfo documents, deriving one
// from the project section when none are configured.
func texinfoDocuments(cfg *config.Config, docTitle string) []models.TexinfoSpec {
	if len(cfg.Texinfo.Documents) > 0 {
		return cfg.Texinfo.Documents
	}
	if cfg.Project.Name == "" {
		return nil
	}
	return []models.TexinfoSpec{
		{
			StartDoc:    cfg.Source.MasterDoc,
			Target:      cfg.Project.Name,
			Title:       docTitle,
			Author:      cfg.Project.Author,
			DirEntry:    cfg.Project.Name,
			Description: docTitle,
			Category:    config.DefaultTexinfoCategory,
		},
	}
}

// fallback returns value, or def when value is empty.
func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
