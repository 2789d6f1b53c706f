package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"regexp"
	"text/template"

	"github.com/docforge/docforge/internal/config"
	"github.com/docforge/docforge/pkg/version"
)

//go:embed templates/conf.py.tmpl
var confTemplates embed.FS

// confTemplateName is the embedded template for the generated conf.py.
const confTemplateName = "templates/conf.py.tmpl"

// Sentinel errors for conf.py rendering.
var (
	ErrTemplateNotFound = errors.New("render: template not found")
	ErrUnexpandedToken  = errors.New("render: unexpanded token in output")
)

// unexpandedTokenPattern detects leftover dynamic tokens in rendered output.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{\.?[A-Za-z_][A-Za-z0-9_.]*\}\}|\$\{[A-Za-z_][A-Za-z0-9_]*\}`)

// confData carries pre-formatted Python literals into the conf.py template.
type confData struct {
	GeneratedBy string

	Project   string
	Copyright string
	Version   string
	Release   string

	Extensions             string
	TemplatesPath          string
	SourceSuffix           string
	MasterDoc              string
	ExcludePatterns        string
	AddFunctionParentheses string
	AddModuleNames         string
	PygmentsStyle          string
	AutoclassContent       string

	// ThemeOverride is empty when the theme is resolved at build time from
	// the READTHEDOCS environment variable; the template then emits the
	// conditional branch instead of a fixed assignment.
	ThemeOverride string
	HostedTheme   string
	LocalTheme    string

	ThemePath         string
	StaticPath        string
	DomainIndices     string
	UseIndex          string
	SplitIndex        string
	ShowSourcelink    string
	ShowBuilderCredit string
	ShowCopyright     string
	HelpBasename      string

	LatexElements  string
	LatexDocuments string

	ManPages string

	TexinfoDocuments string

	EpubTitle     string
	EpubAuthor    string
	EpubPublisher string
	EpubCopyright string
	EpubBasename  string
	EpubTheme     string
	EpubShowURLs  string
	EpubUseIndex  string
}

// ConfPy renders cfg as a builder configuration file. When html.theme is
// set it is emitted as a fixed assignment; otherwise the generated file
// carries the READTHEDOCS conditional so the theme is decided at build time.
func ConfPy(cfg *config.Config) ([]byte, error) {
	content, err := confTemplates.ReadFile(confTemplateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, confTemplateName)
	}

	tmpl, err := template.New(confTemplateName).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", confTemplateName, err)
	}

	docTitle := cfg.Project.Name + " Documentation"
	data := confData{
		GeneratedBy: "docforge " + version.GetVersion(),

		Project:   pyString(cfg.Project.Name),
		Copyright: pyString(cfg.Project.Copyright),
		Version:   pyString(cfg.Project.Version),
		Release:   pyString(cfg.Project.Release),

		Extensions:             pyStringListLines(cfg.Source.Extensions),
		TemplatesPath:          pyStringList(cfg.Source.TemplatesPath),
		SourceSuffix:           pyString(cfg.Source.SourceSuffix),
		MasterDoc:              pyString(cfg.Source.MasterDoc),
		ExcludePatterns:        pyStringList(cfg.Source.ExcludePatterns),
		AddFunctionParentheses: pyBool(cfg.Source.AddFunctionParentheses),
		AddModuleNames:         pyBool(cfg.Source.AddModuleNames),
		PygmentsStyle:          pyString(cfg.Source.PygmentsStyle),
		AutoclassContent:       pyString(string(cfg.Source.AutoclassContent)),

		HostedTheme: pyString(config.DefaultHostedTheme),
		LocalTheme:  pyString(config.DefaultLocalTheme),

		ThemePath:         pyStringList(cfg.HTML.ThemePath),
		StaticPath:        pyStringList(cfg.HTML.StaticPath),
		DomainIndices:     pyBool(cfg.HTML.DomainIndices),
		UseIndex:          pyBool(cfg.HTML.UseIndex),
		SplitIndex:        pyBool(cfg.HTML.SplitIndex),
		ShowSourcelink:    pyBool(cfg.HTML.ShowSourcelink),
		ShowBuilderCredit: pyBool(cfg.HTML.ShowBuilderCredit),
		ShowCopyright:     pyBool(cfg.HTML.ShowCopyright),
		HelpBasename:      pyString(helpBasename(cfg)),

		LatexElements:  pyDict(cfg.Latex.Elements),
		LatexDocuments: pyLatexDocuments(latexDocuments(cfg, docTitle)),

		ManPages: pyManPages(manPages(cfg, docTitle)),

		TexinfoDocuments: pyTexinfoDocuments(texinfoDocuments(cfg, docTitle)),

		EpubTitle:     pyString(fallback(cfg.Epub.Title, cfg.Project.Name)),
		EpubAuthor:    pyString(fallback(cfg.Epub.Author, cfg.Project.Author)),
		EpubPublisher: pyString(fallback(cfg.Epub.Publisher, cfg.Project.Author)),
		EpubCopyright: pyString(fallback(cfg.Epub.Copyright, cfg.Project.Copyright)),
		EpubBasename:  pyString(fallback(cfg.Epub.Basename, cfg.Project.Name)),
		EpubTheme:     pyString(cfg.Epub.Theme),
		EpubShowURLs:  pyString(cfg.Epub.ShowURLs),
		EpubUseIndex:  pyBool(cfg.Epub.UseIndex),
	}

	if cfg.HTML.Theme != "" {
		data.ThemeOverride = pyString(cfg.HTML.Theme)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render conf.py: %w", err)
	}

	result := buf.Bytes()
	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: found %q", ErrUnexpandedToken, string(loc))
	}

	return result, nil
}
