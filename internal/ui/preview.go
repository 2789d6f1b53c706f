package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/docforge/docforge/internal/render"
)

// previewWordWrap is the column width for rendered markdown previews.
const previewWordWrap = 100

// BuildMarkdownReport builds a markdown report of the resolved namespace,
// suitable for RenderMarkdown or plain output.
func BuildMarkdownReport(ns render.Namespace, resolvedTheme string) string {
	var b strings.Builder

	project, _ := ns.Get("project")
	release, _ := ns.Get("release")

	fmt.Fprintf(&b, "# %v documentation configuration\n\n", project)
	fmt.Fprintf(&b, "Release **%v**, HTML theme **%s**.\n\n", release, resolvedTheme)

	b.WriteString("| Key | Value |\n|-----|-------|\n")
	for _, e := range ns {
		fmt.Fprintf(&b, "| `%s` | %s |\n", e.Key, markdownValue(e.Value))
	}

	return b.String()
}

// RenderMarkdown renders markdown for the terminal using glamour.
// With noColor set it uses the style glamour reserves for dumb terminals.
func RenderMarkdown(markdown string, noColor bool) (string, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(previewWordWrap),
	}
	if noColor {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// markdownValue formats a namespace value for a markdown table cell.
func markdownValue(v any) string {
	switch val := v.(type) {
	case string:
		if val == "" {
			return "*(empty)*"
		}
		return "`" + val + "`"
	case []string:
		if len(val) == 0 {
			return "*(none)*"
		}
		quoted := make([]string, len(val))
		for i, s := range val {
			quoted[i] = "`" + s + "`"
		}
		return strings.Join(quoted, ", ")
	case bool:
		return fmt.Sprintf("`%t`", val)
	default:
		s := fmt.Sprintf("%+v", val)
		s = strings.ReplaceAll(s, "|", "\\|")
		if len(s) > 120 {
			s = s[:117] + "..."
		}
		return "`" + s + "`"
	}
}
