package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/docforge/docforge/internal/render"
)

// namespaceGroups maps key prefixes to display group titles, in order.
var namespaceGroups = []struct {
	title   string
	prefix  string
	exclude string
}{
	{title: "Project", prefix: ""},
	{title: "HTML output", prefix: "html"},
	{title: "LaTeX output", prefix: "latex"},
	{title: "Manual pages", prefix: "man_"},
	{title: "Texinfo output", prefix: "texinfo"},
	{title: "Epub output", prefix: "epub"},
}

// WriteSummary writes a grouped, styled listing of the flat namespace.
func WriteSummary(w io.Writer, theme *Theme, ns render.Namespace) {
	for _, group := range namespaceGroups {
		var lines []string
		for _, e := range ns {
			if !inGroup(e.Key, group.prefix) {
				continue
			}
			lines = append(lines, fmt.Sprintf("  %s = %s",
				theme.Key.Render(e.Key),
				theme.Value.Render(formatValue(e.Value))))
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintln(w, theme.Title.Render(group.title))
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}
}

// inGroup decides which display group a key belongs to. The empty prefix
// is the catch-all project/source group for keys no other group claims.
func inGroup(key, prefix string) bool {
	if prefix == "" {
		for _, g := range namespaceGroups {
			if g.prefix != "" && strings.HasPrefix(key, g.prefix) {
				return false
			}
		}
		return true
	}
	return strings.HasPrefix(key, prefix)
}

// formatValue renders a namespace value compactly for terminal display.
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		if val == "" {
			return `""`
		}
		return val
	case []string:
		return "[" + strings.Join(val, ", ") + "]"
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		s := fmt.Sprintf("%+v", val)
		if len(s) > 80 {
			s = s[:77] + "..."
		}
		return s
	}
}
