package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/docforge/docforge/pkg/models"
)

// pyString quotes a string as a single-quoted Python literal.
func pyString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// pyBool renders a Go bool as a Python boolean literal.
func pyBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// pyStringList renders a string slice as an inline Python list.
func pyStringList(values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = pyString(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// pyStringListLines renders a string slice as a multi-line Python list,
// one element per line.
func pyStringListLines(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	for _, v := range values {
		b.WriteString("    " + pyString(v) + ",\n")
	}
	b.WriteString("]")
	return b.String()
}

// pyDict renders a string map as a Python dict with sorted keys.
func pyDict(m map[string]string) string {
	if len(m) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("{\n")
	for _, k := range keys {
		b.WriteString("    " + pyString(k) + ": " + pyString(m[k]) + ",\n")
	}
	b.WriteString("}")
	return b.String()
}

// pyLatexDocuments renders LaTeX document specs as a list of tuples.
func pyLatexDocuments(docs []models.DocumentSpec) string {
	if len(docs) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	for _, d := range docs {
		b.WriteString(fmt.Sprintf("    (%s, %s, %s,\n     %s, %s),\n",
			pyString(d.StartDoc), pyString(d.Target), pyString(d.Title),
			pyString(d.Author), pyString(d.Class)))
	}
	b.WriteString("]")
	return b.String()
}

// pyManPages renders manual page specs as a list of tuples.
func pyManPages(pages []models.ManPageSpec) string {
	if len(pages) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	for _, p := range pages {
		b.WriteString(fmt.Sprintf("    (%s, %s, %s,\n     %s, %d),\n",
			pyString(p.StartDoc), pyString(p.Name), pyString(p.Description),
			pyStringList(p.Authors), p.Section))
	}
	b.WriteString("]")
	return b.String()
}

// pyTexinfoDocuments renders Texinfo document specs as a list of tuples.
func pyTexinfoDocuments(docs []models.TexinfoSpec) string {
	if len(docs) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	for _, d := range docs {
		b.WriteString(fmt.Sprintf("    (%s, %s, %s,\n     %s, %s, %s,\n     %s),\n",
			pyString(d.StartDoc), pyString(d.Target), pyString(d.Title),
			pyString(d.Author), pyString(d.DirEntry), pyString(d.Description),
			pyString(d.Category)))
	}
	b.WriteString("]")
	return b.String()
}
