package render

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/docforge/docforge/internal/config"
)

func TestExportYAML(t *testing.T) {
	t.Parallel()

	ns := BuildNamespace(testConfig(), config.DefaultLocalTheme)
	data, err := ns.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML() error: %v", err)
	}

	// The document must parse back as a mapping.
	var decoded map[string]any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("exported YAML does not parse: %v", err)
	}
	if decoded["project"] != "Bit Recovery" {
		t.Errorf("project: got %v", decoded["project"])
	}
	if decoded["html_theme"] != "sphinx_rtd_theme" {
		t.Errorf("html_theme: got %v", decoded["html_theme"])
	}

	// Key order must survive serialization.
	text := string(data)
	prev := -1
	for _, key := range []string{"project:", "version:", "extensions:", "html_theme:", "epub_use_index:"} {
		idx := strings.Index(text, "\n"+key)
		if key == "project:" {
			idx = strings.Index(text, key)
		}
		if idx < 0 {
			t.Fatalf("key %q missing from YAML output", key)
		}
		if idx < prev {
			t.Errorf("key %q out of order", key)
		}
		prev = idx
	}
}

func TestExportJSON(t *testing.T) {
	t.Parallel()

	ns := BuildNamespace(testConfig(), config.DefaultLocalTheme)
	data, err := ns.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("exported JSON does not parse: %v", err)
	}
	if decoded["project"] != "Bit Recovery" {
		t.Errorf("project: got %v", decoded["project"])
	}
	if decoded["html_use_index"] != true {
		t.Errorf("html_use_index: got %v", decoded["html_use_index"])
	}

	text := string(data)
	if strings.Index(text, `"project"`) > strings.Index(text, `"html_theme"`) {
		t.Error("JSON output lost key order")
	}
	if !strings.HasSuffix(text, "\n") {
		t.Error("JSON output should end with a newline")
	}
}

func TestExportJSONEmptyNamespace(t *testing.T) {
	t.Parallel()

	data, err := Namespace{}.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	if strings.TrimSpace(string(data)) != "{}" {
		t.Errorf("empty namespace: got %q", string(data))
	}
}
