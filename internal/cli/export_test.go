package cli

import (
	"context"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/docforge/docforge/internal/config"
	"github.com/docforge/docforge/internal/template"
)

// scaffoldProject deploys a full scaffold into a temp dir and loads it back,
// exercising the same path `docforge init` followed by `docforge export` takes.
func scaffoldProject(t *testing.T) (string, *config.Config) {
	t.Helper()

	root := t.TempDir()
	sctx := template.NewScaffoldContext("Bit Recovery", "Dirk Roorda", "2014, Dirk Roorda", "1.2", "1.2.1")
	d := template.NewDeployer(template.ScaffoldFS())
	if err := d.Deploy(context.Background(), root, sctx); err != nil {
		t.Fatalf("scaffold deploy error: %v", err)
	}

	cfg, err := config.NewConfigManager().Load(root)
	if err != nil {
		t.Fatalf("load scaffolded config error: %v", err)
	}
	return root, cfg
}

func TestExportDataYAML(t *testing.T) {
	scaffoldRoundTrip := func(t *testing.T, cfg *config.Config) map[string]any {
		data, err := exportData(cfg, "yaml")
		if err != nil {
			t.Fatalf("exportData(yaml) error: %v", err)
		}
		var decoded map[string]any
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("exported YAML does not parse: %v", err)
		}
		return decoded
	}

	_, cfg := scaffoldProject(t)
	decoded := scaffoldRoundTrip(t, cfg)

	if decoded["project"] != "Bit Recovery" {
		t.Errorf("project: got %v", decoded["project"])
	}
	if decoded["release"] != "1.2.1" {
		t.Errorf("release: got %v", decoded["release"])
	}
	// READTHEDOCS is unset under go test, so the resolved theme is the
	// local reading theme.
	if decoded["html_theme"] != "sphinx_rtd_theme" {
		t.Errorf("html_theme: got %v", decoded["html_theme"])
	}
}

func TestExportDataConf(t *testing.T) {
	_, cfg := scaffoldProject(t)

	data, err := exportData(cfg, "conf")
	if err != nil {
		t.Fatalf("exportData(conf) error: %v", err)
	}
	text := string(data)

	for _, want := range []string{
		"project = 'Bit Recovery'",
		"release = '1.2.1'",
		"on_rtd = os.environ.get('READTHEDOCS', None) == 'True'",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("conf output missing %q", want)
		}
	}
}

func TestExportDataConfWithThemeOverride(t *testing.T) {
	_, cfg := scaffoldProject(t)
	cfg.HTML.Theme = "alabaster"

	data, err := exportData(cfg, "conf")
	if err != nil {
		t.Fatalf("exportData(conf) error: %v", err)
	}
	text := string(data)

	if !strings.Contains(text, "html_theme = 'alabaster'") {
		t.Error("conf output missing fixed theme assignment")
	}
	if strings.Contains(text, "on_rtd") {
		t.Error("conf output should not carry the READTHEDOCS branch with an explicit theme")
	}
}

func TestExportDataJSON(t *testing.T) {
	_, cfg := scaffoldProject(t)

	data, err := exportData(cfg, "json")
	if err != nil {
		t.Fatalf("exportData(json) error: %v", err)
	}
	if !strings.Contains(string(data), `"project": "Bit Recovery"`) {
		t.Errorf("json output missing project entry:\n%s", data)
	}
}

func TestDefaultExportName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		format string
		want   string
	}{
		{"conf", "conf.py"},
		{"json", "docforge-namespace.json"},
		{"yaml", "docforge-namespace.yaml"},
	}
	for _, tc := range cases {
		if got := defaultExportName(tc.format); got != tc.want {
			t.Errorf("defaultExportName(%q): got %q, want %q", tc.format, got, tc.want)
		}
	}
}
