package config

import (
	"errors"
	"testing"

	"github.com/docforge/docforge/pkg/models"
)

func TestValidateDefaultsPass(t *testing.T) {
	t.Parallel()

	if err := Validate(NewDefaultConfig(), nil); err != nil {
		t.Errorf("Validate() on defaults: %v", err)
	}
}

func TestValidateRequiredOnlyForLoadedSections(t *testing.T) {
	t.Parallel()

	cfg := NewDefaultConfig()

	// Project section not loaded from a file: empty name is fine.
	if err := Validate(cfg, map[string]bool{}); err != nil {
		t.Errorf("Validate() without loaded project: %v", err)
	}

	// Project section loaded: name and author become required.
	err := Validate(cfg, map[string]bool{"project": true})
	if err == nil {
		t.Fatal("Validate() with loaded empty project: expected error")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	var verrs *ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected *ValidationErrors, got %T", err)
	}
	if len(verrs.Errors) != 2 {
		t.Errorf("expected 2 errors (name, author), got %d: %v", len(verrs.Errors), verrs)
	}
}

func TestValidateVersionFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		version string
		release string
		wantErr bool
	}{
		{name: "valid pair", version: "1.2", release: "1.2.1", wantErr: false},
		{name: "release equals version", version: "1.2", release: "1.2", wantErr: false},
		{name: "empty both", version: "", release: "", wantErr: false},
		{name: "non-numeric version", version: "v1.2", release: "", wantErr: true},
		{name: "non-numeric release", version: "", release: "1.2-rc1", wantErr: true},
		{name: "release does not extend version", version: "1.2", release: "1.30", wantErr: true},
		{name: "release extends version", version: "1.2", release: "1.2.9", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewDefaultConfig()
			cfg.Project.Version = tt.version
			cfg.Project.Release = tt.release

			err := Validate(cfg, nil)
			if tt.wantErr && err == nil {
				t.Errorf("Validate() version=%q release=%q: expected error", tt.version, tt.release)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() version=%q release=%q: unexpected error: %v", tt.version, tt.release, err)
			}
		})
	}
}

func TestValidateSourceConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty master doc", func(t *testing.T) {
		t.Parallel()
		cfg := NewDefaultConfig()
		cfg.Source.MasterDoc = ""
		if err := Validate(cfg, nil); err == nil {
			t.Error("expected error for empty master_doc")
		}
	})

	t.Run("suffix without dot", func(t *testing.T) {
		t.Parallel()
		cfg := NewDefaultConfig()
		cfg.Source.SourceSuffix = "rst"
		if err := Validate(cfg, nil); err == nil {
			t.Error("expected error for suffix without leading dot")
		}
	})

	t.Run("unknown pygments style", func(t *testing.T) {
		t.Parallel()
		cfg := NewDefaultConfig()
		cfg.Source.PygmentsStyle = "nonexistent"
		if err := Validate(cfg, nil); err == nil {
			t.Error("expected error for unknown pygments style")
		}
	})

	t.Run("invalid autoclass content", func(t *testing.T) {
		t.Parallel()
		cfg := NewDefaultConfig()
		cfg.Source.AutoclassContent = models.AutoclassContent("everything")
		err := Validate(cfg, nil)
		if !errors.Is(err, ErrInvalidAutoclassContent) {
			t.Errorf("expected ErrInvalidAutoclassContent, got %v", err)
		}
	})

	t.Run("malformed extension name", func(t *testing.T) {
		t.Parallel()
		cfg := NewDefaultConfig()
		cfg.Source.Extensions = append(cfg.Source.Extensions, "sphinx..autodoc")
		if err := Validate(cfg, nil); err == nil {
			t.Error("expected error for malformed extension name")
		}
	})
}

func TestValidateManPages(t *testing.T) {
	t.Parallel()

	cfg := NewDefaultConfig()
	cfg.Man.Pages = []models.ManPageSpec{
		{StartDoc: "index", Name: "bitrec", Description: "Bit Recovery", Section: 0},
	}

	err := Validate(cfg, nil)
	if err == nil {
		t.Fatal("expected error for man section 0")
	}

	cfg.Man.Pages[0].Section = 1
	if err := Validate(cfg, nil); err != nil {
		t.Errorf("Validate() with section 1: %v", err)
	}
}

func TestValidateEpubShowURLs(t *testing.T) {
	t.Parallel()

	cfg := NewDefaultConfig()
	cfg.Epub.ShowURLs = "sidebar"
	if err := Validate(cfg, nil); err == nil {
		t.Error("expected error for unknown epub show_urls")
	}
}

func TestValidateDynamicTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{name: "shell style", value: "${PROJECT_NAME}"},
		{name: "template style", value: "{{name}}"},
		{name: "bare env var", value: "$PROJECT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewDefaultConfig()
			cfg.Project.Name = tt.value

			err := Validate(cfg, nil)
			if !errors.Is(err, ErrDynamicToken) {
				t.Errorf("Validate() name=%q: expected ErrDynamicToken, got %v", tt.value, err)
			}
		})
	}
}

func TestValidationErrorsIs(t *testing.T) {
	t.Parallel()

	verrs := &ValidationErrors{Errors: []ValidationError{
		{Field: "project.name", Message: "token", Wrapped: ErrDynamicToken},
	}}

	if !errors.Is(verrs, ErrInvalidConfig) {
		t.Error("ValidationErrors must match ErrInvalidConfig")
	}
	if !errors.Is(verrs, ErrDynamicToken) {
		t.Error("ValidationErrors must match wrapped ErrDynamicToken")
	}
	if errors.Is(verrs, ErrSectionNotFound) {
		t.Error("ValidationErrors must not match unrelated sentinels")
	}
}
