package wizard

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// versionPattern matches dotted numeric version strings.
var versionPattern = regexp.MustCompile(`^\d+(\.\d+)*$`)

// titleCaser converts directory names into presentable project titles.
var titleCaser = cases.Title(language.English)

// DefaultProjectName derives a presentable default project name from the
// project root directory ("bit-recovery" becomes "Bit Recovery").
func DefaultProjectName(projectRoot string) string {
	base := filepath.Base(filepath.Clean(projectRoot))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "My Project"
	}
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return titleCaser.String(base)
}

// DefaultQuestions returns the standard initialization questions for the
// given project root.
func DefaultQuestions(projectRoot string) []Question {
	return []Question{
		{
			ID:          "project_name",
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Shown in page titles and generated documents",
			Default:     DefaultProjectName(projectRoot),
			Validate:    notEmpty("project name"),
		},
		{
			ID:          "author",
			Type:        QuestionTypeInput,
			Title:       "Author",
			Description: "Used for copyright and document metadata",
			Validate:    notEmpty("author"),
		},
		{
			ID:          "version",
			Type:        QuestionTypeInput,
			Title:       "Version",
			Description: "Short release series, like 1.2",
			Default:     "0.1",
			Validate:    validVersion,
		},
		{
			ID:          "release",
			Type:        QuestionTypeInput,
			Title:       "Release",
			Description: "Full release string, like 1.2.1 (empty: same as version)",
			Validate:    validVersionOrEmpty,
		},
		{
			ID:          "theme",
			Type:        QuestionTypeSelect,
			Title:       "HTML theme",
			Description: "How the HTML theme is chosen",
			Default:     "",
			Options: []Option{
				{Label: "Environment", Value: "", Desc: "Decided at build time from READTHEDOCS"},
				{Label: "sphinx_rtd_theme", Value: "sphinx_rtd_theme", Desc: "Always the locally installed theme"},
				{Label: "default", Value: "default", Desc: "Always the builder's bundled theme"},
			},
		},
	}
}

// QuestionByID returns the question with the given ID, or nil.
func QuestionByID(questions []Question, id string) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}

// notEmpty returns a validator rejecting blank input.
func notEmpty(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(what + " must not be empty")
		}
		return nil
	}
}

// validVersion rejects input that is not a dotted numeric version.
func validVersion(s string) error {
	if !versionPattern.MatchString(strings.TrimSpace(s)) {
		return errors.New("must be a dotted numeric version, like 1.2")
	}
	return nil
}

// validVersionOrEmpty allows empty input, otherwise validates as a version.
func validVersionOrEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validVersion(s)
}
