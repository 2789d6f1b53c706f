// Package wizard implements the interactive project initialization wizard.
package wizard

import "errors"

// Sentinel errors for wizard execution.
var (
	// ErrNoQuestions indicates Run was called with an empty question list.
	ErrNoQuestions = errors.New("wizard: no questions to ask")

	// ErrCancelled indicates the user aborted the wizard.
	ErrCancelled = errors.New("wizard: cancelled by user")
)

// QuestionType identifies how a question is presented.
type QuestionType int

const (
	// QuestionTypeInput is a free-form text input.
	QuestionTypeInput QuestionType = iota

	// QuestionTypeSelect is a single-choice selection.
	QuestionTypeSelect
)

// Option is one selectable answer for a select-type question.
type Option struct {
	Label string
	Value string
	Desc  string
}

// Question describes a single wizard step.
type Question struct {
	ID          string
	Type        QuestionType
	Title       string
	Description string
	Default     string
	Options     []Option

	// Validate rejects bad input with a message shown inline.
	Validate func(string) error

	// Condition skips the question when it returns false.
	Condition func(*Result) bool
}

// Result collects the wizard answers.
type Result struct {
	ProjectName string
	Author      string
	Version     string
	Release     string
	Theme       string
}

// Set records an answer by question ID.
func (r *Result) Set(id, value string) {
	switch id {
	case "project_name":
		r.ProjectName = value
	case "author":
		r.Author = value
	case "version":
		r.Version = value
	case "release":
		r.Release = value
	case "theme":
		r.Theme = value
	}
}
