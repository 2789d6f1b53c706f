package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// Run executes the wizard and returns the result.
// Each question runs as its own independent huh.Form to avoid the huh v0.8.x
// YOffset scroll bug that occurs when multiple groups share a single viewport.
func Run(questions []Question) (*Result, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := &Result{}

	for i := range questions {
		q := &questions[i]

		// Pre-check condition: skip questions whose condition is not met.
		if q.Condition != nil && !q.Condition(result) {
			continue
		}

		answer := q.Default
		form := huh.NewForm(buildQuestionGroup(q, &answer)).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}

		result.Set(q.ID, answer)
	}

	return result, nil
}

// RunWithDefaults runs the wizard with default questions for the given project root.
func RunWithDefaults(projectRoot string) (*Result, error) {
	return Run(DefaultQuestions(projectRoot))
}

// buildQuestionGroup creates a huh.Group for a single question.
func buildQuestionGroup(q *Question, answer *string) *huh.Group {
	var field huh.Field

	switch q.Type {
	case QuestionTypeSelect:
		field = buildSelectField(q, answer)
	case QuestionTypeInput:
		field = buildInputField(q, answer)
	}

	return huh.NewGroup(field)
}

// buildSelectField creates a huh.Select field for a select-type question.
func buildSelectField(q *Question, answer *string) *huh.Select[string] {
	options := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		label := opt.Label
		if opt.Desc != "" {
			label = fmt.Sprintf("%s (%s)", opt.Label, opt.Desc)
		}
		options[i] = huh.NewOption(label, opt.Value)
	}

	return huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(options...).
		Value(answer)
}

// buildInputField creates a huh.Input field for an input-type question.
func buildInputField(q *Question, answer *string) *huh.Input {
	input := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(answer)

	if q.Validate != nil {
		input = input.Validate(q.Validate)
	}

	return input
}
