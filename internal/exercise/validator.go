package exercise

import (
	"fmt"

	"github.com/abhisek/makhraj/internal/curriculum"
)

// Validator checks a generated question before it is served.
type Validator interface {
	// Name returns a short identifier used in error messages, e.g.
	// "structural".
	Name() string

	// Validate returns nil if the question passes.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a question was rejected.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the validator chain applied to generated
// questions.
func DefaultValidators() []Validator {
	return []Validator{&StructuralValidator{}}
}

// StructuralValidator checks that a question is answerable: it has a
// prompt, at least two distinct options and an in-range correct answer.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	if !curriculum.Valid(q.Level) {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("unknown level %q", q.Level)}
	}
	texts := make([]string, len(q.Options))
	for i, o := range q.Options {
		texts[i] = o.Text
	}
	if msg := checkChoices(q.Prompt, texts, q.CorrectAnswer); msg != "" {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}
	return nil
}

// checkChoices returns a description of the first structural problem with a
// multiple-choice item, or "" when there is none.
func checkChoices(prompt string, options []string, correct int) string {
	if prompt == "" {
		return "prompt is empty"
	}
	if len(options) < 2 {
		return "needs at least 2 options"
	}
	seen := make(map[string]bool, len(options))
	for _, o := range options {
		if o == "" {
			return "option text is empty"
		}
		if seen[o] {
			return fmt.Sprintf("duplicate option %q", o)
		}
		seen[o] = true
	}
	if correct < 0 || correct >= len(options) {
		return fmt.Sprintf("correct answer %d out of range", correct)
	}
	return ""
}

func runValidators(validators []Validator, q *Question) *ValidationError {
	for _, v := range validators {
		if err := v.Validate(q); err != nil {
			return err
		}
	}
	return nil
}
