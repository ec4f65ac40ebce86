package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// Run executes the wizard and returns the collected answers. Each question
// runs as its own huh.Form so conditional questions can inspect earlier
// answers before being built.
func Run(questions []Question) (*Result, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := &Result{Confirms: map[string]bool{}}

	for i := range questions {
		q := &questions[i]
		if q.Condition != nil && !q.Condition(result) {
			continue
		}

		form := huh.NewForm(buildGroup(q, result))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	return result, nil
}

// buildGroup creates the huh.Group for one question.
func buildGroup(q *Question, result *Result) *huh.Group {
	switch q.Type {
	case QuestionTypeMultiSelect:
		return huh.NewGroup(buildMultiSelect(q, result))
	case QuestionTypeConfirm:
		return huh.NewGroup(buildConfirm(q, result))
	default:
		return huh.NewGroup(buildSelect(q, result))
	}
}

func buildSelect(q *Question, result *Result) *huh.Select[string] {
	selected := q.Default

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		label := opt.Label
		if opt.Desc != "" {
			label = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(label, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Desc).
		Options(opts...).
		Value(&selected)

	sel.Validate(func(val string) error {
		saveAnswer(q.ID, []string{val}, result)
		return nil
	})
	return sel
}

func buildMultiSelect(q *Question, result *Result) *huh.MultiSelect[string] {
	selected := append([]string(nil), q.Defaults...)

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		label := opt.Label
		if opt.Desc != "" {
			label = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(label, opt.Value)
	}

	ms := huh.NewMultiSelect[string]().
		Title(q.Title).
		Description(q.Desc).
		Options(opts...).
		Value(&selected)

	ms.Validate(func(vals []string) error {
		saveAnswer(q.ID, vals, result)
		return nil
	})
	return ms
}

func buildConfirm(q *Question, result *Result) *huh.Confirm {
	confirmed := q.Default == "yes"

	c := huh.NewConfirm().
		Title(q.Title).
		Description(q.Desc).
		Value(&confirmed)

	c.Validate(func(val bool) error {
		result.Confirms[q.ID] = val
		return nil
	})
	return c
}

// saveAnswer routes an answer into the Result field matching the question ID.
func saveAnswer(id string, values []string, result *Result) {
	var first string
	if len(values) > 0 {
		first = values[0]
	}
	switch id {
	case "runtime":
		result.Runtime = first
	case "database":
		result.Database = first
	case "template":
		result.Template = first
	case "features":
		result.Features = values
	}
}

// Confirm asks a single yes/no question outside the init flow (overwrite
// prompts). Aborting maps to ErrCancelled.
func Confirm(title, desc string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Description(desc).Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	return confirmed, nil
}
