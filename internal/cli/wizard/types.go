// Package wizard implements the interactive half of option resolution for
// "volt init". Flags always win; the wizard only asks about fields the
// command line left unset.
package wizard

import "errors"

// Sentinel errors for the wizard package.
var (
	// ErrCancelled indicates the user aborted the wizard (Ctrl+C or a
	// closed input stream). Callers treat it as cancellation, not failure.
	ErrCancelled = errors.New("wizard cancelled by user")

	// ErrNoQuestions indicates Run was called with an empty question set.
	ErrNoQuestions = errors.New("no questions to ask")
)

// QuestionType selects the prompt widget for a question.
type QuestionType int

const (
	QuestionTypeSelect QuestionType = iota
	QuestionTypeMultiSelect
	QuestionTypeConfirm
)

// Option is one selectable answer.
type Option struct {
	Label string
	Value string
	Desc  string
}

// Question is one wizard prompt. Condition, when set, is evaluated against
// the answers collected so far; a false result skips the question.
type Question struct {
	ID        string
	Type      QuestionType
	Title     string
	Desc      string
	Options   []Option
	Default   string
	Defaults  []string // multi-select pre-selection
	Condition func(r *Result) bool
}

// Result holds the collected answers.
type Result struct {
	Runtime  string
	Database string
	Template string
	Features []string
	Confirms map[string]bool
}
