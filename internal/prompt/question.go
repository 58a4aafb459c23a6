package prompt

import "github.com/widgetkit/widgetgen/internal/widget"

// Kind selects how a question is asked and what type its answer has.
type Kind int

const (
	// Input asks for free text; the answer is a string.
	Input Kind = iota
	// Confirm asks yes/no; the answer is a bool.
	Confirm
	// List asks for one of Choices; the answer is the choice value.
	List
	// Checkbox asks for any subset of Choices; the answer is a []string.
	Checkbox
)

// Choice is one option of a List or Checkbox question.
type Choice struct {
	Label string
	Value string
}

// Question describes one prompt.
type Question struct {
	Key     string
	Message string
	Kind    Kind
	// Default is a string for Input and List, a bool for Confirm and a
	// []string for Checkbox.
	Default any
	Choices []Choice
	// When gates the question on earlier answers; nil means always ask.
	When func(widget.Answers) bool
	// Validate checks Input answers.
	Validate func(string) error
}

func (q Question) shouldAsk(a widget.Answers) bool {
	return q.When == nil || q.When(a)
}

func (q Question) defaultString() string {
	s, _ := q.Default.(string)
	return s
}

func (q Question) defaultBool() bool {
	b, _ := q.Default.(bool)
	return b
}

func (q Question) defaultStrings() []string {
	s, _ := q.Default.([]string)
	return s
}
