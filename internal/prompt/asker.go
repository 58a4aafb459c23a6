package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/widgetkit/widgetgen/internal/widget"
)

// maxAttempts bounds re-asking after invalid input.
const maxAttempts = 3

// Prompter collects answers for an ordered question set.
type Prompter interface {
	Ask(questions []Question) (widget.Answers, error)
}

// LinePrompter asks questions on a line-oriented terminal: free text,
// y/n confirmations and numbered menus.
type LinePrompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLinePrompter reads answers from r and writes prompts to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(r), w: w}
}

// Ask asks every question whose When condition holds, in order.
func (p *LinePrompter) Ask(questions []Question) (widget.Answers, error) {
	answers := widget.Answers{}
	for _, q := range questions {
		if !q.shouldAsk(answers) {
			continue
		}

		var (
			value any
			err   error
		)
		switch q.Kind {
		case Input:
			value, err = p.askInput(q)
		case Confirm:
			value, err = p.askConfirm(q)
		case List:
			value, err = p.askList(q)
		case Checkbox:
			value, err = p.askCheckbox(q)
		default:
			err = fmt.Errorf("question %q has unknown kind %d", q.Key, q.Kind)
		}
		if err != nil {
			return nil, err
		}
		answers[q.Key] = value
	}
	return answers, nil
}

func (p *LinePrompter) askInput(q Question) (string, error) {
	def := q.defaultString()
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if def != "" {
			fmt.Fprintf(p.w, "? %s (%s): ", q.Message, def)
		} else {
			fmt.Fprintf(p.w, "? %s: ", q.Message)
		}

		line, eof, err := p.readLine()
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", q.Key, err)
		}
		if line == "" {
			line = def
		}
		if q.Validate == nil {
			return line, nil
		}
		verr := q.Validate(line)
		if verr == nil {
			return line, nil
		}
		fmt.Fprintf(p.w, "  >> %v\n", verr)
		if eof {
			return "", verr
		}
	}
	return "", fmt.Errorf("no valid answer for %s after %d attempts", q.Key, maxAttempts)
}

func (p *LinePrompter) askConfirm(q Question) (bool, error) {
	def := q.defaultBool()
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		fmt.Fprintf(p.w, "? %s (%s): ", q.Message, hint)

		line, eof, err := p.readLine()
		if err != nil {
			return false, fmt.Errorf("reading %s: %w", q.Key, err)
		}
		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(p.w, "  >> please answer y or n\n")
		if eof {
			return def, nil
		}
	}
	return false, fmt.Errorf("no valid answer for %s after %d attempts", q.Key, maxAttempts)
}

func (p *LinePrompter) askList(q Question) (string, error) {
	def := q.defaultString()
	defIdx := 0
	for i, c := range q.Choices {
		if c.Value == def {
			defIdx = i
		}
	}

	fmt.Fprintf(p.w, "? %s\n", q.Message)
	for i, c := range q.Choices {
		fmt.Fprintf(p.w, "  %d) %s\n", i+1, c.Label)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		fmt.Fprintf(p.w, "Enter number [1-%d] (%d): ", len(q.Choices), defIdx+1)

		line, eof, err := p.readLine()
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", q.Key, err)
		}
		if line == "" {
			return q.Choices[defIdx].Value, nil
		}
		num, convErr := strconv.Atoi(line)
		if convErr == nil && num >= 1 && num <= len(q.Choices) {
			return q.Choices[num-1].Value, nil
		}
		fmt.Fprintf(p.w, "  >> invalid selection %q: choose 1-%d\n", line, len(q.Choices))
		if eof {
			return q.Choices[defIdx].Value, nil
		}
	}
	return "", fmt.Errorf("no valid answer for %s after %d attempts", q.Key, maxAttempts)
}

func (p *LinePrompter) askCheckbox(q Question) ([]string, error) {
	fmt.Fprintf(p.w, "? %s\n", q.Message)
	for i, c := range q.Choices {
		fmt.Fprintf(p.w, "  %d) %s\n", i+1, c.Label)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		fmt.Fprintf(p.w, "Enter numbers separated by commas, blank for none: ")

		line, eof, err := p.readLine()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", q.Key, err)
		}
		if line == "" {
			return append([]string{}, q.defaultStrings()...), nil
		}
		selected, perr := parseSelection(line, q.Choices)
		if perr == nil {
			return selected, nil
		}
		fmt.Fprintf(p.w, "  >> %v\n", perr)
		if eof {
			return nil, perr
		}
	}
	return nil, fmt.Errorf("no valid answer for %s after %d attempts", q.Key, maxAttempts)
}

// parseSelection turns "1, 2" into the matching choice values, in choice
// order and without duplicates.
func parseSelection(line string, choices []Choice) ([]string, error) {
	picked := make([]bool, len(choices))
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 1 || num > len(choices) {
			return nil, fmt.Errorf("invalid selection %q: choose numbers 1-%d", part, len(choices))
		}
		picked[num-1] = true
	}

	selected := []string{}
	for i, ok := range picked {
		if ok {
			selected = append(selected, choices[i].Value)
		}
	}
	return selected, nil
}

// readLine returns the next trimmed line. eof is true when input is
// exhausted; an exhausted reader yields an empty line so defaults apply.
func (p *LinePrompter) readLine() (line string, eof bool, err error) {
	s, err := p.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(p.w)
		return strings.TrimSpace(s), true, nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(s), false, nil
}

// DefaultsPrompter answers every question with its default without reading
// input. Confirmations are answered yes.
type DefaultsPrompter struct{}

// Ask implements Prompter.
func (DefaultsPrompter) Ask(questions []Question) (widget.Answers, error) {
	answers := widget.Answers{}
	for _, q := range questions {
		if !q.shouldAsk(answers) {
			continue
		}
		switch q.Kind {
		case Confirm:
			answers[q.Key] = true
		case Checkbox:
			answers[q.Key] = append([]string{}, q.defaultStrings()...)
		default:
			value := q.defaultString()
			if q.Validate != nil {
				if err := q.Validate(value); err != nil {
					return nil, fmt.Errorf("default for %s: %w", q.Key, err)
				}
			}
			answers[q.Key] = value
		}
	}
	return answers, nil
}
