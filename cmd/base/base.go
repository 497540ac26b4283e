package base

import (
	"context"
	"errors"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/samber/lo"
	"go.uber.org/zap"

	tracker "github.com/org-tools/employee-tracker"
)

// Choice is one entry of a list prompt.
type Choice struct {
	Label string
	Value string
}

// Field describes a single question. A field with Choices is asked as a list.
type Field struct {
	Name    string
	Message string
	Choices []Choice
}

// Prompter collects answers from the user. Answers are returned as typed,
// without trimming or validation.
type Prompter interface {
	Select(label string, choices []Choice) (string, error)
	Ask(fields ...Field) (tracker.Answers, error)
}

// Session is what every menu action runs against.
type Session struct {
	Store    tracker.Store
	Prompter Prompter
	Out      io.Writer
	Logger   *zap.Logger
}

// Action is the behaviour behind one menu entry.
type Action func(ctx context.Context, s *Session) error

// maxSelectRows bounds how many list rows are drawn at once; longer lists scroll.
const maxSelectRows = 10

func selectSize(n int) int {
	return lo.Min([]int{n, maxSelectRows})
}

type terminalPrompter struct{}

// NewTerminalPrompter returns a Prompter drawing on the terminal.
func NewTerminalPrompter() Prompter {
	return terminalPrompter{}
}

func (terminalPrompter) Select(label string, choices []Choice) (string, error) {
	if len(choices) == 0 {
		return "", errors.New("nothing to select")
	}
	prompt := promptui.Select{
		Label: label,
		Items: lo.Map(choices, func(c Choice, _ int) string { return c.Label }),
		Size:  selectSize(len(choices)),
	}
	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return choices[i].Value, nil
}

func (p terminalPrompter) Ask(fields ...Field) (tracker.Answers, error) {
	answers := make(tracker.Answers, len(fields))
	for _, f := range fields {
		var answer string
		var err error
		if len(f.Choices) > 0 {
			answer, err = p.Select(f.Message, f.Choices)
		} else {
			prompt := promptui.Prompt{Label: f.Message}
			answer, err = prompt.Run()
		}
		if err != nil {
			return nil, err
		}
		answers[f.Name] = answer
	}
	return answers, nil
}
