// Package prompt asks the interactive questions and collects the answers.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// ErrCancelled is returned when the user aborts input with Ctrl+C or EOF.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

func translateErr(err error, what string) error {
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return ErrCancelled
	}
	return fmt.Errorf("%s failed: %w", what, err)
}

// TextInputWithPrompter reads one line. An empty answer takes def.
func TextInputWithPrompter(prompter Prompter, prompt, def string) (string, error) {
	label := prompt
	if def != "" {
		label += " " + color.HiBlackString("(%s)", def)
	}

	result, err := prompter.Prompt(color.CyanString(label) + " ")
	if err != nil {
		return "", translateErr(err, "text input")
	}
	if result == "" {
		return def, nil
	}
	return result, nil
}

// MultiLineInputWithPrompter accepts multi-line text input, ending with
// double Enter. Trailing blank lines are dropped; an empty answer takes def.
func MultiLineInputWithPrompter(prompter Prompter, out io.Writer, prompt, def string) (string, error) {
	hint := "(Press Enter twice when done)"
	if def != "" {
		hint = "(Press Enter twice when done, or twice now to keep the default)"
	}
	_, _ = fmt.Fprintln(out, color.CyanString("%s %s", prompt, hint))

	lines := make([]string, 0, 10)
	emptyLineCount := 0

	for {
		input, err := prompter.Prompt(color.YellowString("  "))
		if err != nil {
			return "", translateErr(err, "multi-line input")
		}

		if input == "" {
			emptyLineCount++
			if emptyLineCount >= 2 {
				break
			}
		} else {
			emptyLineCount = 0
		}

		lines = append(lines, input)
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return def, nil
	}
	return strings.Join(lines, "\n"), nil
}

// SelectWithPrompter lists choices numbered from 1 and reads a number.
// An empty answer takes the first choice; anything invalid asks again.
func SelectWithPrompter(prompter Prompter, out io.Writer, prompt string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", errors.New("select requires at least one choice")
	}

	_, _ = fmt.Fprintln(out, color.CyanString(prompt))
	for i, choice := range choices {
		_, _ = fmt.Fprintf(out, "  %s %s\n", color.YellowString("%d)", i+1), choice)
	}

	for {
		result, err := prompter.Prompt(color.CyanString("Choose [1-%d]: ", len(choices)))
		if err != nil {
			return "", translateErr(err, "select")
		}

		result = strings.TrimSpace(result)
		if result == "" {
			return choices[0], nil
		}

		n, err := strconv.Atoi(result)
		if err == nil && n >= 1 && n <= len(choices) {
			return choices[n-1], nil
		}
		_, _ = fmt.Fprintln(out, color.RedString("Please enter a number between 1 and %d", len(choices)))
	}
}
