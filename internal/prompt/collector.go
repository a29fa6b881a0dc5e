package prompt

import (
	"context"
	"fmt"
	"io"

	"github.com/goodreadme/goodreadme/internal/answers"
	"github.com/goodreadme/goodreadme/internal/logging"
)

// Collector asks questions through a Prompter and gathers the answers.
type Collector struct {
	prompter Prompter
	out      io.Writer
}

// NewCollector creates a collector. out receives hints and choice lists.
func NewCollector(prompter Prompter, out io.Writer) *Collector {
	return &Collector{prompter: prompter, out: out}
}

// AskOne asks a single question.
func (c *Collector) AskOne(q Question) (string, error) {
	switch q.Kind {
	case Editor:
		return MultiLineInputWithPrompter(c.prompter, c.out, q.Message, q.Default)
	case List:
		return SelectWithPrompter(c.prompter, c.out, q.Message, q.Choices)
	case Input:
		return TextInputWithPrompter(c.prompter, q.Message, q.Default)
	default:
		return "", fmt.Errorf("question %s has unknown kind %d", q.Name, q.Kind)
	}
}

// Ask asks every question in order. It stops at the first error or when ctx
// is done; no partial answer set is returned.
func (c *Collector) Ask(ctx context.Context, questions []Question) (answers.Set, error) {
	set := make(answers.Set, len(questions))
	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("answer collection stopped: %w", err)
		}

		value, err := c.AskOne(q)
		if err != nil {
			logging.Get(ctx).Debug().Str("question", q.Name).Err(err).Msg("question not answered")
			return nil, err
		}
		set[q.Name] = value
	}
	return set, nil
}

// Close releases the terminal.
func (c *Collector) Close() error {
	return c.prompter.Close() //nolint:wrapcheck // terminal cleanup
}
