package prompt

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockPrompter replays scripted answers. When the script runs out it
// returns io.EOF, like a closed terminal.
type MockPrompter struct {
	err     error
	prompts []string
	answers []string
	closed  bool
}

func (m *MockPrompter) Prompt(p string) (string, error) {
	m.prompts = append(m.prompts, p)
	if len(m.answers) == 0 {
		if m.err != nil {
			return "", m.err
		}
		return "", io.EOF
	}
	answer := m.answers[0]
	m.answers = m.answers[1:]
	return answer, nil
}

func (m *MockPrompter) Close() error {
	m.closed = true
	return nil
}

func TestTextInputWithPrompter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		answer string
		def    string
		want   string
	}{
		{name: "answer kept", answer: "Widget", def: "myProject", want: "Widget"},
		{name: "empty takes default", answer: "", def: "myProject", want: "myProject"},
		{name: "empty without default", answer: "", def: "", want: ""},
		{name: "whitespace kept verbatim", answer: " x ", def: "", want: " x "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock := &MockPrompter{answers: []string{tt.answer}}
			got, err := TextInputWithPrompter(mock, "Project Name?", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.Len(t, mock.prompts, 1)
			assert.Contains(t, mock.prompts[0], "Project Name?")
		})
	}
}

func TestTextInputWithPrompter_Cancelled(t *testing.T) {
	t.Parallel()

	_, err := TextInputWithPrompter(&MockPrompter{}, "Name?", "")
	require.ErrorIs(t, err, ErrCancelled)

	_, err = TextInputWithPrompter(&MockPrompter{err: liner.ErrPromptAborted}, "Name?", "")
	require.ErrorIs(t, err, ErrCancelled)

	boom := errors.New("terminal gone")
	_, err = TextInputWithPrompter(&MockPrompter{err: boom}, "Name?", "")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "text input failed")
}

func TestMultiLineInputWithPrompter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		def     string
		want    string
		answers []string
	}{
		{name: "two lines", answers: []string{"line one", "line two", "", ""}, want: "line one\nline two"},
		{name: "inner blank line kept", answers: []string{"a", "", "b", "", ""}, want: "a\n\nb"},
		{name: "immediately done takes default", def: "DEFAULT", answers: []string{"", ""}, want: "DEFAULT"},
		{name: "immediately done without default", answers: []string{"", ""}, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out strings.Builder
			got, err := MultiLineInputWithPrompter(&MockPrompter{answers: tt.answers}, &out, "Usage:", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Usage:")
		})
	}
}

func TestMultiLineInputWithPrompter_Cancelled(t *testing.T) {
	t.Parallel()

	_, err := MultiLineInputWithPrompter(&MockPrompter{answers: []string{"partial"}}, io.Discard, "Usage:", "")
	require.ErrorIs(t, err, ErrCancelled)
}

func TestSelectWithPrompter(t *testing.T) {
	t.Parallel()

	choices := []string{"No license", "Apache 2.0 License", "The MIT License"}

	tests := []struct {
		name    string
		want    string
		answers []string
		asked   int
	}{
		{name: "by number", answers: []string{"3"}, want: "The MIT License", asked: 1},
		{name: "empty picks first", answers: []string{""}, want: "No license", asked: 1},
		{name: "padded number", answers: []string{" 2 "}, want: "Apache 2.0 License", asked: 1},
		{name: "invalid then valid", answers: []string{"9", "abc", "0", "2"}, want: "Apache 2.0 License", asked: 4},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out strings.Builder
			mock := &MockPrompter{answers: tt.answers}
			got, err := SelectWithPrompter(mock, &out, "Project License", choices)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, mock.prompts, tt.asked)
			for _, choice := range choices {
				assert.Contains(t, out.String(), choice)
			}
		})
	}
}

func TestSelectWithPrompter_Errors(t *testing.T) {
	t.Parallel()

	_, err := SelectWithPrompter(&MockPrompter{}, io.Discard, "Pick", nil)
	require.Error(t, err)

	_, err = SelectWithPrompter(&MockPrompter{}, io.Discard, "Pick", []string{"a"})
	require.ErrorIs(t, err, ErrCancelled)
}

// TestNewLinerPrompter tests that we can create a liner-based prompter
func TestNewLinerPrompter(t *testing.T) {
	prompter := NewLinerPrompter()
	defer func() { _ = prompter.Close() }()

	_, ok := prompter.(*LinerPrompter)
	assert.True(t, ok)
}
