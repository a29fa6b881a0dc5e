// Package app runs one README generation: collect answers, resolve the
// profile, assemble the document and write it.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/goodreadme/goodreadme/internal/answers"
	"github.com/goodreadme/goodreadme/internal/constants"
	"github.com/goodreadme/goodreadme/internal/logging"
	"github.com/goodreadme/goodreadme/internal/prompt"
	"github.com/goodreadme/goodreadme/internal/readme"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// AnswerCollector asks a list of questions.
type AnswerCollector interface {
	Ask(ctx context.Context, questions []prompt.Question) (answers.Set, error)
}

// ProfileLookup resolves a handle. It returns nil for an absent profile and
// never fails.
type ProfileLookup interface {
	Lookup(ctx context.Context, handle string) *readme.ProfileRecord
}

type App struct {
	fs            afero.Fs
	collector     AnswerCollector
	profiles      ProfileLookup
	assembler     *readme.Assembler
	out           io.Writer
	defaultOutput string
}

// Run generates the document and writes it to outputPath, or to the
// configured default when outputPath is empty. It returns the path written.
// Nothing is written when answer collection fails.
func (a *App) Run(ctx context.Context, outputPath string) (string, error) {
	path := a.resolveOutputPath(outputPath)
	logger := logging.Get(ctx)

	user, err := a.collector.Ask(ctx, []prompt.Question{prompt.UserQuestion()})
	if err != nil {
		return "", fmt.Errorf("failed to collect answers: %w", err)
	}

	lookupCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var profile *readme.ProfileRecord
	g, gCtx := errgroup.WithContext(lookupCtx)
	g.Go(func() error {
		profile = a.profiles.Lookup(gCtx, user.Get(answers.KeyUserName))
		return nil
	})

	project, err := a.collector.Ask(ctx, prompt.ProjectQuestions())
	if err != nil {
		cancel()
		_ = g.Wait()
		return "", fmt.Errorf("failed to collect answers: %w", err)
	}
	_ = g.Wait()

	if profile == nil {
		logger.Info().Msg("no profile available, omitting author sections")
	}

	record := answers.Normalize(user.Merge(project))
	doc := a.assembler.Render(record, profile)

	if err := afero.WriteFile(a.fs, path, []byte(doc), 0o644); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("failed to write document")
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info().Str("path", path).Int("bytes", len(doc)).Msg("document written")

	_, _ = fmt.Fprintln(a.out, color.GreenString("'%s' written to file successfully!", path))
	return path, nil
}

func (a *App) resolveOutputPath(outputPath string) string {
	if strings.TrimSpace(outputPath) != "" {
		return outputPath
	}
	if a.defaultOutput != "" {
		return a.defaultOutput
	}
	return constants.DefaultOutputFilename
}

type noProfile struct{}

func (noProfile) Lookup(context.Context, string) *readme.ProfileRecord { return nil }
