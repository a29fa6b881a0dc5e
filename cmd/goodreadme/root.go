package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goodreadme/goodreadme/internal/app"
	"github.com/goodreadme/goodreadme/internal/config"
	"github.com/goodreadme/goodreadme/internal/constants"
	"github.com/goodreadme/goodreadme/internal/logging"
	"github.com/goodreadme/goodreadme/internal/prompt"
	"github.com/goodreadme/goodreadme/internal/storage"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// rootDeps holds the process-level collaborators of the root command.
type rootDeps struct {
	fs           afero.Fs
	lookupEnv    config.LookupEnv
	newPrompter  func() prompt.Prompter
	logWriter    io.Writer
	databasePath string
}

func defaultRootDeps() rootDeps {
	return rootDeps{
		fs:          afero.NewOsFs(),
		lookupEnv:   os.LookupEnv,
		newPrompter: prompt.NewLinerPrompter,
	}
}

// createNewRootCommand creates the goodreadme command wired to the real
// terminal and filesystem.
func createNewRootCommand() *cobra.Command {
	return newRootCommand(defaultRootDeps())
}

func newRootCommand(deps rootDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "goodreadme [output-file]",
		Short: "Generate a README through a series of questions",
		Long: "goodreadme asks about your project, looks up your GitHub profile and " +
			"writes a Markdown README. The document goes to " + constants.DefaultOutputFilename +
			" unless an output file is given.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var outputPath string
			if len(args) == 1 {
				outputPath = args[0]
			}
			return generate(cmd.Context(), cmd.OutOrStdout(), deps, outputPath)
		},
	}
}

func generate(ctx context.Context, out io.Writer, deps rootDeps, outputPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// A missing .env is the common case.
	_ = godotenv.Load(constants.EnvFile)

	configPath := resolveConfigPath(deps)
	cfg, err := config.Load(deps.fs, configPath, deps.lookupEnv)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx = initLogging(ctx, deps, cfg)
	logging.Get(ctx).Debug().Str("config", configPath).Msg("configuration loaded")

	factory := app.NewAppFactory(deps.fs, out)
	if deps.databasePath != "" {
		factory.WithDatabasePath(deps.databasePath)
	}

	cliApp, closeFn, err := factory.Create(ctx, cfg, deps.newPrompter())
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() {
		if err := closeFn(); err != nil {
			logging.Get(ctx).Warn().Err(err).Msg("cleanup failed")
		}
	}()

	if _, err := cliApp.Run(ctx, outputPath); err != nil {
		return err //nolint:wrapcheck // already carries the failing step
	}
	return nil
}

func resolveConfigPath(deps rootDeps) string {
	if path, ok := deps.lookupEnv(constants.EnvConfigPath); ok && path != "" {
		return path
	}
	return storage.New(deps.fs).GetConfigPath()
}

// initLogging attaches the run logger. Logging never blocks a run: when the
// log file can not be opened, output is discarded.
func initLogging(ctx context.Context, deps rootDeps, cfg *config.Config) context.Context {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logging.InfoLevel
	}

	logConfig := logging.Config{
		RunID:  uuid.NewString(),
		Writer: deps.logWriter,
		Level:  level,
	}

	logCtx, err := logging.New(ctx, deps.fs, logConfig)
	if err != nil {
		logConfig.Writer = io.Discard
		logCtx, _ = logging.New(ctx, nil, logConfig)
	}
	return logCtx
}
