package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goodreadme/goodreadme/internal/config"
	"github.com/goodreadme/goodreadme/internal/database"
	"github.com/goodreadme/goodreadme/internal/logging"
	"github.com/goodreadme/goodreadme/internal/profile"
	"github.com/goodreadme/goodreadme/internal/prompt"
	"github.com/goodreadme/goodreadme/internal/readme"
	"github.com/goodreadme/goodreadme/internal/storage"
	"github.com/spf13/afero"
)

// AppFactory handles the creation and initialization of App instances
type AppFactory struct {
	fs           afero.Fs
	out          io.Writer
	databasePath string
}

// NewAppFactory creates a new instance of AppFactory
func NewAppFactory(fs afero.Fs, out io.Writer) *AppFactory {
	return &AppFactory{fs: fs, out: out}
}

// WithDatabasePath overrides the XDG location of the profile cache.
func (f *AppFactory) WithDatabasePath(path string) *AppFactory {
	f.databasePath = path
	return f
}

// Create wires an App from cfg and takes ownership of prompter. The returned
// close function releases the terminal and the profile cache and must be
// called once the run is over. On error the prompter is already closed.
func (f *AppFactory) Create(ctx context.Context, cfg *config.Config, prompter prompt.Prompter) (*App, func() error, error) {
	footer, err := readme.ParseFooter(cfg.Output.Footer)
	if err != nil {
		_ = prompter.Close()
		return nil, nil, fmt.Errorf("invalid footer: %w", err)
	}

	collector := prompt.NewCollector(prompter, f.out)
	closers := []func() error{collector.Close}

	var store *profile.Store
	if cfg.Cache.Enabled {
		dbManager, err := f.openDatabase(ctx)
		if err != nil {
			logging.Get(ctx).Warn().Err(err).Msg("profile cache unavailable, continuing without it")
		} else {
			store = profile.NewStore(dbManager.DB())
			closers = append(closers, dbManager.Close)
		}
	}

	client := profile.NewClient(cfg.GitHub.APIURL, cfg.GitHub.Token, cfg.GitHub.Timeout)
	resolver := profile.NewResolver(client, store, cfg.Cache.TTL)
	resolver.Prune(ctx)

	a := NewAppWithOptions(AppOptions{
		Fs:            f.fs,
		Collector:     collector,
		Profiles:      resolver,
		Assembler:     readme.NewAssembler(readme.WithFooter(footer)),
		Out:           f.out,
		DefaultOutput: cfg.Output.Filename,
	})

	closeAll := func() error {
		var errs []error
		for _, c := range closers {
			if err := c(); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}

	return a, closeAll, nil
}

// openDatabase opens the profile cache. sqlite always works on the OS
// filesystem, so its directory is created there whatever f.fs is.
func (f *AppFactory) openDatabase(ctx context.Context) (*database.Manager, error) {
	path := f.databasePath
	if path == "" {
		var err error
		path, err = storage.New(f.fs).GetDatabasePath()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create profile cache directory: %w", err)
	}

	manager, err := database.NewManager(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile cache %s: %w", path, err)
	}
	return manager, nil
}
