package app

import (
	"io"

	"github.com/goodreadme/goodreadme/internal/readme"
	"github.com/spf13/afero"
)

// AppOptions contains the collaborators an App needs
type AppOptions struct {
	Fs            afero.Fs
	Collector     AnswerCollector
	Profiles      ProfileLookup
	Assembler     *readme.Assembler
	Out           io.Writer
	DefaultOutput string
}

// NewAppWithOptions creates a new App with the given options. Missing
// optional collaborators get working defaults; Collector is required.
func NewAppWithOptions(opts AppOptions) *App {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Assembler == nil {
		opts.Assembler = readme.NewAssembler()
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Profiles == nil {
		opts.Profiles = noProfile{}
	}

	return &App{
		fs:            opts.Fs,
		collector:     opts.Collector,
		profiles:      opts.Profiles,
		assembler:     opts.Assembler,
		out:           opts.Out,
		defaultOutput: opts.DefaultOutput,
	}
}
