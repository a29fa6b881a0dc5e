// Package constants contains file names, directory names and environment
// variable names shared across goodreadme.
package constants

const (
	// AppName is used for XDG directory paths and the log context.
	AppName = "goodreadme"

	// LogFilename is the rotated log file name inside the XDG data directory.
	LogFilename = "goodreadme.log"

	// DatabaseFilename is the profile cache database file name.
	DatabaseFilename = "goodreadme.db"

	// ConfigFilename is the YAML configuration file name inside the XDG config directory.
	ConfigFilename = "config.yml"

	// DefaultOutputFilename is written when no output path is given.
	DefaultOutputFilename = "README.out.md"
)
