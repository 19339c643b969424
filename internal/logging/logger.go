// Package logging builds the zerolog logger used by the rwfile CLI.
//
// Console output is human-readable on a terminal and JSON otherwise. When a
// log directory is available, entries are also written to a rotating file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mrz1836/rwfile/internal/constants"
)

// zerologConfigOnce ensures zerolog global settings are configured exactly once.
var zerologConfigOnce sync.Once //nolint:gochecknoglobals // One-time configuration

// zerologGlobalMu protects writes to the zerolog global logger.
var zerologGlobalMu sync.Mutex //nolint:gochecknoglobals // Protects zerolog global

// Options controls logger construction.
type Options struct {
	// Verbose selects debug level.
	Verbose bool
	// Quiet selects warn level. Ignored when Verbose is set.
	Quiet bool
	// File enables the rotating log file.
	File bool
	// Dir overrides the log directory. Empty means <home>/logs.
	Dir string
	// MaxSizeMB, MaxBackups and MaxAgeDays configure rotation.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	// Compress gzips rotated files.
	Compress bool
}

// configureGlobals sets the zerolog field names used in every log entry.
func configureGlobals() {
	zerologConfigOnce.Do(func() {
		zerolog.TimestampFieldName = "ts"
		zerolog.MessageFieldName = "event"
	})
}

// Level determines the log level from the verbosity flags.
func Level(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// New creates the CLI logger and installs it as the zerolog global logger.
//
// The returned closer flushes and closes the log file; it is a no-op when
// no file was opened. A log file that cannot be created is not an error:
// the logger falls back to console output and the cause is logged at debug
// level.
func New(opts Options) (zerolog.Logger, io.Closer) {
	configureGlobals()

	var writer io.Writer = consoleWriter()
	var closer io.Closer = nopCloser{}
	var fileErr error

	if opts.File {
		lj, err := fileWriter(opts)
		if err != nil {
			fileErr = err
		} else {
			writer = zerolog.MultiLevelWriter(writer, lj)
			closer = lj
		}
	}

	logger := build(writer, Level(opts.Verbose, opts.Quiet))
	if fileErr != nil {
		logger.Debug().Err(fileErr).Msg("log file unavailable, using console only")
	}
	setGlobal(logger)
	return logger, closer
}

// NewWithWriter creates a logger writing only to w. Intended for tests.
func NewWithWriter(verbose, quiet bool, w io.Writer) zerolog.Logger {
	configureGlobals()
	logger := build(w, Level(verbose, quiet))
	setGlobal(logger)
	return logger
}

func build(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func setGlobal(logger zerolog.Logger) {
	zerologGlobalMu.Lock()
	defer zerologGlobalMu.Unlock()
	log.Logger = logger
}

// consoleWriter uses the console writer on a TTY without NO_COLOR, JSON on
// stderr otherwise.
func consoleWriter() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}
	return os.Stderr
}

// fileWriter creates the rotating file writer.
func fileWriter(opts Options) (*lumberjack.Logger, error) {
	dir := opts.Dir
	if dir == "" {
		home, err := Home()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, constants.LogsDir)
	}

	if err := os.MkdirAll(dir, constants.DirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, constants.CLILogFileName),
		MaxSize:    orDefault(opts.MaxSizeMB, constants.LogMaxSizeMB),
		MaxBackups: orDefault(opts.MaxBackups, constants.LogMaxBackups),
		MaxAge:     orDefault(opts.MaxAgeDays, constants.LogMaxAgeDays),
		Compress:   opts.Compress,
	}, nil
}

// Home returns the rwfile home directory: $RWFILE_HOME, or ~/.rwfile.
func Home() (string, error) {
	if home := os.Getenv(constants.EnvHome); home != "" {
		return home, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(userHome, constants.RWFileHome), nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
