package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger provides functionality for logging.
type Logger struct {
	*zerolog.Logger
}

// Default rotation limits of the log file.
const (
	DefaultMaxSizeMB  = 50
	DefaultMaxBackups = 3
)

// Options represents options for logger.
type Options struct {
	// Level is a zerolog level name, empty keeps the global level.
	Level string
	// Pretty switches stdout to human readable console output.
	Pretty bool

	// Filename enables a rotated log file next to stdout.
	Filename   string
	MaxSizeMB  int
	MaxBackups int
}

var (
	logger    Logger
	loggerErr error
	once      sync.Once
)

// New returns the process logger, built once from the first options it receives.
func New(opts Options) (*Logger, error) {
	once.Do(func() {
		zeroLogger, err := build(os.Stdout, opts)
		if err != nil {
			loggerErr = err
			return
		}

		logger = Logger{zeroLogger}
	})
	if loggerErr != nil {
		return nil, loggerErr
	}

	return &logger, nil
}

func build(stdout io.Writer, opts Options) (*zerolog.Logger, error) {
	level := zerolog.GlobalLevel()
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	writers := []io.Writer{stdout}
	if opts.Pretty {
		writers[0] = zerolog.ConsoleWriter{Out: stdout, TimeFormat: time.Stamp}
	}

	if opts.Filename != "" {
		writers = append(writers, newFileWriter(opts))
	}

	zeroLogger := zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().Caller().Timestamp().
		Logger()

	return &zeroLogger, nil
}

func newFileWriter(opts Options) io.Writer {
	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = DefaultMaxSizeMB
	}

	maxBackups := opts.MaxBackups
	if maxBackups <= 0 {
		maxBackups = DefaultMaxBackups
	}

	return &lumberjack.Logger{
		Filename:   opts.Filename,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		Compress:   true,
	}
}

// NewNop returns a logger that drops every event.
func NewNop() *Logger {
	nop := zerolog.Nop()
	return &Logger{&nop}
}
