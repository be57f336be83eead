package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// LevelEnv overrides the configured log level when set
const LevelEnv = "WHEREWASI_LOG_LEVEL"

const defaultLevel = logrus.WarnLevel

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	base = newBaseLogger(os.Stderr)
)

func newBaseLogger(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	colors := false
	if f, ok := out.(*os.File); ok {
		colors = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    !colors,
		DisableTimestamp: true,
	})

	level := defaultLevel
	if env := os.Getenv(LevelEnv); env != "" {
		if parsed, err := logrus.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	logger.SetLevel(level)
	return logger
}

// NewLogger returns the logger for a component, creating it on first use
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}
	logger := base.WithField("component", component)
	loggers[component] = logger
	return logger
}

// SetLevel changes the level shared by all component loggers.
// The environment variable still wins so a user can debug a single run.
func SetLevel(level string) error {
	if env := os.Getenv(LevelEnv); env != "" {
		level = env
	}
	if strings.TrimSpace(level) == "" {
		return nil
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	base.SetLevel(parsed)
	return nil
}

// SetOutput redirects all component loggers
func SetOutput(out io.Writer) {
	base.SetOutput(out)
}
