package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "FLEX_DEBUG"

var (
	logFile *os.File
	logger  *log.Logger
	mu      sync.Mutex
)

// Init opens path for appending and routes the debug logger to it.
// If path is empty, uses "flex-debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "flex-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = newFileLogger(f)
	return nil
}

func newFileLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           log.DebugLevel,
		Prefix:          "flex",
	})
}

// Logger returns the debug logger. On first use it honours FLEX_DEBUG; when
// the variable is unset or the file cannot be opened the logger discards.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		return logger
	}
	if path := os.Getenv(EnvVar); path != "" {
		if err := initLocked(path); err == nil {
			return logger
		}
	}
	logger = log.New(io.Discard)
	return logger
}

// Enabled reports whether debug output goes to a file.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return logFile != nil
}

// Close closes the debug log file and resets the logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a formatted message to the debug log.
func Log(format string, args ...any) {
	Logger().Debugf(format, args...)
}
