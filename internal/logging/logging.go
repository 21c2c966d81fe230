package logging

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the number of log files kept when nothing else is configured
const DefaultMaxLogFiles = 1000

// Environment variables shared with child processes (hook scripts, editors)
const (
	EnvDebug       = "PEGASUS_DEBUG"
	EnvDebugFile   = "PEGASUS_DEBUG_FILE"
	EnvLogDir      = "PEGASUS_LOG_DIR"
	EnvMaxLogFiles = "PEGASUS_MAX_LOG_FILES"
)

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize is called.
var Logger = discardLogger()

// options is the resolved logging setup for one run
type options struct {
	debug     bool
	file      string
	inherited bool
	maxFiles  int
}

// Initialize points Logger at a JSON log file when debug logging is on.
// Settings inherited from a parent pegasus process win over defaults.
// Returns the log file path, or "" when logs are discarded.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	opts := resolveOptions(debug, debugFile, maxLogFiles)
	if !opts.debug && opts.file == "" {
		Logger = discardLogger()
		return "", nil
	}

	path, err := opts.logFilePath()
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("pid", os.Getpid())

	if !opts.inherited {
		Logger.Info("Debug logging initialized", "log_file", path)
		fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", path)
	}
	return path, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func resolveOptions(debug bool, debugFile string, maxLogFiles int) options {
	opts := options{debug: debug, file: debugFile, maxFiles: maxLogFiles}

	if os.Getenv(EnvDebug) == "1" {
		opts.debug = true
		opts.inherited = true
	}
	if opts.file == "" {
		opts.file = os.Getenv(EnvDebugFile)
	}
	if opts.maxFiles == DefaultMaxLogFiles {
		if n, err := strconv.Atoi(os.Getenv(EnvMaxLogFiles)); err == nil {
			opts.maxFiles = n
		}
	}
	return opts
}

// logFilePath returns the explicit debug file, or a fresh uuid-named file
// in the log directory after pruning old ones
func (o options) logFilePath() (string, error) {
	if o.file != "" {
		if err := os.MkdirAll(filepath.Dir(o.file), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return o.file, nil
	}

	dir, err := logDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if o.maxFiles > 0 {
		if err := rotateLogs(dir, o.maxFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}
	return filepath.Join(dir, uuid.NewString()+".log"), nil
}

// rotateLogs deletes the oldest *.log files in dir so that, with the log
// about to be created, at most maxLogFiles remain
func rotateLogs(dir string, maxLogFiles int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFile struct {
		path    string
		modTime time.Time
	}
	var logs []logFile
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		if info, err := entry.Info(); err == nil {
			logs = append(logs, logFile{filepath.Join(dir, entry.Name()), info.ModTime()})
		}
	}

	excess := len(logs) - maxLogFiles + 1
	if excess <= 0 {
		return nil
	}

	slices.SortFunc(logs, func(a, b logFile) int { return a.modTime.Compare(b.modTime) })
	for _, l := range logs[:excess] {
		if err := os.Remove(l.path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", l.path, err)
		}
	}
	return nil
}

// logDir returns $PEGASUS_LOG_DIR, or the per-OS state/log directory
func logDir() (string, error) {
	if dir := os.Getenv(EnvLogDir); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "pegasus"), nil
	case "windows":
		base := cmp.Or(os.Getenv("LOCALAPPDATA"), filepath.Join(home, "AppData", "Local"))
		return filepath.Join(base, "pegasus", "logs"), nil
	default:
		base := cmp.Or(os.Getenv("XDG_STATE_HOME"), filepath.Join(home, ".local", "state"))
		return filepath.Join(base, "pegasus"), nil
	}
}
