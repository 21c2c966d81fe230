package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bozothegeek/pegasus-frontend/internal/config"
	"github.com/bozothegeek/pegasus-frontend/internal/logging"

	"github.com/alecthomas/kong"
)

// stdout is where commands print their output
var stdout io.Writer = os.Stdout

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Backend     string           `help:"Key binding storage backend (sqlite, bolt or toml)" env:"PEGASUS_BACKEND" placeholder:"BACKEND"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Edit     KeysEditCmd `cmd:"" help:"Open the key binding editor (default)" default:"1" hidden:""`
	Keys     KeysCmd     `cmd:"keys" help:"Edit and inspect key bindings"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, fullscreen, game directories)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv(logging.EnvMaxLogFiles); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv(logging.EnvDebug); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Scripts run as child processes and should log to the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv(logging.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(logging.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, fmt.Sprintf("%d", c.MaxLogFiles))
	}

	backend, err := c.bindingsBackend()
	if err != nil {
		return err
	}

	// The container opens the database, so it must come after logging
	container, err := NewContainer(context.Background(), backend)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// bindingsBackend resolves the backend from the flag or $PEGASUS_BACKEND, then settings.json
func (c *CLI) bindingsBackend() (string, error) {
	backend := c.Backend
	if backend == "" && c.settings != nil {
		backend = c.settings.BindingsBackend
	}
	if backend == "" {
		backend = config.DefaultBindingsBackend
	}

	check := config.Settings{BindingsBackend: backend}
	if err := check.Validate(); err != nil {
		return "", err
	}
	return backend, nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
