package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/bozothegeek/pegasus-frontend/internal/logging"
	"github.com/bozothegeek/pegasus-frontend/internal/ports"
)

// Opener implements ports.EditorOpener for terminal editors
type Opener struct{}

var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{}
}

// Open edits the file at path and waits for the editor to exit.
// Priority: cliEditor → $PEGASUS_EDITOR → $VISUAL → $EDITOR → platform defaults
func (o *Opener) Open(ctx context.Context, path string, cliEditor string) error {
	if path == "" {
		return fmt.Errorf("no path provided")
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	editor := findEditor(cliEditor)
	if editor == "" {
		return fmt.Errorf("no suitable editor found. Set --editor flag, $PEGASUS_EDITOR, $VISUAL, or $EDITOR")
	}

	logging.Logger.Info("Opening editor", "editor", editor, "path", path)

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		logging.Logger.Warn("Editor exited with error", "error", err, "editor", editor)
		return fmt.Errorf("editor %s failed: %w", editor, err)
	}

	return nil
}

func findEditor(cliEditor string) string {
	if cliEditor != "" {
		return cliEditor
	}

	for _, env := range []string{"PEGASUS_EDITOR", "VISUAL", "EDITOR"} {
		if editor := os.Getenv(env); editor != "" {
			return editor
		}
	}

	for _, editor := range defaultEditors {
		if _, err := exec.LookPath(editor); err == nil {
			return editor
		}
	}
	return ""
}
