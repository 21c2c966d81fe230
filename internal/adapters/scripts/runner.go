package scripts

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/bozothegeek/pegasus-frontend/internal/domain"
	"github.com/bozothegeek/pegasus-frontend/internal/logging"
	"github.com/bozothegeek/pegasus-frontend/internal/paths"
	"github.com/bozothegeek/pegasus-frontend/internal/ports"
)

// SystemScriptsDir holds scripts installed for every user
const SystemScriptsDir = "/etc/pegasus-frontend/scripts"

// Runner implements ports.ScriptRunner.
// Scripts live in <dir>/<event>/ for each configured dir.
type Runner struct {
	dirs []string
}

var _ ports.ScriptRunner = (*Runner)(nil)

// NewRunner creates a runner searching the given script roots
func NewRunner(dirs ...string) *Runner {
	return &Runner{dirs: dirs}
}

// NewDefaultRunner searches $PEGASUS_HOME/scripts then the system scripts dir
func NewDefaultRunner() *Runner {
	return NewRunner(paths.GetScriptsDir(), SystemScriptsDir)
}

// RunScripts runs every script registered for event, one at a time.
// A failing script is logged and does not stop the others; failures are joined in the result.
func (r *Runner) RunScripts(ctx context.Context, event domain.ScriptEvent) error {
	scripts, err := r.discover(ctx, event)
	if err != nil {
		return err
	}

	if len(scripts) == 0 {
		logging.Logger.Debug("No scripts for event", "event", event)
		return nil
	}

	var errs []error
	for _, script := range scripts {
		if err := ctx.Err(); err != nil {
			return err
		}

		logging.Logger.Info("Running script", "event", event, "script", script)
		cmd := exec.CommandContext(ctx, script)
		output, err := cmd.CombinedOutput()
		if err != nil {
			logging.Logger.Error("Script failed", "event", event, "script", script, "error", err, "output", string(output))
			errs = append(errs, fmt.Errorf("script %s: %w", script, err))
			continue
		}
		logging.Logger.Debug("Script finished", "event", event, "script", script)
	}

	return errors.Join(errs...)
}

// discover lists executable files of every root concurrently, ordered by file name
func (r *Runner) discover(ctx context.Context, event domain.ScriptEvent) ([]string, error) {
	found := make([][]string, len(r.dirs))

	g, ctx := errgroup.WithContext(ctx)
	for i, root := range r.dirs {
		g.Go(func() error {
			scripts, err := listExecutables(ctx, filepath.Join(root, string(event)))
			if err != nil {
				return err
			}
			found[i] = scripts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var scripts []string
	for _, list := range found {
		scripts = append(scripts, list...)
	}
	sort.SliceStable(scripts, func(i, j int) bool {
		return filepath.Base(scripts[i]) < filepath.Base(scripts[j])
	})

	return scripts, nil
}

func listExecutables(ctx context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read scripts directory %s: %w", dir, err)
	}

	var scripts []string
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			logging.Logger.Warn("Skipping unreadable script", "path", path, "error", err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		if info.Mode().Perm()&0111 == 0 {
			logging.Logger.Debug("Skipping non-executable file", "path", path)
			continue
		}
		scripts = append(scripts, path)
	}

	return scripts, nil
}
