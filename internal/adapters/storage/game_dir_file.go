package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bozothegeek/pegasus-frontend/internal/paths"
	"github.com/bozothegeek/pegasus-frontend/internal/ports"
)

// GameDirFile implements ports.GameDirRepository with one directory per line.
// Blank lines and lines starting with # are ignored.
type GameDirFile struct {
	path string
}

var _ ports.GameDirRepository = (*GameDirFile)(nil)

// NewGameDirFile creates a repository backed by the file at path
func NewGameDirFile(path string) *GameDirFile {
	return &GameDirFile{path: paths.ExpandPath(path)}
}

// List implements GameDirRepository.List
func (r *GameDirFile) List() ([]string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read game directory list: %w", err)
	}

	dirs := []string{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		dirs = append(dirs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse game directory list: %w", err)
	}

	return dirs, nil
}

// Replace implements GameDirRepository.Replace
func (r *GameDirFile) Replace(dirs []string) error {
	var buf bytes.Buffer
	for _, dir := range dirs {
		buf.WriteString(dir)
		buf.WriteByte('\n')
	}

	return withFileLock(r.path, func() error {
		return writeFileAtomic(r.path, buf.Bytes())
	})
}
