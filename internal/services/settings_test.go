package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bozothegeek/pegasus-frontend/internal/domain"
	portsmocks "github.com/bozothegeek/pegasus-frontend/internal/ports/mocks"
)

type settingsMocks struct {
	settings *portsmocks.MockSettingsRepository
	gameDirs *portsmocks.MockGameDirRepository
	scripts  *portsmocks.MockScriptRunner
}

func newTestSettingsService(t *testing.T) (*SettingsService, settingsMocks) {
	m := settingsMocks{
		settings: portsmocks.NewMockSettingsRepository(t),
		gameDirs: portsmocks.NewMockGameDirRepository(t),
		scripts:  portsmocks.NewMockScriptRunner(t),
	}
	return NewSettingsService(m.settings, m.gameDirs, m.scripts), m
}

func TestSetFullscreen_RunsScriptsInOrder(t *testing.T) {
	service, m := newTestSettingsService(t)
	notified := 0
	service.Subscribe(func() { notified++ })

	var ran []domain.ScriptEvent
	m.settings.EXPECT().Fullscreen().Return(true, nil)
	m.settings.EXPECT().SetFullscreen(false).Return(nil)
	m.scripts.EXPECT().RunScripts(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, event domain.ScriptEvent) { ran = append(ran, event) }).
		Return(nil).Twice()

	err := service.SetFullscreen(context.Background(), false)

	require.NoError(t, err)
	assert.Equal(t, 1, notified)
	assert.Equal(t, []domain.ScriptEvent{domain.ScriptConfigChanged, domain.ScriptSettingsChanged}, ran)
}

func TestSetFullscreen_Unchanged(t *testing.T) {
	service, m := newTestSettingsService(t)
	m.settings.EXPECT().Fullscreen().Return(true, nil)

	require.NoError(t, service.SetFullscreen(context.Background(), true))
}

func TestSetFullscreen_ScriptFailureIsNotAnError(t *testing.T) {
	service, m := newTestSettingsService(t)
	m.settings.EXPECT().Fullscreen().Return(false, nil)
	m.settings.EXPECT().SetFullscreen(true).Return(nil)
	m.scripts.EXPECT().RunScripts(mock.Anything, mock.Anything).Return(errors.New("exit status 1"))

	assert.NoError(t, service.SetFullscreen(context.Background(), true))
}

func TestSetFullscreen_StoreFailure(t *testing.T) {
	service, m := newTestSettingsService(t)
	m.settings.EXPECT().Fullscreen().Return(true, nil)
	m.settings.EXPECT().SetFullscreen(false).Return(errors.New("read-only"))

	err := service.SetFullscreen(context.Background(), false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update fullscreen")
}

func TestFullscreen_ReadFailureReturnsDefault(t *testing.T) {
	service, m := newTestSettingsService(t)
	m.settings.EXPECT().Fullscreen().Return(false, errors.New("invalid settings.json"))

	assert.True(t, service.Fullscreen())
}

func TestGameDirs_SortedAndDeduplicated(t *testing.T) {
	service, m := newTestSettingsService(t)
	m.gameDirs.EXPECT().List().Return([]string{"/b", "/a", "/b"}, nil)

	dirs, err := service.GameDirs()

	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/b"}, dirs)
}

func TestAddGameDir(t *testing.T) {
	service, m := newTestSettingsService(t)
	notified := 0
	service.Subscribe(func() { notified++ })

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	m.gameDirs.EXPECT().List().Return([]string{"/zzz"}, nil)
	m.gameDirs.EXPECT().Replace([]string{dir, "/zzz"}).Return(nil)

	require.NoError(t, service.AddGameDir(context.Background(), dir))
	assert.Equal(t, 1, notified)
}

func TestAddGameDir_ResolvesSymlinks(t *testing.T) {
	service, m := newTestSettingsService(t)

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	target := filepath.Join(root, "roms")
	link := filepath.Join(root, "link")
	require.NoError(t, os.Mkdir(target, 0755))
	require.NoError(t, os.Symlink(target, link))

	m.gameDirs.EXPECT().List().Return(nil, nil)
	m.gameDirs.EXPECT().Replace([]string{target}).Return(nil)

	require.NoError(t, service.AddGameDir(context.Background(), link))
}

func TestAddGameDir_Errors(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	file := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	t.Run("missing directory", func(t *testing.T) {
		service, _ := newTestSettingsService(t)
		err := service.AddGameDir(context.Background(), filepath.Join(root, "missing"))
		assert.ErrorIs(t, err, domain.ErrGameDirNotFound)
	})

	t.Run("not a directory", func(t *testing.T) {
		service, _ := newTestSettingsService(t)
		err := service.AddGameDir(context.Background(), file)
		assert.ErrorIs(t, err, domain.ErrGameDirNotFound)
	})

	t.Run("already known", func(t *testing.T) {
		service, m := newTestSettingsService(t)
		m.gameDirs.EXPECT().List().Return([]string{root}, nil)
		err := service.AddGameDir(context.Background(), root)
		assert.ErrorIs(t, err, domain.ErrGameDirExists)
	})
}

func TestDelGameDir(t *testing.T) {
	service, m := newTestSettingsService(t)
	notified := 0
	service.Subscribe(func() { notified++ })

	m.gameDirs.EXPECT().List().Return([]string{"/c", "/a", "/b"}, nil)
	m.gameDirs.EXPECT().Replace([]string{"/a", "/c"}).Return(nil)

	require.NoError(t, service.DelGameDir(context.Background(), 1))
	assert.Equal(t, 1, notified)
}

func TestDelGameDir_IndexOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 2, 10} {
		service, m := newTestSettingsService(t)
		m.gameDirs.EXPECT().List().Return([]string{"/a", "/b"}, nil)

		err := service.DelGameDir(context.Background(), idx)

		assert.ErrorIs(t, err, domain.ErrGameDirIndex)
	}
}
