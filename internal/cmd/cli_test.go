package cmd

import (
	"bytes"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bozothegeek/pegasus-frontend/internal/config"
	"github.com/bozothegeek/pegasus-frontend/internal/domain"
	"github.com/bozothegeek/pegasus-frontend/internal/version"
)

// runCLI parses and runs args the way main does, returning what was printed
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	defer func() { stdout = prev }()

	settings, err := config.LoadSettings()
	require.NoError(t, err)

	var cli CLI
	cli.SetSettings(settings)
	parser := newParser(t, &cli)

	kctx, err := parser.Parse(args)
	defer cli.Close()
	if err != nil {
		return buf.String(), err
	}

	err = kctx.Run()
	return buf.String(), err
}

func newParser(t *testing.T, cli *CLI) *kong.Kong {
	t.Helper()
	parser, err := kong.New(cli,
		kong.Name("pegasus"),
		kong.Vars{"version": version.Info()},
		kong.Bind(cli),
		kong.Exit(func(int) { t.Fatalf("unexpected exit") }),
	)
	require.NoError(t, err)
	return parser
}

// selectedCommand parses args without running them
func selectedCommand(t *testing.T, args ...string) string {
	t.Helper()
	var cli CLI
	parser := newParser(t, &cli)
	kctx, err := parser.Parse(args)
	defer cli.Close()
	require.NoError(t, err)
	return kctx.Command()
}

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("PEGASUS_HOME", home)
	t.Setenv("PEGASUS_BACKEND", "")
	return home
}

func listBindings(t *testing.T, backend string) map[string]keyBindingOutput {
	t.Helper()
	out, err := runCLI(t, "--backend", backend, "keys", "list", "--format", "json")
	require.NoError(t, err)

	var bindings []keyBindingOutput
	require.NoError(t, json.Unmarshal([]byte(out), &bindings))

	byEvent := make(map[string]keyBindingOutput, len(bindings))
	for _, b := range bindings {
		byEvent[b.Event] = b
	}
	return byEvent
}

func TestKeysList_Defaults(t *testing.T) {
	setupHome(t)

	bindings := listBindings(t, config.BackendTOML)

	require.Len(t, bindings, domain.EventCount)
	assert.Equal(t, []int{int(domain.KeyUp), int(domain.GamepadDPadUp)}, bindings["up"].Codes)
	assert.Equal(t, []string{"Up arrow", "Gamepad Up"}, bindings["up"].Keys)
	assert.Equal(t, "Move up", bindings["up"].Label)
}

func TestKeysList_YAML(t *testing.T) {
	setupHome(t)

	out, err := runCLI(t, "--backend", "toml", "keys", "list", "--format", "yaml")
	require.NoError(t, err)

	var bindings []keyBindingOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &bindings))
	require.Len(t, bindings, domain.EventCount)
	assert.Equal(t, "main_menu", bindings[domain.EventMainMenu].Event)
	assert.Equal(t, []string{"F1", "Gamepad Start"}, bindings[domain.EventMainMenu].Keys)
}

func TestKeysList_Table(t *testing.T) {
	setupHome(t)

	out, err := runCLI(t, "--backend", "toml", "keys", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "page_down")
	assert.Contains(t, out, "Page Down, Gamepad R2")
}

func TestKeysEditCommands_PersistAcrossRuns(t *testing.T) {
	for _, backend := range config.ValidBackends {
		t.Run(backend, func(t *testing.T) {
			setupHome(t)

			out, err := runCLI(t, "--backend", backend, "keys", "add", "up", "w")
			require.NoError(t, err)
			assert.Equal(t, "Added W to up\n", out)

			_, err = runCLI(t, "--backend", backend, "keys", "del", "up", "38")
			require.NoError(t, err)

			out, err = runCLI(t, "--backend", backend, "keys", "replace", "up", "w", "ctrl")
			require.NoError(t, err)
			assert.Equal(t, "up: Ctrl, Gamepad Up\n", out)

			bindings := listBindings(t, backend)
			assert.Equal(t, []int{int(domain.KeyCtrl), int(domain.GamepadDPadUp)}, bindings["up"].Codes)

			_, err = runCLI(t, "--backend", backend, "keys", "reset", "--force")
			require.NoError(t, err)

			bindings = listBindings(t, backend)
			assert.Equal(t, []int{int(domain.KeyUp), int(domain.GamepadDPadUp)}, bindings["up"].Codes)
		})
	}
}

func TestKeysAdd_AlreadyBound(t *testing.T) {
	setupHome(t)

	out, err := runCLI(t, "--backend", "toml", "keys", "add", "accept", "enter")

	require.NoError(t, err)
	assert.Equal(t, "Enter is already bound to accept\n", out)
}

func TestKeysAdd_DigitKeyAndCode(t *testing.T) {
	setupHome(t)

	out, err := runCLI(t, "--backend", "toml", "keys", "add", "details", "8")
	require.NoError(t, err)
	assert.Equal(t, "Added 8 to details\n", out)

	out, err = runCLI(t, "--backend", "toml", "keys", "add", "details", "#8")
	require.NoError(t, err)
	assert.Equal(t, "Added Backspace to details\n", out)
}

func TestKeysCommands_Errors(t *testing.T) {
	setupHome(t)

	_, err := runCLI(t, "--backend", "toml", "keys", "add", "jump", "w")
	assert.ErrorIs(t, err, domain.ErrInvalidEvent)

	_, err = runCLI(t, "--backend", "toml", "keys", "add", "99", "w")
	assert.ErrorIs(t, err, domain.ErrInvalidEvent)

	_, err = runCLI(t, "--backend", "toml", "keys", "add", "up", "hyper")
	assert.ErrorIs(t, err, domain.ErrUnresolvedInput)

	_, err = runCLI(t, "--backend", "toml", "keys", "del", "up", "w")
	assert.ErrorIs(t, err, domain.ErrNotBound)
}

func TestKeysEvents(t *testing.T) {
	setupHome(t)

	out, err := runCLI(t, "--backend", "toml", "keys", "events")

	require.NoError(t, err)
	for _, name := range domain.EventNames() {
		assert.Contains(t, out, name)
	}
}

func TestKeysWhich(t *testing.T) {
	setupHome(t)

	out, err := runCLI(t, "--backend", "toml", "keys", "which", "enter")
	require.NoError(t, err)
	assert.Equal(t, "Enter: accept\n", out)

	_, err = runCLI(t, "--backend", "toml", "keys", "add", "details", "enter")
	require.NoError(t, err)

	out, err = runCLI(t, "--backend", "toml", "keys", "which", "enter")
	require.NoError(t, err)
	assert.Equal(t, "Enter: accept, details\n", out)

	out, err = runCLI(t, "--backend", "toml", "keys", "which", "z")
	require.NoError(t, err)
	assert.Equal(t, "Z is not bound\n", out)
}

func TestBackendFromSettings(t *testing.T) {
	home := setupHome(t)
	require.NoError(t, config.SaveSettings(&config.Settings{BindingsBackend: config.BackendTOML}))

	_, err := runCLI(t, "keys", "add", "up", "w")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(home, "keys.toml"))
}

func TestCommandSelection(t *testing.T) {
	setupHome(t)

	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"--backend", "toml"}, "edit"},
		{[]string{"--backend", "toml", "keys"}, "keys edit"},
		{[]string{"--backend", "toml", "keys", "list"}, "keys list"},
		{[]string{"--backend", "toml", "settings"}, "settings meta"},
		{[]string{"--backend", "toml", "settings", "gamedirs"}, "settings gamedirs list"},
		{[]string{"--backend", "toml", "settings", "gamedirs", "del", "0"}, "settings gamedirs del <index>"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, selectedCommand(t, tt.args...))
		})
	}
}

func TestBackendFromEnv(t *testing.T) {
	home := setupHome(t)
	require.NoError(t, config.SaveSettings(&config.Settings{BindingsBackend: config.BackendSQLite}))
	t.Setenv("PEGASUS_BACKEND", config.BackendTOML)

	_, err := runCLI(t, "keys", "add", "up", "w")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(home, "keys.toml"))
	assert.NoFileExists(t, filepath.Join(home, "state.db"))
}

func TestBackendFlagOverridesEnv(t *testing.T) {
	home := setupHome(t)
	t.Setenv("PEGASUS_BACKEND", config.BackendBolt)

	_, err := runCLI(t, "--backend", "toml", "keys", "add", "up", "w")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(home, "keys.toml"))
}

func TestUnknownBackend(t *testing.T) {
	setupHome(t)

	_, err := runCLI(t, "--backend", "redis", "keys", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown bindings_backend 'redis'")
}

func TestSettingsFullscreen(t *testing.T) {
	setupHome(t)

	out, err := runCLI(t, "--backend", "toml", "settings", "fullscreen")
	require.NoError(t, err)
	assert.Equal(t, "on\n", out)

	out, err = runCLI(t, "--backend", "toml", "settings", "fullscreen", "off")
	require.NoError(t, err)
	assert.Equal(t, "Fullscreen: off\n", out)

	out, err = runCLI(t, "--backend", "toml", "settings", "fullscreen")
	require.NoError(t, err)
	assert.Equal(t, "off\n", out)

	_, err = runCLI(t, "--backend", "toml", "settings", "fullscreen", "maybe")
	assert.Error(t, err)
}

func TestSettingsGameDirs(t *testing.T) {
	setupHome(t)
	games, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	out, err := runCLI(t, "--backend", "toml", "settings", "gamedirs", "list")
	require.NoError(t, err)
	assert.Equal(t, "No game directories\n", out)

	_, err = runCLI(t, "--backend", "toml", "settings", "gamedirs", "add", games)
	require.NoError(t, err)

	_, err = runCLI(t, "--backend", "toml", "settings", "gamedirs", "add", games)
	assert.ErrorIs(t, err, domain.ErrGameDirExists)

	out, err = runCLI(t, "--backend", "toml", "settings", "gamedirs", "list")
	require.NoError(t, err)
	assert.Equal(t, "0\t"+games+"\n", out)

	_, err = runCLI(t, "--backend", "toml", "settings", "gamedirs", "del", "3")
	assert.ErrorIs(t, err, domain.ErrGameDirIndex)

	_, err = runCLI(t, "--backend", "toml", "settings", "gamedirs", "del", "0")
	require.NoError(t, err)
}

func TestSettingsMeta(t *testing.T) {
	home := setupHome(t)

	out, err := runCLI(t, "--backend", "toml", "settings", "meta", "--format", "json")
	require.NoError(t, err)

	var meta map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &meta))
	assert.Equal(t, filepath.Join(home, "settings.json"), meta["settings_file"])
	format, ok := meta["format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, config.DefaultBindingsBackend, format["bindings_backend"])
	assert.Equal(t, true, format["fullscreen"])
}

func TestSettingsEdit_CreatesFile(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}
	home := setupHome(t)

	out, err := runCLI(t, "--backend", "toml", "settings", "edit", "--editor", "true")

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(home, "settings.json"))
	assert.Contains(t, out, "Settings saved to")
}
