package paths

import (
	"os"
	"path/filepath"
)

// GetPegasusHome returns PEGASUS_HOME or ~/.config/pegasus-frontend default
func GetPegasusHome() string {
	home := os.Getenv("PEGASUS_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".pegasus-frontend"
		}
		return filepath.Join(homeDir, ".config", "pegasus-frontend")
	}
	return ExpandPath(home)
}

// GetDBPath returns $PEGASUS_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetPegasusHome(), "state.db")
}

// GetBoltPath returns $PEGASUS_HOME/keys.db
func GetBoltPath() string {
	return filepath.Join(GetPegasusHome(), "keys.db")
}

// GetKeysTOMLPath returns $PEGASUS_HOME/keys.toml
func GetKeysTOMLPath() string {
	return filepath.Join(GetPegasusHome(), "keys.toml")
}

// GetSettingsPath returns $PEGASUS_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetPegasusHome(), "settings.json")
}

// GetGameDirsPath returns $PEGASUS_HOME/game_dirs.txt
func GetGameDirsPath() string {
	return filepath.Join(GetPegasusHome(), "game_dirs.txt")
}

// GetScriptsDir returns $PEGASUS_HOME/scripts
func GetScriptsDir() string {
	return filepath.Join(GetPegasusHome(), "scripts")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
