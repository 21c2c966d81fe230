package domain

// ScriptEvent names a directory of user scripts run when something changes
type ScriptEvent string

const (
	ScriptConfigChanged   ScriptEvent = "config-changed"
	ScriptSettingsChanged ScriptEvent = "settings-changed"
)
