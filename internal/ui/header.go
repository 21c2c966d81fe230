package ui

import (
	"fmt"

	"github.com/bozothegeek/pegasus-frontend/internal/theme"
	"github.com/bozothegeek/pegasus-frontend/internal/version"
)

// renderHeader creates the header shown above the binding table.
// In dev mode the build info follows the app name.
func renderHeader(devMode bool, subtitle string) string {
	appNameLine := theme.AppNameStyle.Render("Pegasus")
	if devMode {
		commit := version.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		appNameLine += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			version.Version,
			commit,
			version.Date,
			version.GoVersion))
	}

	result := appNameLine + "\n"
	result += theme.TaglineStyle.Render(version.Tagline)

	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}

	return result
}
