// Package schedule holds the weekly detection windows attached to a
// camera's AI configuration: five-field cron strings where only the
// day-of-week field varies for always-on windows.
package schedule

import "strings"

// Presets understood by Resolve.
const (
	PresetEntireDay   = "entire-day"
	PresetOfficeHours = "office-hours"
	PresetAfterHours  = "after-hours"
)

func entireDay() []string {
	return []string{
		"* * * * 0", "* * * * 1", "* * * * 2",
		"* * * * 3", "* * * * 4", "* * * * 5", "* * * * 6",
	}
}

func officeHours() []string {
	return []string{"0 9-17 * * 1-5"}
}

func afterHours() []string {
	return []string{"0 0-9,17-24 * * 1-5", "* * * * 6", "* * * * 0"}
}

// Resolve maps a preset name or a comma-separated cron list to the
// schedule strings sent to the camera PATCH. Empty or unusable input falls
// back to the entire-day window.
func Resolve(input string) []string {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", PresetEntireDay, "entire day":
		return entireDay()
	case PresetOfficeHours, "office hours":
		return officeHours()
	case PresetAfterHours, "after hours":
		return afterHours()
	}

	var custom []string
	for _, s := range strings.Split(input, ",") {
		if s = strings.TrimSpace(s); s != "" {
			custom = append(custom, s)
		}
	}
	if len(custom) == 0 {
		return entireDay()
	}
	return custom
}
