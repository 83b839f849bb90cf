package settings

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	model "task-planner.com/task-planner/internal/models"
)

// LoadDefaults reads the optional TOML defaults file used for users
// who have never saved settings. Fields left out of the file keep the
// built-in defaults; a missing path returns the built-ins untouched.
func LoadDefaults(path string) (model.ScheduleSettings, error) {
	defaults := model.DefaultScheduleSettings()
	if path == "" {
		return defaults, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return defaults, fmt.Errorf("settings defaults file not found: %s", path)
	}

	if _, err := toml.DecodeFile(path, &defaults); err != nil {
		return defaults, fmt.Errorf("parse settings defaults: %w", err)
	}

	if defaults.PerDay == nil {
		defaults.PerDay = model.EmptyPerDaySchedule()
	}

	return defaults, nil
}
