package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ValidPreset reports whether the preset name is recognized.
// The empty string is valid and means "use the config as loaded".
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}

// ApplySnakePreset adjusts the speed parameters for a difficulty preset.
// The snake accelerates as it eats; the presets change where that
// progression starts and how steep it is. "fixed" disables progression.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.InitialMS = 250
		cfg.Speed.AccelMS = 3
		cfg.Speed.MinMS = 80
	case DifficultyHard:
		cfg.Speed.InitialMS = 150
		cfg.Speed.AccelMS = 8
		cfg.Speed.MinMS = 40
	case DifficultyFixed:
		cfg.Speed.AccelMS = 0
	}
}
