package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// TimerForPreset returns the countdown in seconds for a difficulty preset.
func TimerForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 60
	case DifficultyHard:
		return 15
	default:
		return 30
	}
}

// ApplyColorGridPreset modifies the config based on a difficulty preset.
// The result stays inside the configured timer bounds.
func ApplyColorGridPreset(cfg *ColorGridConfig, preset DifficultyPreset) {
	cfg.Timer.Duration = cfg.Timer.Clamp(TimerForPreset(preset))
}
