package game

import "time"

// ScoreStore records finished games. Implementations live outside the
// core; the session calls them synchronously at game-over and treats
// every failure as best-effort.
type ScoreStore interface {
	// IsNewHighScore reports whether score would enter the high-score list.
	IsNewHighScore(score int) (bool, error)
	// RecordScore persists a finished game.
	RecordScore(score, level, lines int, when time.Time) error
}

// Settings holds the player-facing options the core carries for its host.
// Language is a semantic tag, never a localized string.
type Settings struct {
	Language     string
	SoundEnabled bool
	MusicEnabled bool
}

// DefaultSettings are used whenever no store is configured or a load fails.
func DefaultSettings() Settings {
	return Settings{Language: "en", SoundEnabled: true, MusicEnabled: true}
}

// SettingsStore loads and saves player settings. Like ScoreStore, failures
// never interrupt gameplay; the session falls back to in-memory values.
type SettingsStore interface {
	LoadSettings() (Settings, error)
	SaveSettings(Settings) error
}
