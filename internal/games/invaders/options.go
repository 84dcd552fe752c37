package invaders

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

//go:generate go tool mockgen -destination=./mocks/sound_mock.go -package=mocks . SoundPlayer

// SoundPlayer receives the game's audio cues.
type SoundPlayer interface {
	PlayShoot()
	PlayKill()
}

type silence struct{}

func (silence) PlayShoot() {}
func (silence) PlayKill()  {}

// Settings applied to every game created after they are set. The CLI sets
// them once before the registry instantiates the game.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	playerName       string
	sounds           SoundPlayer = silence{}
	logger                       = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParseDifficultyPreset(preset)
	if !ok {
		logger.Warn("unknown difficulty preset", "preset", preset)
	}
	difficultyPreset = p
}

// SetPlayerName overrides the configured player name.
func SetPlayerName(name string) {
	playerName = name
}

// SetSoundPlayer routes shoot and kill cues to p. Nil silences the game.
func SetSoundPlayer(p SoundPlayer) {
	if p == nil {
		p = silence{}
	}
	sounds = p
}

// SetLogger sets the logger used by games and their sessions. Nil discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}
