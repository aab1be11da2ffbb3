package audio

import (
	"errors"

	"github.com/lixenwraith/snake/core"
)

// soundNames maps sound types to their SNAKE_SFX_VOLUMES keys
var soundNames = map[string]core.SoundType{
	"eat":   core.SoundEat,
	"crash": core.SoundCrash,
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
