// Package audio names the game's sound effects and the Player that plays
// them. Speaker playback lives in the sfx subpackage.
package audio

// Sound identifies a sound effect.
type Sound int

const (
	SoundShot    Sound = iota // brick destroyed
	SoundStretch              // paddle stretched
	SoundSubmit               // button pressed
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundShot:
		return "shot"
	case SoundStretch:
		return "stretch"
	case SoundSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// Player plays one-shot sound effects. Play must not block.
type Player interface {
	Play(s Sound)
}

// Nop is a Player that discards every sound.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Sound) {}
