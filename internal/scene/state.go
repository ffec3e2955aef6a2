package scene

// State identifies a scene.
type State int

const (
	StateTitle State = iota
	StateGame
	StateGameOver
	StateClear
)

// String returns the state's name as stored with results.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateGame:
		return "game"
	case StateGameOver:
		return "gameover"
	case StateClear:
		return "clear"
	default:
		return "unknown"
	}
}
