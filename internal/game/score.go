package game

// ScoreManager holds the score for the current run.
type ScoreManager struct {
	score uint32
}

// AddScore adds points to the score.
func (s *ScoreManager) AddScore(points uint32) {
	s.score += points
}

// Score returns the current score.
func (s *ScoreManager) Score() uint32 {
	return s.score
}

// Reset sets the score back to zero.
func (s *ScoreManager) Reset() {
	s.score = 0
}
