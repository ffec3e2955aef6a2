package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockshoot/internal/storage"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// memStore is an in-memory SessionStore.
type memStore struct {
	results []storage.Result
	queried []string
}

func (s *memStore) SaveResult(r storage.Result) (int64, error) {
	s.results = append(s.results, r)
	return int64(len(s.results)), nil
}

func (s *memStore) TopResults(difficulty string, _ int) ([]storage.Result, error) {
	s.queried = append(s.queried, difficulty)
	var out []storage.Result
	for _, r := range s.results {
		if r.Difficulty == difficulty {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memStore) Stats(difficulty string) (storage.Stats, error) {
	var st storage.Stats
	for _, r := range s.results {
		if r.Difficulty != difficulty {
			continue
		}
		st.Played++
		if r.Score > st.Best {
			st.Best = r.Score
		}
	}
	return st, nil
}

func (s *memStore) HighScore(difficulty string) (uint32, error) {
	st, err := s.Stats(difficulty)
	return st.Best, err
}
