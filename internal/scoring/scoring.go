package scoring

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Scoring manages the session's score: points per cleared cell with a chain
// multiplier, plus the persisted score history.
type Scoring struct {
	// public
	CurrentScore int
	ChainTotal   int
	ClearedTotal int
	// private
	storage ScoreStorage // The interface for loading/saving scores.
	history ScoreHistory
}

// Points per cleared cell before the chain multiplier applies.
const cellValue = 10

// InitScoring creates and initializes a new Scoring object, loading the
// score history through the provided storage interface.
func InitScoring(storage ScoreStorage) (*Scoring, error) {
	s := &Scoring{storage: storage}

	entries, err := s.storage.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("could not load score history: %w", err)
	}

	// Sort entries to find the high score.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	s.history.Entries = entries
	s.history.Attempts = len(entries)
	if len(entries) > 0 {
		s.history.HighScoreEntry = &entries[0]
	}

	// Initialize the current session's score entry.
	s.history.CurrentScore = &ScoreHistoryEntry{
		Timestamp: time.Now().Format(time.RFC3339),
	}

	return s, nil
}

// ChainMultiplier is the fixed chain bonus formula: one chain pays x1.0 and
// every further chain in the same resolution adds half again. Deliberately
// kept as a float formula, floored only after the cell value applies.
func ChainMultiplier(chains int) float64 {
	return 1 + float64(chains-1)*0.5
}

// ScoreClear adds points for one resolution that cleared cells:
// floor(cells * 10 * multiplier). Score and chain totals only ever grow.
func (s *Scoring) ScoreClear(cellsCleared, chains int) {
	if cellsCleared <= 0 {
		return
	}
	points := int(math.Floor(float64(cellsCleared) * cellValue * ChainMultiplier(chains)))
	s.CurrentScore += points
	s.ChainTotal += chains
	s.ClearedTotal += cellsCleared

	// Update the current score entry in the history.
	if s.history.CurrentScore != nil {
		s.history.CurrentScore.Score = s.CurrentScore
		s.history.CurrentScore.Chains = s.ChainTotal
	}
}

// SaveEntries persists the finished session's score. It reads all stored
// entries, appends the current one, and writes the list back using the
// storage interface.
func (s *Scoring) SaveEntries() error {
	if s.history.CurrentScore == nil {
		return nil // Nothing to save.
	}

	allEntries, err := s.storage.LoadAll()
	if err != nil {
		return fmt.Errorf("could not load scores for saving: %w", err)
	}

	allEntries = append(allEntries, *s.history.CurrentScore)
	return s.storage.SaveAll(allEntries)
}

// Accessor methods for score history, delegating to the history object.
func (s *Scoring) GetHighScore() *ScoreHistoryEntry {
	return s.history.GetHighScoreEntry()
}

func (s *Scoring) GetAttempts() int {
	return s.history.Attempts
}

func (s *Scoring) GotHighScore() bool {
	return s.history.GotHighScore()
}

func (s *Scoring) GetNScoreEntries(n int) []ScoreHistoryEntry {
	return s.history.GetNScoreEntries(n)
}
