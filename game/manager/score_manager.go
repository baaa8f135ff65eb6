package manager

import (
	"log/slog"
)

// HighScoreStore is the durable slot the best score is kept in.
type HighScoreStore interface {
	Get(key string) (int, error)
	Set(key string, value int) error
}

// ScoreManager tracks the running score and the best score seen.
type ScoreManager struct {
	store     HighScoreStore
	key       string
	score     int
	highScore int
}

// NewScoreManager reads the stored best score. Any read failure, including
// a missing or unparsable value, leaves it at 0.
func NewScoreManager(store HighScoreStore, key string) *ScoreManager {
	sm := &ScoreManager{
		store: store,
		key:   key,
	}
	if store == nil {
		return sm
	}
	high, err := store.Get(key)
	if err != nil {
		slog.Debug("high score unavailable", "key", key, "error", err)
		return sm
	}
	if high > 0 {
		sm.highScore = high
	}
	return sm
}

// Reset zeroes the score for a new session.
func (sm *ScoreManager) Reset() {
	sm.score = 0
}

// Add credits points and returns the new score. Negative amounts are ignored.
func (sm *ScoreManager) Add(points int) int {
	if points > 0 {
		sm.score += points
	}
	return sm.score
}

// UpdateScore closes a session. It raises the high score when beaten and
// writes it through to the store; a failed write is logged and dropped.
func (sm *ScoreManager) UpdateScore() bool {
	if sm.score <= sm.highScore {
		return false
	}
	sm.highScore = sm.score
	if sm.store != nil {
		if err := sm.store.Set(sm.key, sm.highScore); err != nil {
			slog.Warn("failed to save high score", "key", sm.key, "score", sm.highScore, "error", err)
		}
	}
	return true
}

func (sm *ScoreManager) Score() int {
	return sm.score
}

func (sm *ScoreManager) GetHighScore() int {
	return sm.highScore
}
