package session

import "github.com/gridsnake/engine/game"

// Snapshot is a read-only view of a board, shaped for JSON transport to
// renderers and other presentation layers.
type Snapshot struct {
	SessionID string      `json:"session_id"`
	Status    game.Status `json:"status"`
	Score     uint32      `json:"score"`
	HighScore uint32      `json:"high_score"`
	// Snake holds the body head first.
	Snake []game.Cell `json:"snake"`
	Food  game.Cell   `json:"food"`
	// Width and Height are the board dimensions in cells.
	Width  int `json:"width"`
	Height int `json:"height"`
	// TickDelayMillis is the scheduler wait implied by the current score.
	TickDelayMillis int64 `json:"tick_delay_ms"`
}

// Head returns the head cell, or false for an empty body.
func (s Snapshot) Head() (game.Cell, bool) {
	if len(s.Snake) == 0 {
		return game.Cell{}, false
	}
	return s.Snake[0], true
}
