package game

// Status is the lifecycle state of a board.
type Status string

const (
	// StatusReady is a freshly built board waiting for its first start.
	StatusReady Status = "ready"
	// StatusRunning is a board being advanced by ticks.
	StatusRunning Status = "running"
	// StatusPaused is a running board frozen mid-round.
	StatusPaused Status = "paused"
	// StatusGameOver is a board whose snake has collided. Only a restart
	// leaves this state.
	StatusGameOver Status = "game-over"
)
