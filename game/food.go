package game

import "math/rand"

// maxFoodDraws bounds the rejection-sampling phase of food placement before
// falling back to a full scan of the free cells.
const maxFoodDraws = 64

// placeFood relocates the food to a random cell off the snake. On a board
// with no free cell left the food stays where it is.
func (e *Engine) placeFood() {
	if c, ok := randomEmptyCell(e.rng, e.snake, e.cfg.Width, e.cfg.Height); ok {
		e.food = c
	}
}

// randomEmptyCell picks a uniformly random cell not occupied by the body. It
// draws random cells first and, once the board is crowded enough for draws
// to keep missing, scans out the remaining free cells so placement stays
// bounded. ok is false when the body covers the entire board.
func randomEmptyCell(rng *rand.Rand, body []Cell, width, height int) (c Cell, ok bool) {
	for i := 0; i < maxFoodDraws; i++ {
		c := Cell{X: rng.Intn(width), Y: rng.Intn(height)}
		if !bodyContains(body, c) {
			return c, true
		}
	}

	free := []Cell{}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			c := Cell{X: x, Y: y}
			if !bodyContains(body, c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Cell{}, false
	}
	return free[rng.Intn(len(free))], true
}
