package commands

import (
	"fmt"
	"math/rand"

	"github.com/gridsnake/engine/game"
	"github.com/gridsnake/engine/session"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	headColor    = termbox.ColorWhite
)

func render(snap session.Snapshot) error {
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}

	var (
		left   = 2
		top    = 2
		bottom = top + snap.Height + 1
	)

	renderTitle(left, top, snap)
	renderBoard(left, top, bottom, snap.Width)
	renderSnake(left, top, snap.Snake)
	renderFood(left, top, snap.Food)
	renderBanner(left, top, snap)
	renderHelp(left, bottom)

	return termbox.Flush()
}

func renderTitle(left, top int, snap session.Snapshot) {
	text := fmt.Sprintf("gridsnake  score %d  best %d  tick %dms", snap.Score, snap.HighScore, snap.TickDelayMillis)
	tbprint(left, top-1, defaultColor, defaultColor, text)

	label, color := statusLabel(snap.Status)
	x := left + snap.Width - runewidth.StringWidth(label)
	if x < left+runewidth.StringWidth(text)+2 {
		x = left + runewidth.StringWidth(text) + 2
	}
	tbprint(x, top-1, color, defaultColor, label)
}

func statusLabel(status game.Status) (string, termbox.Attribute) {
	switch status {
	case game.StatusReady:
		return "ready", termbox.ColorCyan
	case game.StatusRunning:
		return "running", termbox.ColorGreen
	case game.StatusPaused:
		return "paused", termbox.ColorYellow
	case game.StatusGameOver:
		return "game over", termbox.ColorRed
	}
	return string(status), defaultColor
}

func renderSnake(left, top int, body []game.Cell) {
	for i, b := range body {
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		termbox.SetCell(left+b.X, top+b.Y+1, ' ', color, color)
	}
}

func renderFood(left, top int, food game.Cell) {
	termbox.SetCell(left+food.X, top+food.Y+1, getFoodEmoji(food.X, food.Y), defaultColor, bgColor)
}

var foods = map[string]rune{}

func getFoodEmoji(x, y int) rune {
	key := fmt.Sprintf("(%d, %d)", x, y)
	r, ok := foods[key]
	if !ok {
		r = randomFoodEmoji()
		foods[key] = r
	}
	return r
}

func randomFoodEmoji() rune {
	f := []rune{
		'🍒',
		'🍍',
		'🍑',
		'🍇',
		'🍏',
		'🍌',
		'🍫',
		'🍭',
		'🍕',
		'🍩',
		'🍗',
		'🍖',
		'🍬',
		'🍤',
		'🍪',
	}

	return f[rand.Intn(len(f))]
}

func renderBoard(left, top, bottom, width int) {
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+width, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+width, bottom, '┘', defaultColor, bgColor)

	fill(left, top, width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, width, 1, termbox.Cell{Ch: '─'})
}

// renderBanner overlays the board with a prompt for every state except a
// live round.
func renderBanner(left, top int, snap session.Snapshot) {
	var text string
	switch snap.Status {
	case game.StatusReady:
		text = "press enter to start"
	case game.StatusPaused:
		text = "paused - space resumes"
	case game.StatusGameOver:
		text = "game over - enter restarts"
	default:
		return
	}

	_, color := statusLabel(snap.Status)
	x := left + (snap.Width-runewidth.StringWidth(text))/2
	if x < left {
		x = left
	}
	tbprint(x, top+1+snap.Height/2, color, defaultColor, text)
}

func renderHelp(left, bottom int) {
	tbprint(left, bottom+1, defaultColor, defaultColor, "arrows/wasd steer  space pause  enter restart  esc quit")
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
