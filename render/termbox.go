// Package render draws games in the terminal and reads the player's keys.
package render

import (
	"fmt"
	"sync"

	"github.com/battlesnakeio/snek/board"
	"github.com/battlesnakeio/snek/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

// Each tile is two terminal cells wide so the board looks square.
const tileWidth = 2

// Termbox is both the renderer and the input source of an interactive game.
type Termbox struct {
	TileCount int
	Left      int
	Top       int

	colors   palette
	score    int
	commands chan rules.Command
	pollOnce sync.Once
	done     chan struct{}
	stopOnce sync.Once
}

// NewTermbox takes over the terminal. Close must be called to give it back.
func NewTermbox(tileCount int) (*Termbox, error) {
	if err := termbox.Init(); err != nil {
		return nil, errors.Wrap(err, "termbox init")
	}
	termbox.SetInputMode(termbox.InputEsc)
	return newTermbox(tileCount), nil
}

func newTermbox(tileCount int) *Termbox {
	return &Termbox{
		TileCount: tileCount,
		Left:      2,
		Top:       2,
		colors:    defaultPalette,
		commands:  make(chan rules.Command),
		done:      make(chan struct{}),
	}
}

// Close stops the key polling and restores the terminal.
func (t *Termbox) Close() {
	t.stop()
	termbox.Close()
}

func (t *Termbox) stop() {
	t.stopOnce.Do(func() { close(t.done) })
}

// ScoreChanged updates the score shown under the board.
func (t *Termbox) ScoreChanged(score int) {
	t.score = score
}

// Render draws a full frame.
func (t *Termbox) Render(s *rules.GameState) error {
	if s == nil {
		return errors.New("received nil state")
	}
	if err := termbox.Clear(defaultColor, bgColor); err != nil {
		return err
	}

	t.renderTitle(s.Turn)
	t.renderBoard()
	for _, o := range s.Obstacles {
		t.renderTile(o, t.colors.Obstacle)
	}
	if s.Food != nil {
		t.renderTile(*s.Food, t.colors.Food)
	}
	if s.Enemy != nil {
		t.renderSnake(s.Enemy, t.colors.Enemy)
	}
	t.renderSnake(s.Snake, t.colors.Player)
	t.renderStatus(s)

	return termbox.Flush()
}

// cell maps a board point to the terminal cell of its left half.
func (t *Termbox) cell(p board.Point) (int, int) {
	return t.Left + p.X*tileWidth, t.Top + 1 + p.Y
}

func (t *Termbox) bottom() int {
	return t.Top + t.TileCount + 1
}

func (t *Termbox) renderTile(p board.Point, color termbox.Attribute) {
	if !p.InBounds(t.TileCount) {
		return
	}
	x, y := t.cell(p)
	for i := 0; i < tileWidth; i++ {
		termbox.SetCell(x+i, y, ' ', color, color)
	}
}

func (t *Termbox) renderSnake(s *board.Snake, color termbox.Attribute) {
	for _, b := range s.Body {
		t.renderTile(b, color)
	}
}

func (t *Termbox) renderBoard() {
	right := t.Left + t.TileCount*tileWidth
	bottom := t.bottom()
	for i := t.Top + 1; i < bottom; i++ {
		termbox.SetCell(t.Left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(right, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(t.Left-1, t.Top, '┌', defaultColor, bgColor)
	termbox.SetCell(t.Left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(right, t.Top, '┐', defaultColor, bgColor)
	termbox.SetCell(right, bottom, '┘', defaultColor, bgColor)

	fill(t.Left, t.Top, t.TileCount*tileWidth, 1, termbox.Cell{Ch: '─'})
	fill(t.Left, bottom, t.TileCount*tileWidth, 1, termbox.Cell{Ch: '─'})
}

func (t *Termbox) renderTitle(turn int) {
	tbprint(t.Left, t.Top-1, defaultColor, defaultColor, fmt.Sprintf("snek - Turn %d", turn))
}

func (t *Termbox) renderStatus(s *rules.GameState) {
	tbprint(t.Left, t.bottom()+1, defaultColor, defaultColor, fmt.Sprintf("Score: %d", t.score))
	if !s.GameOver() {
		return
	}
	tbprint(t.Left, t.bottom()+2, t.colors.GameOver, defaultColor, gameOverText(s))
}

func gameOverText(s *rules.GameState) string {
	text := "GAME OVER"
	if s.Death != nil {
		text = fmt.Sprintf("%s - %s", text, s.Death.Cause)
	}
	return text + " - press space to restart"
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
