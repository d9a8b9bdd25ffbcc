package render

import termbox "github.com/nsf/termbox-go"

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
)

// palette holds the tile colour for each kind of entity.
type palette struct {
	Player   termbox.Attribute
	Enemy    termbox.Attribute
	Food     termbox.Attribute
	Obstacle termbox.Attribute
	GameOver termbox.Attribute
}

var defaultPalette = palette{
	Player:   termbox.ColorGreen,
	Enemy:    termbox.ColorYellow,
	Food:     termbox.ColorRed,
	Obstacle: termbox.ColorMagenta,
	GameOver: termbox.ColorRed | termbox.AttrBold,
}
