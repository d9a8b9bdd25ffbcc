package render

import (
	"github.com/battlesnakeio/snek/rules"
	termbox "github.com/nsf/termbox-go"
)

// keyCode names a terminal key event the way rules.ParseCommand expects.
func keyCode(ev termbox.Event) string {
	if ev.Type != termbox.EventKey {
		return ""
	}
	switch ev.Key {
	case termbox.KeyArrowUp:
		return "ArrowUp"
	case termbox.KeyArrowDown:
		return "ArrowDown"
	case termbox.KeyArrowLeft:
		return "ArrowLeft"
	case termbox.KeyArrowRight:
		return "ArrowRight"
	case termbox.KeySpace:
		return "Space"
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return "Escape"
	}
	if ev.Ch == 'q' {
		return "Escape"
	}
	return ""
}

func commandForEvent(ev termbox.Event) (rules.Command, bool) {
	return rules.ParseCommand(keyCode(ev))
}

// Commands starts polling the terminal for key presses. Keys that don't map
// to a command are dropped.
func (t *Termbox) Commands() <-chan rules.Command {
	t.pollOnce.Do(func() {
		go t.forward(termbox.PollEvent)
	})
	return t.commands
}

// forward sends the commands read by poll until Close is called.
func (t *Termbox) forward(poll func() termbox.Event) {
	for {
		ev := poll()
		select {
		case <-t.done:
			return
		default:
		}
		cmd, ok := commandForEvent(ev)
		if !ok {
			continue
		}
		select {
		case t.commands <- cmd:
		case <-t.done:
			return
		}
	}
}
