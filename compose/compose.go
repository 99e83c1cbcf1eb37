package compose

import (
	"image/color"

	"github.com/eringen/visionkit/board"
)

const padding = 32

// Compose lays out snapshot s for its selected template. The result depends
// only on s and the package tables.
func Compose(s board.Snapshot) Scene {
	if s.Template == board.Freeform {
		return composeFreeform(s)
	}
	return composeGrid(s)
}

// titleNode renders the board title once, centered across the content width.
func titleNode(title string, h, size float64, col color.RGBA) Node {
	return Node{
		Role:  RoleTitle,
		Rect:  Rect{X: padding, Y: padding, W: CanvasWidth - 2*padding, H: h},
		Text:  title,
		Font:  Font{Size: size, Bold: true},
		Color: col,
		Align: AlignCenter,
	}
}

func footerNode(text string, y float64, col color.RGBA) Node {
	return Node{
		Role:  RoleFooter,
		Rect:  Rect{X: padding, Y: y, W: CanvasWidth - 2*padding, H: 22},
		Text:  text,
		Font:  Font{Size: 14.4},
		Color: col,
		Align: AlignCenter,
	}
}
