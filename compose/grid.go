package compose

import (
	"image/color"

	"github.com/eringen/visionkit/board"
)

// Grid geometry. Slot geometry never depends on the layout variant.
const (
	GridColumns = 3
	GridSlots   = 9

	gridGap         = 12
	gridTitleHeight = 60
	gridTitleGap    = 24
	gridCaptionH    = 44
	gridCaptionGap  = 8
	gridCaptionPadX = 16
	captionPadY     = 10
	gridRadius      = 8
)

// CaptionTreatmentA and CaptionTreatmentB alternate by caption index parity
// in the grid template: even indexes get A, odd get B.
var (
	CaptionTreatmentA = rgba(59, 130, 246, 0.1)
	CaptionTreatmentB = rgba(236, 72, 153, 0.1)
)

type variantStyle struct {
	tint     color.RGBA
	rotation float64
}

var gridVariants = map[board.LayoutVariant]variantStyle{
	board.Classic: {tint: hex("#fff9f0"), rotation: 0},
	board.Modern:  {tint: hex("#fafafa"), rotation: 0},
	board.Collage: {tint: hex("#fff9f0"), rotation: 1},
}

// GridCell returns the rectangle of slot i (0..8), row-major.
func GridCell(i int) Rect {
	cell := (CanvasWidth - 2*padding - (GridColumns-1)*gridGap) / float64(GridColumns)
	top := float64(padding + gridTitleHeight + gridTitleGap)
	col, row := i%GridColumns, i/GridColumns
	return Rect{
		X: padding + float64(col)*(cell+gridGap),
		Y: top + float64(row)*(cell+gridGap),
		W: cell,
		H: cell,
	}
}

// CaptionTreatment returns the grid caption background for index i.
func CaptionTreatment(i int) color.RGBA {
	if i%2 == 0 {
		return CaptionTreatmentA
	}
	return CaptionTreatmentB
}

func composeGrid(s board.Snapshot) Scene {
	style, ok := gridVariants[s.Layout]
	if !ok {
		style = gridVariants[board.Classic]
	}
	white := hex("#ffffff")
	scene := Scene{
		Width:  CanvasWidth,
		Height: CanvasHeight,
		Background: Gradient{
			Angle: 135,
			Stops: []Stop{{0, style.tint}, {0.5, white}, {1, style.tint}},
		},
	}

	scene.Nodes = append(scene.Nodes, titleNode(s.Title, gridTitleHeight, 40, hex("#1e3a5f")))

	shown := len(s.Images)
	if shown > GridSlots {
		shown = GridSlots
	}
	for i := 0; i < shown; i++ {
		scene.Nodes = append(scene.Nodes, Node{
			Role:     RoleImage,
			Index:    i,
			Rect:     GridCell(i),
			Rotation: style.rotation,
			AssetID:  s.Images[i].ID,
			Preset:   i,
			Radius:   gridRadius,
		})
	}
	glyph := ""
	if len(s.Images) == 0 {
		glyph = "+"
	}
	for i := shown; i < GridSlots; i++ {
		scene.Nodes = append(scene.Nodes, Node{
			Role:        RolePlaceholder,
			Index:       i,
			Rect:        GridCell(i),
			Preset:      i,
			Fill:        rgba(0, 0, 0, 0.02),
			Border:      hex("#d1d5db"),
			BorderWidth: 2,
			Dashed:      true,
			Radius:      gridRadius,
			Text:        glyph,
			Font:        Font{Size: 36},
			Color:       hex("#9ca3af"),
			Align:       AlignCenter,
		})
	}

	last := GridCell(GridSlots - 1)
	y := last.Y + last.H + gridTitleGap
	// Captions stack in flow: a wrapped caption pushes the rest down.
	captionFont := Font{Size: 18, Italic: true}
	for i, c := range s.Captions {
		text := c.Text
		if text == "" {
			text = "Your affirmation here"
		}
		text = "“" + text + "”"
		w := float64(CanvasWidth - 2*padding)
		lines, lineH := layoutText(text, captionFont, w-2*gridCaptionPadX)
		h := textHeight(lines, lineH, captionPadY, gridCaptionH)
		scene.Nodes = append(scene.Nodes, Node{
			Role:    RoleCaption,
			Index:   i,
			Rect:    Rect{X: padding, Y: y, W: w, H: h},
			Fill:    CaptionTreatment(i),
			Radius:  gridRadius,
			Text:    text,
			Lines:   lines,
			Font:    captionFont,
			Color:   hex("#1f2937"),
			Align:   AlignLeft,
			Padding: gridCaptionPadX,
		})
		y += h + gridCaptionGap
	}

	scene.Nodes = append(scene.Nodes, footerNode("Created with Vision Board Kit", y-gridCaptionGap+gridTitleGap, hex("#6b7280")))
	return scene
}
