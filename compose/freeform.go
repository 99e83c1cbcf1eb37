package compose

import "github.com/eringen/visionkit/board"

// Placement positions a square card inside the freeform collage area. All
// values are percentages of the area; a negative edge means "unset", so
// each preset anchors to exactly one horizontal and one vertical edge.
type Placement struct {
	Top, Left, Right, Bottom float64
	Width                    float64
}

const unset = -1

// FreeformPresets are visually tuned constants, kept as literals.
var FreeformPresets = []Placement{
	{Top: 5, Left: 5, Right: unset, Bottom: unset, Width: 40},
	{Top: 10, Left: unset, Right: 5, Bottom: unset, Width: 35},
	{Top: unset, Left: 10, Right: unset, Bottom: 30, Width: 38},
	{Top: unset, Left: unset, Right: 8, Bottom: 20, Width: 42},
	{Top: 40, Left: 48, Right: unset, Bottom: unset, Width: 30},
	{Top: 60, Left: 20, Right: unset, Bottom: unset, Width: 25},
}

// FreeformRotations pairs with FreeformPresets, in degrees.
var FreeformRotations = []float64{-3, 2, -1, 3, -2, 1}

// Images past the preset tables share this centered medium card, unrotated.
var (
	FreeformFallback         = Placement{Top: 20, Left: 30, Right: unset, Bottom: unset, Width: 30}
	FreeformFallbackRotation = 0.0
)

// FallbackPreset marks an image node placed with FreeformFallback.
const FallbackPreset = -1

const (
	freeformTitleHeight  = 72
	freeformTitleGap     = 24
	freeformReserved     = 180
	freeformCaptionWidth = 200
	freeformCaptionH     = 42
	freeformCaptionStart = 20
	freeformCaptionStep  = 12
	freeformCaptionInset = 5
	freeformCaptionPadX  = 16
)

// FreeformArea is the box image cards and captions are positioned in.
func FreeformArea() Rect {
	return Rect{
		X: padding,
		Y: padding + freeformTitleHeight + freeformTitleGap,
		W: CanvasWidth - 2*padding,
		H: CanvasHeight - 2*padding - freeformReserved,
	}
}

// PlacementFor returns the placement, rotation and preset index for image i.
func PlacementFor(i int) (Placement, float64, int) {
	if i >= 0 && i < len(FreeformPresets) {
		return FreeformPresets[i], FreeformRotations[i%len(FreeformRotations)], i
	}
	return FreeformFallback, FreeformFallbackRotation, FallbackPreset
}

// Resolve converts p to an absolute square rectangle inside area.
func (p Placement) Resolve(area Rect) Rect {
	size := p.Width / 100 * area.W
	r := Rect{W: size, H: size}
	if p.Left >= 0 {
		r.X = area.X + p.Left/100*area.W
	} else {
		r.X = area.X + area.W - p.Right/100*area.W - size
	}
	if p.Top >= 0 {
		r.Y = area.Y + p.Top/100*area.H
	} else {
		r.Y = area.Y + area.H - p.Bottom/100*area.H - size
	}
	return r
}

func composeFreeform(s board.Snapshot) Scene {
	scene := Scene{
		Width:  CanvasWidth,
		Height: CanvasHeight,
		Background: Gradient{
			Angle: 180,
			Stops: []Stop{{0, hex("#fef3c7")}, {1, hex("#fde68a")}},
		},
	}
	brown := hex("#78350f")
	scene.Nodes = append(scene.Nodes, titleNode(s.Title, freeformTitleHeight, 48, brown))

	area := FreeformArea()
	for i, img := range s.Images {
		p, rot, preset := PlacementFor(i)
		scene.Nodes = append(scene.Nodes, Node{
			Role:        RoleImage,
			Index:       i,
			Rect:        p.Resolve(area),
			Rotation:    rot,
			AssetID:     img.ID,
			Preset:      preset,
			Border:      hex("#ffffff"),
			BorderWidth: 4,
			Radius:      12,
		})
	}

	for i, c := range s.Captions {
		text := c.Text
		if text == "" {
			text = "Your affirmation"
		}
		inset := freeformCaptionInset / 100.0 * area.W
		r := Rect{
			Y: area.Y + float64(freeformCaptionStart+i*freeformCaptionStep)/100*area.H,
			W: freeformCaptionWidth,
			H: freeformCaptionH,
		}
		align := AlignRight
		if i%2 == 0 {
			r.X = area.X + area.W - inset - r.W
		} else {
			r.X = area.X + inset
			align = AlignLeft
		}
		captionFont := Font{Size: 17.6}
		lines, lineH := layoutText(text, captionFont, r.W-2*freeformCaptionPadX)
		r.H = textHeight(lines, lineH, captionPadY, freeformCaptionH)
		scene.Nodes = append(scene.Nodes, Node{
			Role:    RoleCaption,
			Index:   i,
			Rect:    r,
			Fill:    rgba(255, 255, 255, 0.98),
			Radius:  8,
			Text:    text,
			Lines:   lines,
			Font:    captionFont,
			Color:   brown,
			Align:   align,
			Padding: freeformCaptionPadX,
		})
	}

	scene.Nodes = append(scene.Nodes, footerNode("Your dreams await", area.Y+area.H, hex("#92400e")))
	return scene
}
