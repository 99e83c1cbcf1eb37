// Package compose derives a positioned visual tree (a Scene) from a board
// snapshot. Composition is a pure function of the snapshot and the static
// styling tables in this package.
package compose

import (
	"fmt"
	"image/color"
)

// Logical canvas size every scene is laid out on.
const (
	CanvasWidth  = 1200
	CanvasHeight = 1600
)

// Role tells the renderer what a node stands for.
type Role string

const (
	RoleTitle       Role = "title"
	RoleImage       Role = "image"
	RolePlaceholder Role = "placeholder"
	RoleCaption     Role = "caption"
	RoleFooter      Role = "footer"
)

// Align is horizontal text alignment inside a node's rectangle.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Rect is an axis-aligned box in logical pixels.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Stop is one color stop of a linear gradient.
type Stop struct {
	Offset float64    `json:"offset"`
	Color  color.RGBA `json:"color"`
}

// Gradient is a CSS-style linear gradient. Angle is in degrees, 180 meaning
// top to bottom and 135 meaning top-left to bottom-right.
type Gradient struct {
	Angle float64 `json:"angle"`
	Stops []Stop  `json:"stops"`
}

// Font describes the face used by a text node.
type Font struct {
	Size   float64 `json:"size"`
	Bold   bool    `json:"bold,omitempty"`
	Italic bool    `json:"italic,omitempty"`
}

// Node is one positioned element. Which fields matter depends on Role.
type Node struct {
	Role     Role    `json:"role"`
	Index    int     `json:"index"`
	Rect     Rect    `json:"rect"`
	Rotation float64 `json:"rotation,omitempty"`

	// image nodes
	AssetID string `json:"asset_id,omitempty"`
	Preset  int    `json:"preset"`

	// box styling
	Fill        color.RGBA `json:"fill"`
	Border      color.RGBA `json:"border"`
	BorderWidth float64    `json:"border_width,omitempty"`
	Dashed      bool       `json:"dashed,omitempty"`
	Radius      float64    `json:"radius,omitempty"`

	// text
	Text    string     `json:"text,omitempty"`
	Lines   []string   `json:"lines,omitempty"` // pre-wrapped Text, caption nodes only
	Font    Font       `json:"font"`
	Color   color.RGBA `json:"color"`
	Align   Align      `json:"align,omitempty"`
	Padding float64    `json:"padding,omitempty"`
}

// Scene is the composed board, painted back to front.
type Scene struct {
	Width      float64  `json:"width"`
	Height     float64  `json:"height"`
	Background Gradient `json:"background"`
	Nodes      []Node   `json:"nodes"`
}

// ByRole returns the nodes with the given role in paint order.
func (s Scene) ByRole(role Role) []Node {
	var out []Node
	for _, n := range s.Nodes {
		if n.Role == role {
			out = append(out, n)
		}
	}
	return out
}

// AssetIDs lists the image assets the scene draws.
func (s Scene) AssetIDs() []string {
	var ids []string
	for _, n := range s.Nodes {
		if n.Role == RoleImage {
			ids = append(ids, n.AssetID)
		}
	}
	return ids
}

// hex parses "#rrggbb" into an opaque color. It panics on malformed input,
// which only ever comes from the literal tables below.
func hex(s string) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		panic(fmt.Sprintf("compose: bad color %q", s))
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// rgba builds a color from CSS rgba() components, premultiplied as
// color.RGBA requires.
func rgba(r, g, b uint8, a float64) color.RGBA {
	alpha := a * 255
	return color.RGBA{
		R: uint8(float64(r)*a + 0.5),
		G: uint8(float64(g)*a + 0.5),
		B: uint8(float64(b)*a + 0.5),
		A: uint8(alpha + 0.5),
	}
}
