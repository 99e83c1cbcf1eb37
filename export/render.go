package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/eringen/visionkit/compose"
)

// ErrMissingAsset is returned when a scene references an image that was not
// captured with it.
var ErrMissingAsset = errors.New("export: missing image asset")

// Renderer rasterizes a compose.Scene. Scale maps logical canvas pixels to
// output pixels; zero means 1.
type Renderer struct {
	Scale float64
}

func (r Renderer) scale() float64 {
	if r.Scale <= 0 {
		return 1
	}
	return r.Scale
}

// Bounds returns the output raster size for scene.
func (r Renderer) Bounds(scene compose.Scene) image.Rectangle {
	s := r.scale()
	return image.Rect(0, 0, px(scene.Width*s), px(scene.Height*s))
}

// Render paints scene back to front. assets maps image node AssetIDs to the
// decoded images captured together with the scene.
func (r Renderer) Render(ctx context.Context, scene compose.Scene, assets map[string]image.Image) (*image.RGBA, error) {
	dst := image.NewRGBA(r.Bounds(scene))
	fillGradient(dst, scene.Background)

	p := &painter{dst: dst, scale: r.scale(), faces: newFaceSet(r.scale())}
	defer p.faces.Close()

	for _, n := range scene.Nodes {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("export: render: %w", err)
		}
		var err error
		switch n.Role {
		case compose.RoleImage:
			err = p.image(n, assets)
		case compose.RolePlaceholder:
			err = p.placeholder(n)
		case compose.RoleCaption:
			err = p.caption(n)
		default:
			err = p.label(n)
		}
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// WritePNG renders scene and encodes it to w.
func (r Renderer) WritePNG(ctx context.Context, w io.Writer, scene compose.Scene, assets map[string]image.Image) error {
	img, err := r.Render(ctx, scene, assets)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

type painter struct {
	dst   *image.RGBA
	scale float64
	faces *faceSet
}

func px(v float64) int { return int(math.Round(v)) }

func (p *painter) box(r compose.Rect) image.Rectangle {
	x0, y0 := px(r.X*p.scale), px(r.Y*p.scale)
	return image.Rect(x0, y0, x0+px(r.W*p.scale), y0+px(r.H*p.scale))
}

func (p *painter) image(n compose.Node, assets map[string]image.Image) error {
	src, ok := assets[n.AssetID]
	if !ok || src == nil {
		return fmt.Errorf("%w: %s", ErrMissingAsset, n.AssetID)
	}
	box := p.box(n.Rect)
	if box.Empty() || src.Bounds().Empty() {
		return nil
	}

	card := image.NewRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	radius := n.Radius * p.scale
	inner := card.Bounds()
	if bw := px(n.BorderWidth * p.scale); bw > 0 {
		fillRounded(card, card.Bounds(), radius, n.Border)
		inner = inner.Inset(bw)
		radius = math.Max(radius-float64(bw), 0)
	}
	if !inner.Empty() {
		photo := image.NewRGBA(image.Rect(0, 0, inner.Dx(), inner.Dy()))
		draw.CatmullRom.Scale(photo, photo.Bounds(), src, coverCrop(src.Bounds(), inner.Dx(), inner.Dy()), draw.Src, nil)
		draw.DrawMask(card, inner, photo, image.Point{}, roundedMask(inner.Dx(), inner.Dy(), radius), image.Point{}, draw.Over)
	}

	if n.Rotation == 0 {
		draw.Draw(p.dst, box, card, image.Point{}, draw.Over)
		return nil
	}
	cx, cy := n.Rect.Center()
	cx, cy = cx*p.scale, cy*p.scale
	rad := n.Rotation * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	w, h := float64(box.Dx()), float64(box.Dy())
	m := f64.Aff3{
		cos, -sin, cx - cos*w/2 + sin*h/2,
		sin, cos, cy - sin*w/2 - cos*h/2,
	}
	draw.BiLinear.Transform(p.dst, m, card, card.Bounds(), draw.Over, nil)
	return nil
}

func (p *painter) placeholder(n compose.Node) error {
	box := p.box(n.Rect)
	fillRounded(p.dst, box, n.Radius*p.scale, n.Fill)
	if bw := px(n.BorderWidth * p.scale); bw > 0 {
		if n.Dashed {
			p.dashed(box, bw, n.Border)
		} else {
			p.stroke(box, bw, n.Border)
		}
	}
	if n.Text == "" {
		return nil
	}
	return p.label(n)
}

func (p *painter) caption(n compose.Node) error {
	face, err := p.faces.face(n.Font)
	if err != nil {
		return err
	}
	box := p.box(n.Rect)
	pad := px(n.Padding * p.scale)
	lines := n.Lines
	if lines == nil {
		lines = compose.Wrap(face, n.Text, box.Dx()-2*pad)
	}
	fillRounded(p.dst, box, n.Radius*p.scale, n.Fill)
	p.text(face, lines, image.Rect(box.Min.X+pad, box.Min.Y, box.Max.X-pad, box.Max.Y), n.Align, n.Color)
	return nil
}

func (p *painter) label(n compose.Node) error {
	if n.Text == "" {
		return nil
	}
	face, err := p.faces.face(n.Font)
	if err != nil {
		return err
	}
	box := p.box(n.Rect)
	p.text(face, compose.Wrap(face, n.Text, box.Dx()), box, n.Align, n.Color)
	return nil
}

// text draws lines vertically centered in box.
func (p *painter) text(face font.Face, lines []string, box image.Rectangle, align compose.Align, c color.RGBA) {
	m := face.Metrics()
	lineH := m.Height.Ceil()
	y := box.Min.Y + (box.Dy()-lineH*len(lines))/2 + m.Ascent.Ceil()
	src := image.NewUniform(c)
	for _, line := range lines {
		width := font.MeasureString(face, line).Ceil()
		x := box.Min.X
		switch align {
		case compose.AlignCenter:
			x += (box.Dx() - width) / 2
		case compose.AlignRight:
			x = box.Max.X - width
		}
		d := font.Drawer{Dst: p.dst, Src: src, Face: face, Dot: fixed.P(x, y)}
		d.DrawString(line)
		y += lineH
	}
}

func (p *painter) dashed(r image.Rectangle, width int, c color.RGBA) {
	dash, gap := max(px(10*p.scale), 1), max(px(6*p.scale), 1)
	src := image.NewUniform(c)
	for x := r.Min.X; x < r.Max.X; x += dash + gap {
		x1 := min(x+dash, r.Max.X)
		draw.Draw(p.dst, image.Rect(x, r.Min.Y, x1, r.Min.Y+width), src, image.Point{}, draw.Over)
		draw.Draw(p.dst, image.Rect(x, r.Max.Y-width, x1, r.Max.Y), src, image.Point{}, draw.Over)
	}
	for y := r.Min.Y + width; y < r.Max.Y-width; y += dash + gap {
		y1 := min(y+dash, r.Max.Y-width)
		draw.Draw(p.dst, image.Rect(r.Min.X, y, r.Min.X+width, y1), src, image.Point{}, draw.Over)
		draw.Draw(p.dst, image.Rect(r.Max.X-width, y, r.Max.X, y1), src, image.Point{}, draw.Over)
	}
}

func (p *painter) stroke(r image.Rectangle, width int, c color.RGBA) {
	src := image.NewUniform(c)
	for _, edge := range []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width),
		image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y+width, r.Min.X+width, r.Max.Y-width),
		image.Rect(r.Max.X-width, r.Min.Y+width, r.Max.X, r.Max.Y-width),
	} {
		draw.Draw(p.dst, edge, src, image.Point{}, draw.Over)
	}
}

// coverCrop returns the centered region of b with the aspect ratio w:h, so
// scaling it to w×h fills the box without distortion.
func coverCrop(b image.Rectangle, w, h int) image.Rectangle {
	sw, sh := b.Dx(), b.Dy()
	if sw*h > sh*w {
		cw := max(sh*w/h, 1)
		x0 := b.Min.X + (sw-cw)/2
		return image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
	}
	ch := max(sw*h/w, 1)
	y0 := b.Min.Y + (sh-ch)/2
	return image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
}

func fillRounded(dst draw.Image, r image.Rectangle, radius float64, c color.RGBA) {
	if r.Empty() || c.A == 0 {
		return
	}
	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, roundedMask(r.Dx(), r.Dy(), radius), image.Point{}, draw.Over)
}

// roundedMask is an antialiased rounded-rectangle coverage mask.
func roundedMask(w, h int, radius float64) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	r := math.Min(radius, math.Min(float64(w), float64(h))/2)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cov := 1.0
			if r > 0 {
				fx, fy := float64(x)+0.5, float64(y)+0.5
				cx := clamp(fx, r, float64(w)-r)
				cy := clamp(fy, r, float64(h)-r)
				cov = clamp(r-math.Hypot(fx-cx, fy-cy)+0.5, 0, 1)
			}
			m.Pix[y*m.Stride+x] = uint8(cov*255 + 0.5)
		}
	}
	return m
}

func fillGradient(dst *image.RGBA, g compose.Gradient) {
	b := dst.Bounds()
	if len(g.Stops) == 0 {
		draw.Draw(dst, b, image.White, image.Point{}, draw.Src)
		return
	}
	rad := g.Angle * math.Pi / 180
	dx, dy := math.Sin(rad), -math.Cos(rad)
	w, h := float64(b.Dx()), float64(b.Dy())
	length := math.Max(math.Abs(w*dx)+math.Abs(h*dy), 1)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		fy := float64(y-b.Min.Y) + 0.5 - h/2
		off := dst.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			fx := float64(x-b.Min.X) + 0.5 - w/2
			c := stopColor(g.Stops, (fx*dx+fy*dy)/length+0.5)
			dst.Pix[off+0] = c.R
			dst.Pix[off+1] = c.G
			dst.Pix[off+2] = c.B
			dst.Pix[off+3] = c.A
			off += 4
		}
	}
}

func stopColor(stops []compose.Stop, t float64) color.RGBA {
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			a, b := stops[i-1], stops[i]
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			return lerpColor(a.Color, b.Color, (t-a.Offset)/span)
		}
	}
	return stops[len(stops)-1].Color
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	it := 1 - t
	return color.RGBA{
		R: uint8(float64(a.R)*it + float64(b.R)*t + 0.5),
		G: uint8(float64(a.G)*it + float64(b.G)*t + 0.5),
		B: uint8(float64(a.B)*it + float64(b.B)*t + 0.5),
		A: uint8(float64(a.A)*it + float64(b.A)*t + 0.5),
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}
