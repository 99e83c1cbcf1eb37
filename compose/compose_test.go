package compose

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"

	"github.com/eringen/visionkit/board"
)

func snapshot(tmpl board.TemplateKind, layout board.LayoutVariant, images int, captions ...string) board.Snapshot {
	s := board.Snapshot{
		Template: tmpl,
		Layout:   layout,
		Title:    board.DefaultTitle,
	}
	for i := 0; i < images; i++ {
		s.Images = append(s.Images, board.ImageAsset{ID: fmt.Sprintf("img-%d", i)})
	}
	if len(captions) == 0 {
		captions = board.DefaultCaptions
	}
	for i, text := range captions {
		s.Captions = append(s.Captions, board.Caption{ID: fmt.Sprintf("cap-%d", i), Text: text})
	}
	return s
}

func TestGridTwoImagesSevenPlaceholders(t *testing.T) {
	scene := Compose(snapshot(board.Grid, board.Classic, 2))

	imgs := scene.ByRole(RoleImage)
	holes := scene.ByRole(RolePlaceholder)
	require.Len(t, imgs, 2)
	require.Len(t, holes, 7)

	for i, n := range imgs {
		assert.Equal(t, fmt.Sprintf("img-%d", i), n.AssetID)
		assert.Equal(t, GridCell(i), n.Rect)
		assert.Zero(t, n.Rotation)
	}
	for i, n := range holes {
		assert.Equal(t, GridCell(i+2), n.Rect)
		assert.Empty(t, n.Text, "no plus glyph once an image exists")
		assert.True(t, n.Dashed)
	}
}

func TestGridCapsAtNineImages(t *testing.T) {
	scene := Compose(snapshot(board.Grid, board.Classic, 12))

	imgs := scene.ByRole(RoleImage)
	require.Len(t, imgs, 9)
	assert.Empty(t, scene.ByRole(RolePlaceholder))
	assert.Equal(t, "img-8", imgs[8].AssetID)
	assert.NotContains(t, scene.AssetIDs(), "img-9")
}

func TestGridEmptyShowsPlusGlyph(t *testing.T) {
	scene := Compose(snapshot(board.Grid, board.Modern, 0))
	holes := scene.ByRole(RolePlaceholder)
	require.Len(t, holes, 9)
	for _, n := range holes {
		assert.Equal(t, "+", n.Text)
	}
}

func TestGridVariantsKeepGeometry(t *testing.T) {
	classic := Compose(snapshot(board.Grid, board.Classic, 3))
	modern := Compose(snapshot(board.Grid, board.Modern, 3))
	collage := Compose(snapshot(board.Grid, board.Collage, 3))

	for i := range classic.ByRole(RoleImage) {
		assert.Equal(t, classic.ByRole(RoleImage)[i].Rect, modern.ByRole(RoleImage)[i].Rect)
		assert.Equal(t, classic.ByRole(RoleImage)[i].Rect, collage.ByRole(RoleImage)[i].Rect)
		assert.Zero(t, classic.ByRole(RoleImage)[i].Rotation)
		assert.Zero(t, modern.ByRole(RoleImage)[i].Rotation)
		assert.Equal(t, 1.0, collage.ByRole(RoleImage)[i].Rotation)
	}
	assert.Equal(t, hex("#fff9f0"), classic.Background.Stops[0].Color)
	assert.Equal(t, hex("#fafafa"), modern.Background.Stops[0].Color)
	assert.Equal(t, hex("#fff9f0"), collage.Background.Stops[0].Color)
}

func TestGridCaptionsAlternateByParity(t *testing.T) {
	scene := Compose(snapshot(board.Grid, board.Classic, 1, "a", "", "c", "d"))
	caps := scene.ByRole(RoleCaption)
	require.Len(t, caps, 4)

	assert.Equal(t, CaptionTreatmentA, caps[0].Fill)
	assert.Equal(t, CaptionTreatmentB, caps[1].Fill)
	assert.Equal(t, CaptionTreatmentA, caps[2].Fill)
	assert.Equal(t, CaptionTreatmentB, caps[3].Fill)
	assert.Equal(t, "“Your affirmation here”", caps[1].Text)

	grid := GridCell(8)
	assert.Greater(t, caps[0].Rect.Y, grid.Y+grid.H, "captions sit below the grid")
	assert.Greater(t, caps[1].Rect.Y, caps[0].Rect.Y)
}

func TestGridLongCaptionPushesFollowingCaptionsDown(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("abundance ", 19))
	require.Len(t, long, 189)
	scene := Compose(snapshot(board.Grid, board.Classic, 1, long, "short", ""))

	caps := scene.ByRole(RoleCaption)
	require.Len(t, caps, 3)
	assert.GreaterOrEqual(t, len(caps[0].Lines), 2, "a 189-char caption wraps")
	assert.Greater(t, caps[0].Rect.H, float64(gridCaptionH))
	assert.Equal(t, []string{"“short”"}, caps[1].Lines)
	assert.Equal(t, float64(gridCaptionH), caps[1].Rect.H)

	for i := 1; i < len(caps); i++ {
		prev := caps[i-1].Rect
		assert.Equal(t, prev.Y+prev.H+gridCaptionGap, caps[i].Rect.Y, "caption %d follows caption %d", i, i-1)
	}
	last := caps[len(caps)-1].Rect
	footers := scene.ByRole(RoleFooter)
	require.Len(t, footers, 1)
	assert.GreaterOrEqual(t, footers[0].Rect.Y, last.Y+last.H)
}

func TestCaptionLinesFitTheirBox(t *testing.T) {
	long := strings.Repeat("I welcome calm focus and steady progress ", 5)
	for _, tmpl := range []board.TemplateKind{board.Grid, board.Freeform} {
		scene := Compose(snapshot(tmpl, board.Classic, 2, long, "one"))
		for _, n := range scene.ByRole(RoleCaption) {
			face, err := NewFace(n.Font, 1)
			require.NoError(t, err)
			for _, line := range n.Lines {
				assert.LessOrEqual(t, font.MeasureString(face, line).Ceil(), int(n.Rect.W-2*n.Padding), "%s: %q", tmpl, line)
			}
			need := float64(len(n.Lines) * face.Metrics().Height.Ceil())
			assert.LessOrEqual(t, need, n.Rect.H, "%s caption %d", tmpl, n.Index)
			face.Close()
		}
	}
}

func TestTitleRenderedOnce(t *testing.T) {
	for _, tmpl := range []board.TemplateKind{board.Grid, board.Freeform} {
		scene := Compose(snapshot(tmpl, board.Classic, 4))
		titles := scene.ByRole(RoleTitle)
		require.Len(t, titles, 1, tmpl)
		assert.Equal(t, board.DefaultTitle, titles[0].Text)
		assert.Equal(t, AlignCenter, titles[0].Align)
		for _, n := range scene.ByRole(RoleImage) {
			assert.GreaterOrEqual(t, n.Rect.Y, titles[0].Rect.Y+titles[0].Rect.H, "title sits above content")
		}
	}
}

func TestFreeformSevenImagesUsesFallback(t *testing.T) {
	scene := Compose(snapshot(board.Freeform, board.Classic, 7))
	imgs := scene.ByRole(RoleImage)
	require.Len(t, imgs, 7)
	assert.Empty(t, scene.ByRole(RolePlaceholder))

	area := FreeformArea()
	for i := 0; i < 6; i++ {
		assert.Equal(t, i, imgs[i].Preset)
		assert.Equal(t, FreeformPresets[i].Resolve(area), imgs[i].Rect)
		assert.Equal(t, FreeformRotations[i], imgs[i].Rotation)
	}
	assert.Equal(t, FallbackPreset, imgs[6].Preset)
	assert.Equal(t, FreeformFallback.Resolve(area), imgs[6].Rect)
	assert.Zero(t, imgs[6].Rotation)
}

func TestFreeformIgnoresLayoutVariant(t *testing.T) {
	a := Compose(snapshot(board.Freeform, board.Classic, 3))
	b := Compose(snapshot(board.Freeform, board.Collage, 3))
	assert.Equal(t, a, b)
}

func TestFreeformCaptionsStaggerAndAlternate(t *testing.T) {
	scene := Compose(snapshot(board.Freeform, board.Classic, 0, "one", "two", ""))
	caps := scene.ByRole(RoleCaption)
	require.Len(t, caps, 3)

	area := FreeformArea()
	for i, c := range caps {
		wantY := area.Y + float64(20+12*i)/100*area.H
		assert.InDelta(t, wantY, c.Rect.Y, 1e-9)
	}
	assert.Equal(t, AlignRight, caps[0].Align)
	assert.InDelta(t, area.X+area.W*0.95, caps[0].Rect.X+caps[0].Rect.W, 1e-9)
	assert.Equal(t, AlignLeft, caps[1].Align)
	assert.InDelta(t, area.X+area.W*0.05, caps[1].Rect.X, 1e-9)
	assert.Equal(t, AlignRight, caps[2].Align)
	assert.Equal(t, "Your affirmation", caps[2].Text)
}

func TestPlacementResolveAnchors(t *testing.T) {
	area := Rect{X: 0, Y: 0, W: 1000, H: 1000}

	r := Placement{Top: unset, Left: unset, Right: 8, Bottom: 20, Width: 42}.Resolve(area)
	assert.InDelta(t, 1000-80-420, r.X, 1e-9)
	assert.InDelta(t, 1000-200-420, r.Y, 1e-9)
	assert.Equal(t, r.W, r.H)
}

func TestComposeIsDeterministic(t *testing.T) {
	s := snapshot(board.Grid, board.Collage, 5, "x", "y")
	assert.Equal(t, Compose(s), Compose(s))
}
