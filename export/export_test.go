package export

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/visionkit/board"
	"github.com/eringen/visionkit/compose"
)

func solid(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func sceneWith(tmpl board.TemplateKind, imgs ...image.Image) (compose.Scene, map[string]image.Image) {
	snap := board.Snapshot{Template: tmpl, Layout: board.Collage, Title: board.DefaultTitle}
	for i, img := range imgs {
		snap.Images = append(snap.Images, board.ImageAsset{ID: string(rune('a' + i)), Image: img})
	}
	for _, text := range board.DefaultCaptions {
		snap.Captions = append(snap.Captions, board.Caption{Text: text})
	}
	return compose.Compose(snap), snap.Assets()
}

func TestExportFullResolution(t *testing.T) {
	clock := time.UnixMilli(1767225600123)
	e := NewExporter(WithClock(func() time.Time { return clock }))
	scene, assets := sceneWith(board.Grid, solid(40, 30, color.RGBA{200, 10, 10, 255}), solid(10, 50, color.RGBA{10, 10, 200, 255}))

	res, err := e.Export(context.Background(), scene, assets)
	require.NoError(t, err)
	assert.Equal(t, "vision-board-1767225600123.png", res.Filename)
	assert.Equal(t, 2400, res.Width)
	assert.Equal(t, 3200, res.Height)

	cfg, err := png.DecodeConfig(bytes.NewReader(res.Data))
	require.NoError(t, err)
	assert.Equal(t, 2400, cfg.Width)
	assert.Equal(t, 3200, cfg.Height)
	assert.False(t, e.Busy())
}

func TestFilenamePattern(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^vision-board-\d+\.png$`), Filename(time.Now()))
}

func TestExportRejectsEmptyScene(t *testing.T) {
	scene, assets := sceneWith(board.Grid)
	_, err := NewExporter().Export(context.Background(), scene, assets)
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestExportMissingAssetLeavesExporterIdle(t *testing.T) {
	e := NewExporter(WithScale(0.1))
	scene, _ := sceneWith(board.Freeform, solid(4, 4, color.RGBA{A: 255}))

	res, err := e.Export(context.Background(), scene, map[string]image.Image{})
	require.ErrorIs(t, err, ErrMissingAsset)
	assert.Empty(t, res.Data)
	assert.Empty(t, res.Filename)
	assert.False(t, e.Busy())

	scene, assets := sceneWith(board.Freeform, solid(4, 4, color.RGBA{A: 255}))
	_, err = e.Export(context.Background(), scene, assets)
	assert.NoError(t, err, "exporter must be usable after a failure")
}

func TestExportCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	scene, assets := sceneWith(board.Grid, solid(4, 4, color.RGBA{A: 255}))

	e := NewExporter(WithScale(0.1))
	_, err := e.Export(ctx, scene, assets)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, e.Busy())
}

// gateImage blocks the first Bounds call until released, holding an export
// in flight.
type gateImage struct {
	image.Image
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (g *gateImage) Bounds() image.Rectangle {
	g.once.Do(func() {
		close(g.entered)
		<-g.release
	})
	return g.Image.Bounds()
}

func TestSecondExportWhileInFlightIsRejected(t *testing.T) {
	gate := &gateImage{
		Image:   solid(8, 8, color.RGBA{0, 128, 0, 255}),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	e := NewExporter(WithScale(0.1))
	scene, assets := sceneWith(board.Grid, gate)

	type outcome struct {
		res Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := e.Export(context.Background(), scene, assets)
		done <- outcome{res, err}
	}()

	<-gate.entered
	assert.True(t, e.Busy())
	res, err := e.Export(context.Background(), scene, assets)
	assert.ErrorIs(t, err, ErrInProgress)
	assert.Empty(t, res.Data)

	close(gate.release)
	first := <-done
	require.NoError(t, first.err)
	assert.NotEmpty(t, first.res.Data)
	assert.False(t, e.Busy())
}

func TestRenderIsDeterministic(t *testing.T) {
	scene, assets := sceneWith(board.Freeform,
		solid(30, 20, color.RGBA{255, 0, 0, 255}),
		solid(20, 30, color.RGBA{0, 0, 255, 255}),
	)
	r := Renderer{Scale: 0.25}

	var a, b bytes.Buffer
	require.NoError(t, r.WritePNG(context.Background(), &a, scene, assets))
	require.NoError(t, r.WritePNG(context.Background(), &b, scene, assets))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestPreviewScale(t *testing.T) {
	scene, assets := sceneWith(board.Grid, solid(4, 4, color.RGBA{A: 255}))
	img, err := Renderer{Scale: 0.5}.Render(context.Background(), scene, assets)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 600, 800), img.Bounds())
}

func TestImagesAreDrawnInTheirCells(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	scene, assets := sceneWith(board.Grid, solid(16, 16, red))
	scene.Nodes[1].Rotation = 0

	img, err := Renderer{Scale: 1}.Render(context.Background(), scene, assets)
	require.NoError(t, err)

	cx, cy := compose.GridCell(0).Center()
	got := img.RGBAAt(int(cx), int(cy))
	assert.InDelta(t, 255, int(got.R), 2)
	assert.InDelta(t, 0, int(got.B), 2)
}

func TestCoverCropKeepsAspect(t *testing.T) {
	got := coverCrop(image.Rect(0, 0, 400, 100), 100, 100)
	assert.Equal(t, image.Rect(150, 0, 250, 100), got)

	got = coverCrop(image.Rect(0, 0, 100, 300), 100, 100)
	assert.Equal(t, image.Rect(0, 100, 100, 200), got)
}

func TestGradientEndpoints(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 100))
	top := color.RGBA{254, 243, 199, 255}
	bottom := color.RGBA{253, 230, 138, 255}
	fillGradient(dst, compose.Gradient{Angle: 180, Stops: []compose.Stop{{Offset: 0, Color: top}, {Offset: 1, Color: bottom}}})

	assert.InDelta(t, int(top.G), int(dst.RGBAAt(5, 0).G), 1)
	assert.InDelta(t, int(bottom.G), int(dst.RGBAAt(5, 99).G), 1)
}

func TestWrappedCaptionsFitAtExportScale(t *testing.T) {
	snap := board.Snapshot{Template: board.Grid, Layout: board.Classic, Title: board.DefaultTitle}
	snap.Images = []board.ImageAsset{{ID: "a", Image: solid(8, 8, color.RGBA{A: 255})}}
	long := strings.TrimSpace(strings.Repeat("abundance ", 19))
	snap.Captions = []board.Caption{{ID: "1", Text: long}, {ID: "2", Text: "next"}}
	scene := compose.Compose(snap)

	for _, n := range scene.ByRole(compose.RoleCaption) {
		face, err := compose.NewFace(n.Font, Scale)
		require.NoError(t, err)
		need := len(n.Lines) * face.Metrics().Height.Ceil()
		face.Close()
		assert.LessOrEqual(t, need, px(n.Rect.H*Scale), "caption %d", n.Index)
	}

	_, err := NewExporter().Export(context.Background(), scene, snap.Assets())
	require.NoError(t, err)
}
