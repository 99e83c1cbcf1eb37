package visionkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"image/png"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/visionkit/board"
	"github.com/eringen/visionkit/compose"
)

func scene(t *testing.T, c *client) compose.Scene {
	t.Helper()
	rec := c.get("/builder/scene.json")
	require.Equal(t, http.StatusOK, rec.Code)
	var s compose.Scene
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	return s
}

func TestBuilderSeededBoardExportsPNG(t *testing.T) {
	app, p := newTestApp(t)
	c := newClient(t, app)

	page := p.lastBuilder()
	assert.Equal(t, board.Grid, page.Template)
	assert.Equal(t, board.Classic, page.Layout)
	assert.Equal(t, board.DefaultTitle, page.Title)
	assert.Len(t, page.Captions, 3)
	assert.False(t, page.CanExport)

	rec := c.post("/builder/export/", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/builder/?msg="+url.QueryEscape(msgNeedImage), rec.Header().Get("Location"))

	rec = c.upload(pngUpload(t, "a.png", color.RGBA{255, 0, 0, 255}), pngUpload(t, "b.png", color.RGBA{0, 0, 255, 255}))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	s := scene(t, c)
	assert.Len(t, s.ByRole(compose.RoleImage), 2)
	assert.Len(t, s.ByRole(compose.RolePlaceholder), 7)

	c.get("/builder/")
	assert.True(t, p.lastBuilder().CanExport)

	rec = c.post("/builder/export/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="vision-board-1767225600123.png"`, rec.Header().Get("Content-Disposition"))
	cfg, err := png.DecodeConfig(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 2400, cfg.Width)
	assert.Equal(t, 3200, cfg.Height)
}

func TestBuilderFreeformSevenImages(t *testing.T) {
	app, _ := newTestApp(t)
	c := newClient(t, app)

	var files []upload
	for i := 0; i < 7; i++ {
		files = append(files, pngUpload(t, fmt.Sprintf("img-%d.png", i), color.RGBA{uint8(30 * i), 100, 100, 255}))
	}
	require.Equal(t, http.StatusSeeOther, c.upload(files...).Code)
	require.Equal(t, http.StatusSeeOther, c.post("/builder/template/", url.Values{"template": {"freeform"}}).Code)

	imgs := scene(t, c).ByRole(compose.RoleImage)
	require.Len(t, imgs, 7)
	for i := 0; i < 6; i++ {
		assert.Equal(t, i, imgs[i].Preset)
		assert.Equal(t, compose.FreeformRotations[i], imgs[i].Rotation)
	}
	assert.Equal(t, compose.FallbackPreset, imgs[6].Preset)
	assert.Zero(t, imgs[6].Rotation)
}

func TestBuilderCaptionsNeverEmpty(t *testing.T) {
	app, p := newTestApp(t)
	c := newClient(t, app)

	for _, capt := range p.lastBuilder().Captions[:2] {
		require.Equal(t, http.StatusSeeOther, c.post("/builder/captions/"+capt.ID+"/remove/", nil).Code)
	}
	c.get("/builder/")
	page := p.lastBuilder()
	require.Len(t, page.Captions, 1)
	assert.False(t, page.CanRemoveCaption)

	last := page.Captions[0]
	require.Equal(t, http.StatusSeeOther, c.post("/builder/captions/"+last.ID+"/remove/", nil).Code)
	c.get("/builder/")
	assert.Equal(t, []board.Caption{last}, p.lastBuilder().Captions)
}

func TestBuilderCaptionEditing(t *testing.T) {
	app, p := newTestApp(t)
	c := newClient(t, app)

	require.Equal(t, http.StatusSeeOther, c.post("/builder/captions/", nil).Code)
	c.get("/builder/")
	caps := p.lastBuilder().Captions
	require.Len(t, caps, 4)
	assert.Empty(t, caps[3].Text)

	require.Equal(t, http.StatusSeeOther, c.post("/builder/captions/"+caps[3].ID+"/", url.Values{"text": {"I travel the world"}}).Code)
	c.get("/builder/")
	assert.Equal(t, "I travel the world", p.lastBuilder().Captions[3].Text)

	rec := c.post("/builder/captions/"+caps[3].ID+"/", url.Values{"text": {strings.Repeat("x", 201)}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBuilderValidatesForms(t *testing.T) {
	app, p := newTestApp(t)
	c := newClient(t, app)

	assert.Equal(t, http.StatusBadRequest, c.post("/builder/template/", url.Values{"template": {"spiral"}}).Code)
	assert.Equal(t, http.StatusBadRequest, c.post("/builder/layout/", url.Values{"layout": {""}}).Code)
	assert.Equal(t, http.StatusBadRequest, c.post("/builder/title/", url.Values{"title": {strings.Repeat("t", 121)}}).Code)

	require.Equal(t, http.StatusSeeOther, c.post("/builder/layout/", url.Values{"layout": {"collage"}}).Code)
	require.Equal(t, http.StatusSeeOther, c.post("/builder/title/", url.Values{"title": {"Twenty Twenty Six"}}).Code)
	c.get("/builder/")
	page := p.lastBuilder()
	assert.Equal(t, board.Collage, page.Layout)
	assert.Equal(t, "Twenty Twenty Six", page.Title)
	assert.Equal(t, board.Grid, page.Template)
}

func TestBuilderSkipsNonImageUploads(t *testing.T) {
	app, p := newTestApp(t)
	c := newClient(t, app)

	rec := c.upload(
		upload{name: "notes.txt", mediaType: "text/plain", data: []byte("hello")},
		upload{name: "broken.png", mediaType: "image/png", data: []byte("not a png")},
		pngUpload(t, "ok.png", color.White),
	)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	c.get("/builder/")
	images := p.lastBuilder().Images
	require.Len(t, images, 1)
	assert.Equal(t, "ok.png", images[0].Name)
}

func TestBuilderAssetRefReleasedOnRemove(t *testing.T) {
	app, p := newTestApp(t)
	c := newClient(t, app)

	require.Equal(t, http.StatusSeeOther, c.upload(pngUpload(t, "a.png", color.Black)).Code)
	c.get("/builder/")
	img := p.lastBuilder().Images[0]

	rec := c.get("/builder/assets/" + img.Ref)
	require.Equal(t, http.StatusOK, rec.Code)
	cfg, err := png.DecodeConfig(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)

	require.Equal(t, http.StatusSeeOther, c.post("/builder/images/"+img.ID+"/remove/", nil).Code)
	assert.Equal(t, http.StatusNotFound, c.get("/builder/assets/"+img.Ref).Code)

	// Removing again is a no-op.
	assert.Equal(t, http.StatusSeeOther, c.post("/builder/images/"+img.ID+"/remove/", nil).Code)
	c.get("/builder/")
	assert.Empty(t, p.lastBuilder().Images)
}

func TestBuilderLargeUploadIsDownsized(t *testing.T) {
	app, p := newTestApp(t)
	app.Config.MaxImageEdge = 64
	c := newClient(t, app)

	require.Equal(t, http.StatusSeeOther, c.upload(upload{
		name: "big.png", mediaType: "image/png", data: pngBytes(t, 256, 128, color.White),
	}).Code)
	c.get("/builder/")
	rec := c.get("/builder/assets/" + p.lastBuilder().Images[0].Ref)
	require.Equal(t, http.StatusOK, rec.Code)
	cfg, err := png.DecodeConfig(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 32, cfg.Height)
}

func TestBuilderPreviewIsHalfScale(t *testing.T) {
	app, _ := newTestApp(t)
	c := newClient(t, app)

	rec := c.get("/builder/preview.png")
	require.Equal(t, http.StatusOK, rec.Code)
	cfg, err := png.DecodeConfig(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 600, cfg.Width)
	assert.Equal(t, 800, cfg.Height)
}

func TestBuilderBoardsArePerSession(t *testing.T) {
	app, p := newTestApp(t)
	alice := newClient(t, app)
	bob := newClient(t, app)

	require.Equal(t, http.StatusSeeOther, alice.upload(pngUpload(t, "a.png", color.White)).Code)

	bob.get("/builder/")
	assert.Empty(t, p.lastBuilder().Images)
	alice.get("/builder/")
	assert.Len(t, p.lastBuilder().Images, 1)
	assert.Equal(t, 2, app.Boards.Len())
}

func TestBuilderRequiresCSRFToken(t *testing.T) {
	app, _ := newTestApp(t)
	c := newClient(t, app)
	delete(c.cookies, "_csrf")

	rec := c.post("/builder/captions/", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBuilderExportRateLimited(t *testing.T) {
	app, _ := newTestApp(t)
	app.exportLimiter.Stop()
	app.exportLimiter = NewLimiter(1, time.Minute)
	c := newClient(t, app)

	assert.Equal(t, http.StatusSeeOther, c.post("/builder/export/", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, c.post("/builder/export/", nil).Code)
}
