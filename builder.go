package visionkit

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/visionkit/board"
	"github.com/eringen/visionkit/compose"
	"github.com/eringen/visionkit/export"
)

const (
	msgNeedImage    = "Add at least one image to export"
	msgExportFailed = "Export failed. Please try again."
	msgExportBusy   = "An export is already in progress. Please wait for it to finish."
)

// previewScale renders the 1200x1600 canvas at 600x800.
const previewScale = 0.5

func redirectBuilder(c echo.Context, msg string) error {
	target := "/builder/"
	if msg != "" {
		target += "?msg=" + url.QueryEscape(msg)
	}
	return c.Redirect(http.StatusSeeOther, target)
}

func (a *App) handleBuilder(c echo.Context) error {
	var page BuilderPage
	if err := a.withBoard(c, func(bs *boardSession) error {
		page = builderPage(bs)
		return nil
	}); err != nil {
		return err
	}
	page.Meta = PageMeta{
		Title:       "Vision Board Builder | " + a.Config.Name,
		Description: "Upload images, add affirmations and download your vision board as a PNG.",
		URL:         BuildURL(a.Config.URL, "builder"),
		OGType:      "website",
	}
	page.Message = c.QueryParam("msg")
	page.CSRF = CsrfToken(c)
	return Render(c, a.Views.Builder(page))
}

func builderPage(bs *boardSession) BuilderPage {
	b := bs.board
	images := b.Images()
	list := make([]BuilderImage, len(images))
	for i, img := range images {
		list[i] = BuilderImage{ID: img.ID, Ref: img.Ref, Name: img.Name}
	}
	return BuilderPage{
		Template:         b.Template(),
		Layout:           b.Layout(),
		Title:            b.Title(),
		Images:           list,
		Captions:         b.Captions(),
		CanRemoveCaption: b.CanRemoveCaption(),
		CanExport:        b.CanExport(),
		Revision:         bs.revision,
	}
}

// mutate applies fn to the visitor's board and redirects back to the
// builder. The preview revision moves only on success.
func (a *App) mutate(c echo.Context, fn func(b *board.Board) error) error {
	if err := a.withBoard(c, func(bs *boardSession) error {
		if err := fn(bs.board); err != nil {
			return err
		}
		bs.revision++
		return nil
	}); err != nil {
		return err
	}
	return redirectBuilder(c, "")
}

func (a *App) handleBuilderTemplate(c echo.Context) error {
	var f templateForm
	if err := bindForm(c, &f); err != nil {
		return err
	}
	return a.mutate(c, func(b *board.Board) error {
		return badRequest(b.SetTemplate(board.TemplateKind(f.Template)))
	})
}

func (a *App) handleBuilderLayout(c echo.Context) error {
	var f layoutForm
	if err := bindForm(c, &f); err != nil {
		return err
	}
	return a.mutate(c, func(b *board.Board) error {
		return badRequest(b.SetLayout(board.LayoutVariant(f.Layout)))
	})
}

func (a *App) handleBuilderTitle(c echo.Context) error {
	var f titleForm
	if err := bindForm(c, &f); err != nil {
		return err
	}
	return a.mutate(c, func(b *board.Board) error {
		b.SetTitle(f.Title)
		return nil
	})
}

func (a *App) handleBuilderAddCaption(c echo.Context) error {
	return a.mutate(c, func(b *board.Board) error {
		b.AddCaption()
		return nil
	})
}

func (a *App) handleBuilderUpdateCaption(c echo.Context) error {
	var f captionForm
	if err := bindForm(c, &f); err != nil {
		return err
	}
	id := c.Param("id")
	return a.mutate(c, func(b *board.Board) error {
		b.UpdateCaption(id, f.Text)
		return nil
	})
}

// handleBuilderRemoveCaption is a no-op when the caption is the last one.
func (a *App) handleBuilderRemoveCaption(c echo.Context) error {
	id := c.Param("id")
	return a.mutate(c, func(b *board.Board) error {
		b.RemoveCaption(id)
		return nil
	})
}

// capture takes the composed scene and the decoded images under the board
// lock. Later edits to the board do not reach the captured values.
func (a *App) capture(c echo.Context) (compose.Scene, board.Snapshot, *export.Exporter, error) {
	var snap board.Snapshot
	var exp *export.Exporter
	err := a.withBoard(c, func(bs *boardSession) error {
		snap = bs.board.Snapshot()
		exp = bs.exporter
		return nil
	})
	if err != nil {
		return compose.Scene{}, board.Snapshot{}, nil, err
	}
	return compose.Compose(snap), snap, exp, nil
}

func (a *App) handleBuilderScene(c echo.Context) error {
	scene, _, _, err := a.capture(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, scene)
}

func (a *App) handleBuilderPreview(c echo.Context) error {
	scene, snap, _, err := a.capture(c)
	if err != nil {
		return err
	}
	img, err := export.Renderer{Scale: previewScale}.Render(c.Request().Context(), scene, snap.Assets())
	if err != nil {
		return fmt.Errorf("visionkit: render preview: %w", err)
	}
	return RenderPNG(c, img)
}

func (a *App) handleBuilderExport(c echo.Context) error {
	if !a.exportLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many exports. Try again in a minute.")
	}
	scene, snap, exp, err := a.capture(c)
	if err != nil {
		return err
	}
	if len(snap.Images) == 0 {
		a.Metrics.Exports.WithLabelValues("empty").Inc()
		return redirectBuilder(c, msgNeedImage)
	}

	start := time.Now()
	res, err := exp.Export(c.Request().Context(), scene, snap.Assets())
	switch {
	case errors.Is(err, export.ErrInProgress):
		a.Metrics.Exports.WithLabelValues("busy").Inc()
		return c.String(http.StatusConflict, msgExportBusy)
	case errors.Is(err, export.ErrNothingToExport):
		a.Metrics.Exports.WithLabelValues("empty").Inc()
		return redirectBuilder(c, msgNeedImage)
	case err != nil:
		a.Metrics.Exports.WithLabelValues("failed").Inc()
		a.Logger.Error("export failed", zap.Error(err), zap.Int("images", len(snap.Images)))
		return redirectBuilder(c, msgExportFailed)
	}
	a.Metrics.Exports.WithLabelValues("ok").Inc()
	a.Metrics.ExportDuration.Observe(time.Since(start).Seconds())
	a.Logger.Info("board exported",
		zap.String("filename", res.Filename),
		zap.Int("images", len(snap.Images)),
		zap.Int("bytes", len(res.Data)),
	)

	return Attachment(c, res.Filename, "image/png", res.Data)
}

func badRequest(err error) error {
	if err == nil {
		return nil
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}
