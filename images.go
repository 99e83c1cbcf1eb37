package visionkit

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/eringen/visionkit/board"
)

const uploadField = "images"

// decodeUpload decodes a JPEG, PNG, GIF or WebP payload and downsizes it
// so its long edge fits MaxImageEdge.
func (a *App) decodeUpload(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(io.LimitReader(r, a.Config.MaxUploadBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return downsize(img, a.Config.MaxImageEdge), nil
}

// downsize scales img so that neither side exceeds maxEdge, keeping the
// aspect ratio. Smaller images are returned untouched.
func downsize(img image.Image, maxEdge int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	long := max(w, h)
	if maxEdge <= 0 || long <= maxEdge {
		return img
	}
	nw := max(1, w*maxEdge/long)
	nh := max(1, h*maxEdge/long)
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// uploadFiles converts multipart headers into board files. Files over the
// size limit are dropped here, the rest are filtered by the board.
func (a *App) uploadFiles(headers []*multipart.FileHeader) []board.File {
	files := make([]board.File, 0, len(headers))
	for _, fh := range headers {
		if fh.Size > a.Config.MaxUploadBytes {
			a.Logger.Debug("skip oversized upload", zap.String("name", fh.Filename), zap.Int64("size", fh.Size))
			continue
		}
		files = append(files, board.File{
			Name:      fh.Filename,
			MediaType: fh.Header.Get(echo.HeaderContentType),
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	return files
}

func (a *App) handleBuilderUpload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No images provided")
	}
	headers := form.File[uploadField]
	files := a.uploadFiles(headers)

	var added int
	err = a.withBoard(c, func(bs *boardSession) error {
		added = bs.board.AddImages(files, a.decodeUpload)
		if added > 0 {
			bs.revision++
		}
		return nil
	})
	if err != nil {
		return err
	}
	skipped := len(headers) - added
	a.Metrics.ImagesAdded.Add(float64(added))
	a.Metrics.ImagesSkipped.Add(float64(skipped))
	if skipped > 0 {
		a.Logger.Debug("skipped uploads", zap.Int("added", added), zap.Int("skipped", skipped))
	}
	return redirectBuilder(c, "")
}

func (a *App) handleBuilderRemoveImage(c echo.Context) error {
	id := c.Param("id")
	if err := a.withBoard(c, func(bs *boardSession) error {
		removed, err := bs.board.RemoveImage(id)
		if removed {
			bs.revision++
		}
		if err != nil {
			a.Logger.Warn("release removed image", zap.String("id", id), zap.Error(err))
		}
		return nil
	}); err != nil {
		return err
	}
	return redirectBuilder(c, "")
}

// handleBuilderAsset serves a live display reference as PNG. Released
// references are gone.
func (a *App) handleBuilderAsset(c echo.Context) error {
	ref := c.Param("ref")
	var img image.Image
	if err := a.withBoard(c, func(bs *boardSession) error {
		if asset, ok := bs.board.Refs().Lookup(ref); ok {
			img = asset.Image
		}
		return nil
	}); err != nil {
		return err
	}
	if img == nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	return RenderPNG(c, img)
}
