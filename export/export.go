// Package export rasterizes composed vision boards to PNG files.
//
// An Exporter renders a captured scene at a fixed physical resolution and
// allows only one export at a time; callers capture the scene and its images
// while holding whatever lock protects the board, then export outside it.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"sync/atomic"
	"time"

	"github.com/eringen/visionkit/compose"
)

// Scale is the device pixel ratio of exported files: the 1200×1600 logical
// canvas becomes a 2400×3200 PNG.
const Scale = 2

var (
	// ErrInProgress is returned when an export is requested while another
	// one is still rasterizing.
	ErrInProgress = errors.New("export: already in progress")
	// ErrNothingToExport is returned for scenes without any image.
	ErrNothingToExport = errors.New("export: board has no images")
)

// Result is one exported file.
type Result struct {
	Filename string
	Data     []byte
	Width    int
	Height   int
}

// Exporter turns scenes into downloadable PNG files.
type Exporter struct {
	renderer Renderer
	now      func() time.Time
	busy     atomic.Bool
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithClock overrides the time source used for filenames.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) { e.now = now }
}

// WithScale overrides the output scale.
func WithScale(scale float64) Option {
	return func(e *Exporter) { e.renderer.Scale = scale }
}

// NewExporter returns an idle Exporter rendering at Scale.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{renderer: Renderer{Scale: Scale}, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Busy reports whether an export is currently rasterizing.
func (e *Exporter) Busy() bool {
	return e.busy.Load()
}

// Export rasterizes scene using the captured assets. On any failure no
// Result is produced and the exporter returns to idle.
func (e *Exporter) Export(ctx context.Context, scene compose.Scene, assets map[string]image.Image) (Result, error) {
	if len(scene.AssetIDs()) == 0 {
		return Result{}, ErrNothingToExport
	}
	if !e.busy.CompareAndSwap(false, true) {
		return Result{}, ErrInProgress
	}
	defer e.busy.Store(false)

	var buf bytes.Buffer
	if err := e.renderer.WritePNG(ctx, &buf, scene, assets); err != nil {
		return Result{}, err
	}
	b := e.renderer.Bounds(scene)
	return Result{
		Filename: Filename(e.now()),
		Data:     buf.Bytes(),
		Width:    b.Dx(),
		Height:   b.Dy(),
	}, nil
}

// Filename is the download name for an export finished at t.
func Filename(t time.Time) string {
	return fmt.Sprintf("vision-board-%d.png", t.UnixMilli())
}
