package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	"io"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/webp"
	"gopkg.in/yaml.v3"

	"github.com/eringen/visionkit/board"
	"github.com/eringen/visionkit/compose"
	"github.com/eringen/visionkit/export"
)

// boardFile describes a board for offline rendering. Image paths are
// relative to the file.
type boardFile struct {
	Title    string   `yaml:"title"`
	Template string   `yaml:"template"`
	Layout   string   `yaml:"layout"`
	Images   []string `yaml:"images"`
	Captions []string `yaml:"captions"`
}

var (
	renderOutput string
	renderScale  float64
)

var renderCmd = &cobra.Command{
	Use:   "render <board.yaml>",
	Short: "Render a board description to PNG",
	Long: `render builds a board from a YAML description and exports it the way
the builder does.

  title: My 2025 vision
  template: grid        # grid or freeform
  layout: modern        # classic, modern or collage
  images: [beach.jpg, desk.png]
  captions: ["I am healthy", "I travel often"]`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := renderBoard(cmd.Context(), args[0], renderScale, time.Now)
		if err != nil {
			return err
		}
		out := renderOutput
		if out == "" {
			out = res.Filename
		}
		if err := atomic.WriteFile(out, bytes.NewReader(res.Data)); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%dx%d)\n", out, res.Width, res.Height)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default vision-board-<ms>.png)")
	renderCmd.Flags().Float64Var(&renderScale, "scale", export.Scale, "pixels per canvas unit")
}

func readBoardFile(path string) (boardFile, error) {
	var bf boardFile
	data, err := os.ReadFile(path)
	if err != nil {
		return bf, err
	}
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return bf, fmt.Errorf("parse %s: %w", path, err)
	}
	return bf, nil
}

// renderBoard loads the board described at path and exports it.
func renderBoard(ctx context.Context, path string, scale float64, now func() time.Time) (export.Result, error) {
	bf, err := readBoardFile(path)
	if err != nil {
		return export.Result{}, err
	}

	b := board.New(board.WithCaptions(bf.Captions...))
	defer b.Close()
	if bf.Template != "" {
		if err := b.SetTemplate(board.TemplateKind(bf.Template)); err != nil {
			return export.Result{}, err
		}
	}
	if bf.Layout != "" {
		if err := b.SetLayout(board.LayoutVariant(bf.Layout)); err != nil {
			return export.Result{}, err
		}
	}
	if bf.Title != "" {
		b.SetTitle(bf.Title)
	}

	dir := filepath.Dir(path)
	files := make([]board.File, 0, len(bf.Images))
	for _, name := range bf.Images {
		full := name
		if !filepath.IsAbs(full) {
			full = filepath.Join(dir, name)
		}
		files = append(files, board.File{
			Name:      filepath.Base(full),
			MediaType: mime.TypeByExtension(filepath.Ext(full)),
			Open:      func() (io.ReadCloser, error) { return os.Open(full) },
		})
	}
	if added := b.AddImages(files, nil); added < len(files) {
		return export.Result{}, fmt.Errorf("%d of %d images could not be read", len(files)-added, len(files))
	}

	snap := b.Snapshot()
	exp := export.NewExporter(export.WithScale(scale), export.WithClock(now))
	res, err := exp.Export(ctx, compose.Compose(snap), snap.Assets())
	if errors.Is(err, export.ErrNothingToExport) {
		return res, errors.New("the board needs at least one image")
	}
	return res, err
}
