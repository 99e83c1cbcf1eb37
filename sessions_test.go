package visionkit

import (
	"image"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/visionkit/board"
)

func addTestImages(b *board.Board, n int) {
	files := make([]board.File, n)
	for i := range files {
		files[i] = board.File{
			Name:      "img.png",
			MediaType: "image/png",
			Open:      func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader("x")), nil },
		}
	}
	b.AddImages(files, func(io.Reader) (image.Image, error) {
		return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
	})
}

func TestBoardRegistrySweepsIdleBoards(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var sizes []int
	reg := NewBoardRegistry(2*time.Hour, nil, func(n int) { sizes = append(sizes, n) })
	reg.now = func() time.Time { return now }

	idleID, idle := reg.Create()
	activeID, _ := reg.Create()
	addTestImages(idle.board, 3)
	refs := idle.board.Refs()
	require.Equal(t, 3, refs.Live())

	now = now.Add(90 * time.Minute)
	_, ok := reg.Get(activeID)
	require.True(t, ok)

	now = now.Add(45 * time.Minute)
	assert.Equal(t, 1, reg.Sweep())
	assert.Equal(t, 1, reg.Len())

	_, ok = reg.Get(idleID)
	assert.False(t, ok)
	assert.True(t, idle.closed)
	assert.Zero(t, refs.Live())
	assert.Equal(t, 3, refs.Released())
	assert.Equal(t, []int{1, 2, 1}, sizes)

	// A second sweep finds nothing and never releases twice.
	assert.Zero(t, reg.Sweep())
	assert.Equal(t, 3, refs.Released())
}

func TestBoardRegistryCloseReleasesEverything(t *testing.T) {
	reg := NewBoardRegistry(time.Hour, nil, nil)
	reg.Start(time.Millisecond)

	var tables []*board.RefTable
	for i := 0; i < 3; i++ {
		_, bs := reg.Create()
		addTestImages(bs.board, 2)
		tables = append(tables, bs.board.Refs())
	}
	reg.Close()
	reg.Close()

	assert.Zero(t, reg.Len())
	for _, refs := range tables {
		assert.Zero(t, refs.Live())
		assert.Equal(t, 2, refs.Released())
	}
}

func TestBoardSessionTeardownIsIdempotent(t *testing.T) {
	reg := NewBoardRegistry(time.Hour, nil, nil)
	_, bs := reg.Create()
	addTestImages(bs.board, 1)

	bs.teardown(reg.logger)
	bs.teardown(reg.logger)
	assert.Equal(t, 1, bs.board.Refs().Released())
}
