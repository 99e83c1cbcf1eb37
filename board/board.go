// Package board holds the editable state of a vision board: the selected
// template, layout variant, title, uploaded images and caption lines.
//
// A Board is owned by a single builder session and is not safe for
// concurrent use; callers serialize access.
package board

import (
	"errors"
	"fmt"
	"image"

	"github.com/google/uuid"
)

// TemplateKind selects the top-level layout algorithm.
type TemplateKind string

const (
	Grid     TemplateKind = "grid"
	Freeform TemplateKind = "freeform"
)

// LayoutVariant is a cosmetic sub-style applied inside the grid template.
type LayoutVariant string

const (
	Classic LayoutVariant = "classic"
	Modern  LayoutVariant = "modern"
	Collage LayoutVariant = "collage"
)

// DefaultTitle is the title a fresh board starts with.
const DefaultTitle = "My Vision Board 2025"

// DefaultCaptions seed every new board.
var DefaultCaptions = []string{
	"I am capable of achieving my goals",
	"I embrace new opportunities with confidence",
	"My vision is becoming my reality",
}

var (
	ErrUnknownTemplate = errors.New("board: unknown template kind")
	ErrUnknownLayout   = errors.New("board: unknown layout variant")
)

// Valid reports whether k is one of the known template kinds.
func (k TemplateKind) Valid() bool {
	return k == Grid || k == Freeform
}

// Valid reports whether v is one of the known layout variants.
func (v LayoutVariant) Valid() bool {
	return v == Classic || v == Modern || v == Collage
}

// ImageAsset is one uploaded image.
type ImageAsset struct {
	ID        string
	Ref       string
	Name      string
	MediaType string
	Image     image.Image
	Width     int
	Height    int
}

// Caption is one affirmation line. Text may be empty.
type Caption struct {
	ID   string
	Text string
}

// Board is the layout model of one builder session.
type Board struct {
	template TemplateKind
	layout   LayoutVariant
	title    string
	images   []ImageAsset
	captions []Caption

	refs  *RefTable
	newID func() string
}

// Option configures a new Board.
type Option func(*Board)

// WithIDFunc replaces the id generator (uuid by default).
func WithIDFunc(fn func() string) Option {
	return func(b *Board) {
		b.newID = fn
	}
}

// WithRefTable makes the board allocate references from t.
func WithRefTable(t *RefTable) Option {
	return func(b *Board) {
		b.refs = t
	}
}

// WithCaptions replaces the seeded captions. An empty list keeps the defaults.
func WithCaptions(texts ...string) Option {
	return func(b *Board) {
		if len(texts) == 0 {
			return
		}
		b.captions = b.captions[:0]
		for _, t := range texts {
			b.captions = append(b.captions, Caption{ID: b.newID(), Text: t})
		}
	}
}

// New returns a board in its seeded state: grid template, classic layout,
// the default title and three default captions.
func New(opts ...Option) *Board {
	b := &Board{
		template: Grid,
		layout:   Classic,
		title:    DefaultTitle,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.refs == nil {
		b.refs = NewRefTable()
	}
	if len(b.captions) == 0 {
		for _, t := range DefaultCaptions {
			b.captions = append(b.captions, Caption{ID: b.newID(), Text: t})
		}
	}
	return b
}

// Template returns the selected template kind.
func (b *Board) Template() TemplateKind { return b.template }

// Layout returns the selected layout variant. It is kept when the template
// is freeform even though freeform ignores it.
func (b *Board) Layout() LayoutVariant { return b.layout }

// Title returns the board title.
func (b *Board) Title() string { return b.title }

// Refs exposes the reference table backing the board's images.
func (b *Board) Refs() *RefTable { return b.refs }

// SetTemplate selects the template kind.
func (b *Board) SetTemplate(k TemplateKind) error {
	if !k.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, k)
	}
	b.template = k
	return nil
}

// SetLayout selects the grid layout variant.
func (b *Board) SetLayout(v LayoutVariant) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownLayout, v)
	}
	b.layout = v
	return nil
}

// SetTitle replaces the title text.
func (b *Board) SetTitle(title string) {
	b.title = title
}

// Images returns a copy of the image sequence.
func (b *Board) Images() []ImageAsset {
	out := make([]ImageAsset, len(b.images))
	copy(out, b.images)
	return out
}

// Captions returns a copy of the caption sequence.
func (b *Board) Captions() []Caption {
	out := make([]Caption, len(b.captions))
	copy(out, b.captions)
	return out
}

// AddCaption appends an empty caption and returns it.
func (b *Board) AddCaption() Caption {
	c := Caption{ID: b.newID()}
	b.captions = append(b.captions, c)
	return c
}

// UpdateCaption replaces the text of caption id. It reports false when no
// caption has that id.
func (b *Board) UpdateCaption(id, text string) bool {
	for i := range b.captions {
		if b.captions[i].ID == id {
			b.captions[i].Text = text
			return true
		}
	}
	return false
}

// CanRemoveCaption reports whether a caption may be removed right now.
func (b *Board) CanRemoveCaption() bool {
	return len(b.captions) > 1
}

// RemoveCaption deletes caption id. Removing the last remaining caption is
// rejected without changing state; false is returned in that case and when
// the id is absent.
func (b *Board) RemoveCaption(id string) bool {
	if !b.CanRemoveCaption() {
		return false
	}
	for i := range b.captions {
		if b.captions[i].ID == id {
			b.captions = append(b.captions[:i], b.captions[i+1:]...)
			return true
		}
	}
	return false
}

// CanExport reports whether the board has anything to export.
func (b *Board) CanExport() bool {
	return len(b.images) > 0
}

// Close releases every outstanding image reference. The board is empty of
// images afterwards; calling Close twice is harmless.
func (b *Board) Close() error {
	var errs []error
	for _, img := range b.images {
		if err := b.refs.Release(img.Ref); err != nil {
			errs = append(errs, err)
		}
	}
	b.images = nil
	return errors.Join(errs...)
}

// Snapshot is an immutable copy of a board, safe to hand to the compositor
// and exporter while the board keeps changing.
type Snapshot struct {
	Template TemplateKind
	Layout   LayoutVariant
	Title    string
	Images   []ImageAsset
	Captions []Caption
}

// Snapshot captures the current state.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Template: b.template,
		Layout:   b.layout,
		Title:    b.title,
		Images:   b.Images(),
		Captions: b.Captions(),
	}
}

// Assets maps asset id to decoded image for every image in the snapshot.
func (s Snapshot) Assets() map[string]image.Image {
	m := make(map[string]image.Image, len(s.Images))
	for _, img := range s.Images {
		m[img.ID] = img.Image
	}
	return m
}
