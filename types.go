package visionkit

import (
	"time"

	"github.com/eringen/visionkit/board"
	"github.com/eringen/visionkit/content"
)

// Subscription is one resource pack signup.
type Subscription struct {
	Email     string
	CreatedAt time.Time
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// HomePage is everything the landing page shows.
type HomePage struct {
	Meta      PageMeta
	Checklist []content.ChecklistItem
	Templates []content.Template
	Ideas     []content.Idea
	Themed    []ThemeCard
	Keywords  []content.KeywordCollection
	FAQs      []content.FAQ
	CSRF      string
}

// ThemeCard is one entry of the home page's per-theme section.
type ThemeCard struct {
	Theme    content.ThemeInfo
	Template *content.Template // first template of the theme, nil if there is none
}

// SignupResult is shown after a resource pack signup.
type SignupResult struct {
	Meta      PageMeta
	Email     string
	Resources []content.Resource
}

// TemplatesPage is the filtered template gallery.
type TemplatesPage struct {
	Meta      PageMeta
	Filter    content.TemplateFilter
	Templates []content.Template
	Total     int
}

// IdeasPage is the synced ideas gallery for one category.
type IdeasPage struct {
	Meta       PageMeta
	Category   string // "" means all
	Categories []string
	Ideas      []content.GalleryIdea
}

// BuilderImage is an uploaded image as listed in the builder controls.
type BuilderImage struct {
	ID   string
	Ref  string
	Name string
}

// BuilderPage is the builder's controls and preview state.
type BuilderPage struct {
	Meta             PageMeta
	Template         board.TemplateKind
	Layout           board.LayoutVariant
	Title            string
	Images           []BuilderImage
	Captions         []board.Caption
	CanRemoveCaption bool
	CanExport        bool
	Revision         uint64 // cache-busts the preview image
	Message          string
	CSRF             string
}

// AdminDashboard lists synced ideas and signups.
type AdminDashboard struct {
	Ideas         []content.GalleryIdea
	Subscriptions []Subscription
	ActiveBoards  int
	Message       string
	CSRF          string
}
