// Package content holds the site's immutable marketing data: template and
// idea catalogs, theme metadata, the checklist, FAQs and resource pack.
package content

import (
	"slices"
	"time"
)

type Theme string

const (
	ThemeCareer       Theme = "career"
	ThemeMoney        Theme = "money"
	ThemeHealth       Theme = "health"
	ThemeRelationship Theme = "relationship"
	ThemeStudy        Theme = "study"
	ThemeTravel       Theme = "travel"
)

type Style string

const (
	StyleMinimalist Style = "minimalist"
	StyleAesthetic  Style = "aesthetic"
	StyleBold       Style = "bold"
	StylePastel     Style = "pastel"
	StyleDark       Style = "dark"
)

type Format string

const (
	FormatPrintable Format = "printable"
	FormatDigital   Format = "digital"
	FormatNotion    Format = "notion"
)

type ThemeInfo struct {
	Key   Theme
	Name  string
	Color string
	Icon  string
}

type StyleInfo struct {
	Key         Style
	Name        string
	Description string
}

type FormatInfo struct {
	Key  Format
	Name string
	Icon string
}

// Download is one file variant of a template.
type Download struct {
	Type string // svg, png or pdf
	URL  string
}

type Template struct {
	ID           string
	Title        string
	Theme        Theme
	Style        Style
	Format       Format
	PreviewImage string
	Downloads    []Download
	Tags         []string
	Featured     bool
}

type Idea struct {
	ID           string
	Title        string
	Theme        Theme
	Style        Style
	PreviewImage string
	Tags         []string
	Description  string
	Featured     bool
}

type ChecklistItem struct {
	ID   string
	Text string
	Time string
}

type FAQ struct {
	Question string
	Answer   string
}

type Resource struct {
	ID          string
	Title       string
	Description string
	Type        string
	File        string
}

type KeywordCollection struct {
	Theme     Theme
	Keywords  []string
	AIPrompts []string
}

// GalleryIdea is an image synced into the public ideas gallery.
type GalleryIdea struct {
	ID       int64
	Title    string
	Category string
	Tags     []string
	Src      string
	SyncedAt time.Time
}

// ThemeByKey returns the metadata for t.
func ThemeByKey(t Theme) (ThemeInfo, bool) {
	for _, info := range Themes {
		if info.Key == t {
			return info, true
		}
	}
	return ThemeInfo{}, false
}

func validTheme(s string) bool {
	return slices.ContainsFunc(Themes, func(t ThemeInfo) bool { return string(t.Key) == s })
}

func validStyle(s string) bool {
	return slices.ContainsFunc(Styles, func(t StyleInfo) bool { return string(t.Key) == s })
}

func validFormat(s string) bool {
	return slices.ContainsFunc(Formats, func(t FormatInfo) bool { return string(t.Key) == s })
}

// TemplateFilter narrows the template gallery. Empty fields match anything.
type TemplateFilter struct {
	Theme  Theme
	Style  Style
	Format Format
}

// ParseTemplateFilter builds a filter from raw query values. Values outside
// the fixed enumerations are dropped, degrading to an unfiltered view.
func ParseTemplateFilter(theme, style, format string) TemplateFilter {
	var f TemplateFilter
	if validTheme(theme) {
		f.Theme = Theme(theme)
	}
	if validStyle(style) {
		f.Style = Style(style)
	}
	if validFormat(format) {
		f.Format = Format(format)
	}
	return f
}

// Active reports whether any field narrows the result.
func (f TemplateFilter) Active() bool {
	return f.Theme != "" || f.Style != "" || f.Format != ""
}

func (f TemplateFilter) Match(t Template) bool {
	if f.Theme != "" && t.Theme != f.Theme {
		return false
	}
	if f.Style != "" && t.Style != f.Style {
		return false
	}
	if f.Format != "" && t.Format != f.Format {
		return false
	}
	return true
}

// FilterTemplates returns the catalog entries matching f in catalog order.
func FilterTemplates(f TemplateFilter) []Template {
	var out []Template
	for _, t := range Templates {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func FeaturedTemplates() []Template {
	var out []Template
	for _, t := range Templates {
		if t.Featured {
			out = append(out, t)
		}
	}
	return out
}

func FeaturedIdeas() []Idea {
	var out []Idea
	for _, i := range Ideas {
		if i.Featured {
			out = append(out, i)
		}
	}
	return out
}

// TemplatesByTheme returns up to n templates of theme t.
func TemplatesByTheme(t Theme, n int) []Template {
	var out []Template
	for _, tpl := range Templates {
		if tpl.Theme == t && len(out) < n {
			out = append(out, tpl)
		}
	}
	return out
}

// ParseCategory returns c when it names a gallery category other than All,
// and "" otherwise.
func ParseCategory(c string) string {
	if c == CategoryAll || !slices.Contains(Categories, c) {
		return ""
	}
	return c
}

// FilterGallery keeps the ideas in category; "" keeps everything.
func FilterGallery(ideas []GalleryIdea, category string) []GalleryIdea {
	if category == "" {
		return ideas
	}
	var out []GalleryIdea
	for _, idea := range ideas {
		if idea.Category == category {
			out = append(out, idea)
		}
	}
	return out
}
