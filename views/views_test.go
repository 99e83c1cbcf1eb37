package views

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/visionkit"
	"github.com/eringen/visionkit/board"
	"github.com/eringen/visionkit/content"
)

var testSite = SiteConfig{Name: "Vision Kit", URL: "https://example.com", Description: "Boards"}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestPageEscapesContent(t *testing.T) {
	out := render(t, Signup(testSite, visionkit.SignupResult{
		Meta:  visionkit.PageMeta{Title: `<b>"hi"</b>`},
		Email: "<script>alert(1)</script>@example.com",
	}))
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt;@example.com")
	assert.Contains(t, out, "<title>&lt;b&gt;&#34;hi&#34;&lt;/b&gt;</title>")
}

func TestPageFallsBackToSiteMeta(t *testing.T) {
	out := render(t, NotFound(testSite))
	assert.Contains(t, out, `<meta name="description" content="Boards">`)
	assert.Contains(t, out, `<link rel="stylesheet" href="/public/visionkit.css">`)
	assert.Contains(t, out, `"@type":"WebSite"`)
}

func TestFAQPageJsonLD(t *testing.T) {
	ld := FAQPageJsonLD([]content.FAQ{{Question: "Why </script>?", Answer: "Because."}})
	assert.NotContains(t, ld, "</script>")

	var doc struct {
		Type       string `json:"@type"`
		MainEntity []struct {
			Name   string `json:"name"`
			Answer struct {
				Text string `json:"text"`
			} `json:"acceptedAnswer"`
		} `json:"mainEntity"`
	}
	require.NoError(t, json.Unmarshal([]byte(ld), &doc))
	assert.Equal(t, "FAQPage", doc.Type)
	require.Len(t, doc.MainEntity, 1)
	assert.Equal(t, "Why </script>?", doc.MainEntity[0].Name)
	assert.Equal(t, "Because.", doc.MainEntity[0].Answer.Text)
}

func TestTemplateFilterURL(t *testing.T) {
	f := content.TemplateFilter{Theme: content.ThemeCareer, Style: content.StyleBold}

	assert.Equal(t, "/templates/?style=bold&theme=money", TemplateFilterURL(f, "theme", "money"))
	assert.Equal(t, "/templates/?theme=career", TemplateFilterURL(f, "style", ""))
	assert.Equal(t, "/templates/", TemplateFilterURL(content.TemplateFilter{}, "format", ""))
	assert.Equal(t, "/templates/?format=digital&style=bold&theme=career", TemplateFilterURL(f, "format", "digital"))
}

func TestCategoryURL(t *testing.T) {
	assert.Equal(t, "/ideas/", CategoryURL(content.CategoryAll))
	assert.Equal(t, "/ideas/", CategoryURL(""))
	assert.Equal(t, "/ideas/?category=Career", CategoryURL("Career"))
}

func builderPage() visionkit.BuilderPage {
	return visionkit.BuilderPage{
		Template: board.Grid,
		Layout:   board.Modern,
		Title:    "My 2025 Vision Board",
		Images:   []visionkit.BuilderImage{{ID: "img-1", Ref: "ref-1", Name: "beach.png"}},
		Captions: []board.Caption{{ID: "cap-1", Text: "I am calm"}},
		Revision: 7,
		CSRF:     "tok",
	}
}

func TestBuilderHidesRemoveCaptionAtMinimum(t *testing.T) {
	p := builderPage()
	out := render(t, Builder(testSite, p))
	assert.NotContains(t, out, "/builder/captions/cap-1/remove/")
	assert.Contains(t, out, `action="/builder/captions/cap-1/"`)

	p.CanRemoveCaption = true
	out = render(t, Builder(testSite, p))
	assert.Contains(t, out, "/builder/captions/cap-1/remove/")
}

func TestBuilderControls(t *testing.T) {
	p := builderPage()
	out := render(t, Builder(testSite, p))

	assert.Contains(t, out, `<option value="modern" selected>Modern</option>`)
	assert.Contains(t, out, `src="/builder/assets/ref-1"`)
	assert.Contains(t, out, `src="/builder/preview.png?v=7"`)
	assert.Contains(t, out, `<input type="hidden" name="_csrf" value="tok">`)
	assert.Contains(t, out, `type="submit" disabled>Download PNG`)

	p.CanExport = true
	p.Template = board.Freeform
	out = render(t, Builder(testSite, p))
	assert.NotContains(t, out, "disabled>Download PNG")
	assert.NotContains(t, out, `name="layout"`)
}

func TestTemplatesMarksActiveFilter(t *testing.T) {
	f := content.ParseTemplateFilter("travel", "", "")
	out := render(t, Templates(testSite, visionkit.TemplatesPage{
		Filter:    f,
		Templates: content.FilterTemplates(f),
		Total:     len(content.FilterTemplates(content.TemplateFilter{})),
	}))
	assert.Contains(t, out, `class="pill active" href="/templates/?theme=travel"`)
	assert.Contains(t, out, "Clear filters")
	assert.Equal(t, 1, strings.Count(out, `<nav class="filters" aria-label="Theme">`))
}

func TestAdminDashboard(t *testing.T) {
	out := render(t, AdminDashboard(testSite, visionkit.AdminDashboard{
		Ideas:        []content.GalleryIdea{{ID: 42, Title: "Beach", Category: "Travel", Src: "/public/ideas/beach.png"}},
		ActiveBoards: 3,
		CSRF:         "tok",
	}))
	assert.Contains(t, out, "3 active builder boards.")
	assert.Contains(t, out, `action="/admin/ideas/42/remove/"`)
	assert.Contains(t, out, `action="/admin/ideas/sync/"`)
}

func TestFuncsCoversEveryView(t *testing.T) {
	f := Funcs(testSite)
	assert.NotNil(t, f.Home)
	assert.NotNil(t, f.Signup)
	assert.NotNil(t, f.Templates)
	assert.NotNil(t, f.Ideas)
	assert.NotNil(t, f.Builder)
	assert.NotNil(t, f.AdminLogin)
	assert.NotNil(t, f.AdminDashboard)
	assert.NotNil(t, f.NotFound)
	assert.NotNil(t, f.ServerError)

	out := render(t, f.AdminLogin(true, "tok"))
	assert.Contains(t, out, "Wrong password.")
}

func TestHomeThemedSection(t *testing.T) {
	career, _ := content.ThemeByKey(content.ThemeCareer)
	tpl := content.TemplatesByTheme(content.ThemeCareer, 1)[0]
	out := render(t, Home(testSite, visionkit.HomePage{
		Themed: []visionkit.ThemeCard{
			{Theme: career, Template: &tpl},
			{Theme: content.ThemeInfo{Key: content.ThemeStudy, Name: "Study", Color: "#8b5cf6"}},
		},
	}))
	assert.Contains(t, out, "Vision Boards for Every Goal")
	assert.Contains(t, out, `href="/templates/?theme=career"`)
	assert.Contains(t, out, `href="/templates/?theme=study"`)
	assert.Contains(t, out, "Create a powerful vision for your career goals.")
	assert.Contains(t, out, "Starts with "+templ.EscapeString(tpl.Title))
	assert.Equal(t, 1, strings.Count(out, "Starts with "))
}

func TestPageShell(t *testing.T) {
	out := render(t, Home(testSite, visionkit.HomePage{
		Meta: visionkit.PageMeta{Title: "Home", URL: "https://example.com/"},
		FAQs: []content.FAQ{{Question: "How long?", Answer: "30 minutes."}},
	}))
	assert.True(t, strings.HasPrefix(out, "<!doctype html><html lang=\"en\"><head>"))
	assert.Contains(t, out, `<link rel="canonical" href="https://example.com/">`)
	assert.Contains(t, out, `<meta property="og:type" content="website">`)
	assert.Equal(t, 2, strings.Count(out, `<script type="application/ld+json">`))
	assert.Contains(t, out, `"@type":"FAQPage"`)
	assert.True(t, strings.HasSuffix(out, "</footer></body></html>"))

	out = render(t, NotFound(testSite))
	assert.NotContains(t, out, `rel="canonical"`)
	assert.Equal(t, 1, strings.Count(out, `<script type="application/ld+json">`))
}

func TestThemeCardSwatchStyle(t *testing.T) {
	out := render(t, themeCard(visionkit.ThemeCard{
		Theme: content.ThemeInfo{Key: content.ThemeStudy, Name: "Study", Color: "#8b5cf6", Icon: "📚"},
	}))
	assert.Contains(t, out, `<div class="swatch" style="background-color:#8b5cf620;">📚</div>`)
	assert.NotContains(t, out, "Starts with")
}
