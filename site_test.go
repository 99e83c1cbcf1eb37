package visionkit

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/visionkit/content"
)

func TestHomePage(t *testing.T) {
	app, p := newTestApp(t)
	c := newClient(t, app)

	rec := c.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "home templates=7 ideas=12 themes=6", rec.Body.String())
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))

	p.mu.Lock()
	themed := p.home.Themed
	p.mu.Unlock()
	require.Len(t, themed, len(content.Themes))
	for i, card := range themed {
		assert.Equal(t, content.Themes[i].Key, card.Theme.Key)
		require.NotNil(t, card.Template, card.Theme.Key)
		assert.Equal(t, card.Theme.Key, card.Template.Theme)
		assert.Equal(t, content.TemplatesByTheme(card.Theme.Key, 1)[0].ID, card.Template.ID)
	}
}

func TestTemplatesIgnoreInvalidFilters(t *testing.T) {
	app, p := newTestApp(t)
	c := newClient(t, app)

	rec := c.get("/templates/?theme=career&style=glitter&format=notion")
	require.Equal(t, http.StatusOK, rec.Code)
	p.mu.Lock()
	page := p.templates
	p.mu.Unlock()
	assert.Equal(t, content.ThemeCareer, page.Filter.Theme)
	assert.Empty(t, page.Filter.Style)
	assert.Equal(t, content.FormatNotion, page.Filter.Format)
	assert.Equal(t, len(content.Templates), page.Total)
	for _, tmpl := range page.Templates {
		assert.Equal(t, content.ThemeCareer, tmpl.Theme)
		assert.Equal(t, content.FormatNotion, tmpl.Format)
	}
}

func TestBuilderIsNotCached(t *testing.T) {
	app, _ := newTestApp(t)
	c := newClient(t, app)

	assert.Equal(t, "no-store", c.get("/builder/").Header().Get("Cache-Control"))
	assert.Equal(t, "no-store", c.get("/builder/scene.json").Header().Get("Cache-Control"))
}

func TestTrailingSlashRedirect(t *testing.T) {
	app, _ := newTestApp(t)
	c := newClient(t, app)

	rec := c.get("/templates")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/templates/", rec.Header().Get("Location"))
}

func TestSignupStoresSubscription(t *testing.T) {
	app, p := newTestApp(t)
	c := newClient(t, app)

	rec := c.post("/resources/signup/", url.Values{"email": {"Dreamer@Example.com"}})
	require.Equal(t, http.StatusOK, rec.Code)
	p.mu.Lock()
	result := p.signup
	p.mu.Unlock()
	assert.Equal(t, "dreamer@example.com", result.Email)
	assert.Len(t, result.Resources, 4)

	subs, err := app.Store.ListSubscriptions()
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "dreamer@example.com", subs[0].Email)

	assert.Equal(t, http.StatusBadRequest, c.post("/resources/signup/", url.Values{"email": {"not-an-email"}}).Code)
}

func TestAdminLoginSyncAndRemoveIdea(t *testing.T) {
	app, p := newTestApp(t)
	c := newClient(t, app)

	assert.Equal(t, "login error=false", c.get("/admin/").Body.String())
	assert.Equal(t, "login error=true", c.post("/admin/login/", url.Values{"password": {"wrong"}}).Body.String())

	rec := c.post("/admin/login/", url.Values{"password": {"secret"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	require.NoError(t, os.MkdirAll(app.Config.IdeasInbox, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(app.Config.IdeasInbox, "Travel Beach House.jpg"), []byte("jpeg"), 0o644))

	rec = c.post("/admin/ideas/sync/", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), url.QueryEscape("Synced 1 new"))
	assert.FileExists(t, filepath.Join(app.Config.StaticDir, "ideas", "travel-beach-house.jpg"))

	c.get("/ideas/?category=Travel")
	p.mu.Lock()
	ideas := p.ideas
	p.mu.Unlock()
	assert.Equal(t, "Travel", ideas.Category)
	require.Len(t, ideas.Ideas, 1)
	idea := ideas.Ideas[0]
	assert.Equal(t, "Beach House", idea.Title)
	assert.Equal(t, "/public/ideas/travel-beach-house.jpg", idea.Src)

	c.get("/admin/")
	p.mu.Lock()
	dash := p.dashboard
	p.mu.Unlock()
	assert.Len(t, dash.Ideas, 1)
	assert.Equal(t, 1, dash.ActiveBoards)

	rec = c.post("/admin/ideas/"+strconv.FormatInt(idea.ID, 10)+"/remove/", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	c.get("/ideas/")
	p.mu.Lock()
	assert.Empty(t, p.ideas.Ideas)
	p.mu.Unlock()
}

func TestAdminRoutesRequireLogin(t *testing.T) {
	app, _ := newTestApp(t)
	c := newClient(t, app)

	rec := c.post("/admin/ideas/sync/", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/", rec.Header().Get("Location"))
}

func TestIdeasUnknownCategoryShowsAll(t *testing.T) {
	app, p := newTestApp(t)
	require.NoError(t, app.SaveGalleryIdea(content.GalleryIdea{Title: "Coins", Category: "Money", Src: "/public/ideas/money-coins.jpg"}))
	c := newClient(t, app)

	c.get("/ideas/?category=Pets")
	p.mu.Lock()
	defer p.mu.Unlock()
	assert.Empty(t, p.ideas.Category)
	assert.Len(t, p.ideas.Ideas, 1)
}

func TestAmbientEndpoints(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, app.SaveGalleryIdea(content.GalleryIdea{Title: "Yoga", Category: "Health", Src: "/public/ideas/health-yoga.png"}))
	c := newClient(t, app)

	robots := c.get("/robots.txt")
	require.Equal(t, http.StatusOK, robots.Code)
	assert.Contains(t, robots.Body.String(), "Sitemap: https://example.com/sitemap.xml")

	sitemap := c.get("/sitemap.xml").Body.String()
	assert.Contains(t, sitemap, "<loc>https://example.com/builder/</loc>")
	assert.Contains(t, sitemap, "https://example.com/templates/?theme=travel")

	feed := c.get("/feed.xml").Body.String()
	assert.Contains(t, feed, "<title>Yoga</title>")
	assert.Contains(t, feed, `url="https://example.com/public/ideas/health-yoga.png" type="image/png"`)

	metrics := c.get("/metrics")
	require.Equal(t, http.StatusOK, metrics.Code)
	assert.True(t, strings.Contains(metrics.Body.String(), "visionkit_active_boards 1"))

	favicon := c.get("/favicon.svg")
	require.Equal(t, http.StatusOK, favicon.Code)
	assert.Contains(t, favicon.Header().Get("Content-Type"), "image/svg+xml")
	assert.Contains(t, favicon.Body.String(), "<svg")
	assert.Equal(t, http.StatusOK, c.get("/public/visionkit.css").Code)
	nf := c.get("/nope/")
	assert.Equal(t, http.StatusNotFound, nf.Code)
	assert.Equal(t, "not found", nf.Body.String())
}
