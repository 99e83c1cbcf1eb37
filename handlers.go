package visionkit

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/visionkit/content"
)

func (a *App) handleHome(c echo.Context) error {
	return Render(c, a.Views.Home(HomePage{
		Meta: PageMeta{
			Title:       a.Config.Name,
			Description: a.Config.Description,
			URL:         BuildURL(a.Config.URL),
			OGType:      "website",
		},
		Checklist: content.Checklist,
		Templates: content.FeaturedTemplates(),
		Ideas:     content.FeaturedIdeas(),
		Themed:    themeCards(),
		Keywords:  content.KeywordCollections,
		FAQs:      content.FAQs,
		CSRF:      CsrfToken(c),
	}))
}

// themeCards pairs every theme with its first template.
func themeCards() []ThemeCard {
	cards := make([]ThemeCard, 0, len(content.Themes))
	for _, info := range content.Themes {
		card := ThemeCard{Theme: info}
		if tpls := content.TemplatesByTheme(info.Key, 1); len(tpls) > 0 {
			card.Template = &tpls[0]
		}
		cards = append(cards, card)
	}
	return cards
}

func (a *App) handleSignup(c echo.Context) error {
	if !a.signupLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many signups. Try again later.")
	}
	var f signupForm
	if err := bindForm(c, &f); err != nil {
		return err
	}
	created, err := a.Store.SaveSubscription(f.Email)
	if err != nil {
		return err
	}
	if created {
		a.Metrics.Signups.Inc()
		a.Logger.Info("resource pack signup")
	}
	return Render(c, a.Views.Signup(SignupResult{
		Meta: PageMeta{
			Title:  "Your free resource pack | " + a.Config.Name,
			URL:    BuildURL(a.Config.URL, "resources", "signup"),
			OGType: "website",
		},
		Email:     normalizeEmail(f.Email),
		Resources: content.Resources,
	}))
}

// handleTemplates filters the catalog by theme, style and format. Unknown
// values are ignored rather than rejected.
func (a *App) handleTemplates(c echo.Context) error {
	filter := content.ParseTemplateFilter(c.QueryParam("theme"), c.QueryParam("style"), c.QueryParam("format"))
	return Render(c, a.Views.Templates(TemplatesPage{
		Meta: PageMeta{
			Title:       "Vision Board Templates | " + a.Config.Name,
			Description: "Free printable and digital vision board templates by theme, style and format.",
			URL:         BuildURL(a.Config.URL, "templates"),
			OGType:      "website",
		},
		Filter:    filter,
		Templates: content.FilterTemplates(filter),
		Total:     len(content.Templates),
	}))
}

func (a *App) handleIdeas(c echo.Context) error {
	category := content.ParseCategory(c.QueryParam("category"))
	ideas, err := a.Cache.ListIdeas(category)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Ideas(IdeasPage{
		Meta: PageMeta{
			Title:       "Vision Board Ideas | " + a.Config.Name,
			Description: "Inspiration images for career, money, health, relationships, study and travel goals.",
			URL:         BuildURL(a.Config.URL, "ideas"),
			OGType:      "website",
		},
		Category:   category,
		Categories: content.Categories,
		Ideas:      ideas,
	}))
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c)
}

func (a *App) handleFeed(c echo.Context) error {
	ideas, err := a.Cache.ListIdeas("")
	if err != nil {
		return err
	}
	return a.renderRSS(c, ideas)
}

func (a *App) handleRobots(c echo.Context) error {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\nDisallow: /admin/\nDisallow: /builder/\n")
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", strings.TrimRight(a.Config.URL, "/"))
	return c.String(http.StatusOK, b.String())
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			zap.Error(err),
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
		)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
