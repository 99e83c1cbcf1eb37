package visionkit

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/visionkit/content"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
}

// sitemapURLs lists the public pages plus one filtered gallery per theme.
func sitemapURLs(base string) []sitemapURL {
	urls := []sitemapURL{
		{Loc: BuildURL(base), ChangeFreq: "weekly"},
		{Loc: BuildURL(base, "templates"), ChangeFreq: "weekly"},
		{Loc: BuildURL(base, "ideas"), ChangeFreq: "daily"},
		{Loc: BuildURL(base, "builder"), ChangeFreq: "monthly"},
	}
	for _, t := range content.Themes {
		urls = append(urls, sitemapURL{
			Loc:        BuildURL(base, "templates") + "?theme=" + string(t.Key),
			ChangeFreq: "weekly",
		})
	}
	return urls
}

func (a *App) renderSitemap(c echo.Context) error {
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  sitemapURLs(a.Config.URL),
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
