package visionkit

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/visionkit/content"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string        `xml:"title"`
	Link        string        `xml:"link"`
	Description string        `xml:"description"`
	Category    string        `xml:"category,omitempty"`
	PubDate     string        `xml:"pubDate,omitempty"`
	GUID        string        `xml:"guid"`
	Enclosure   *rssEnclosure `xml:"enclosure,omitempty"`
}

type rssEnclosure struct {
	URL  string `xml:"url,attr"`
	Type string `xml:"type,attr"`
}

// feedLimit caps the number of ideas in the feed.
const feedLimit = 50

func (a *App) renderRSS(c echo.Context, ideas []content.GalleryIdea) error {
	base := strings.TrimRight(a.Config.URL, "/")
	if len(ideas) > feedLimit {
		ideas = ideas[:feedLimit]
	}
	items := make([]rssItem, 0, len(ideas))
	for _, idea := range ideas {
		src := base + idea.Src
		item := rssItem{
			Title:       idea.Title,
			Link:        src,
			Description: strings.Join(idea.Tags, ", "),
			Category:    idea.Category,
			GUID:        src,
			Enclosure:   &rssEnclosure{URL: src, Type: mediaTypeFor(idea.Src)},
		}
		if !idea.SyncedAt.IsZero() {
			item.PubDate = idea.SyncedAt.Format(time.RFC1123Z)
		}
		items = append(items, item)
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name + " ideas",
			Link:        BuildURL(a.Config.URL, "ideas"),
			Description: a.Config.Description,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}

func mediaTypeFor(src string) string {
	switch {
	case strings.HasSuffix(src, ".png"):
		return "image/png"
	case strings.HasSuffix(src, ".gif"):
		return "image/gif"
	case strings.HasSuffix(src, ".webp"):
		return "image/webp"
	}
	return "image/jpeg"
}
