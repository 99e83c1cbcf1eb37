package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/eringen/visionkit"
	"github.com/eringen/visionkit/content"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// PathEscape wraps url.PathEscape for use in component attributes.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// PillClass returns the CSS classes for a filter pill.
func PillClass(active bool) string {
	if active {
		return "pill active"
	}
	return "pill"
}

// TemplateFilterURL links to the template gallery with one filter field
// replaced. An empty value clears that field.
func TemplateFilterURL(f content.TemplateFilter, key, value string) string {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("theme", string(f.Theme))
	set("style", string(f.Style))
	set("format", string(f.Format))
	q.Del(key)
	set(key, value)
	if len(q) == 0 {
		return "/templates/"
	}
	return "/templates/?" + q.Encode()
}

// CategoryURL links to the ideas gallery for one category.
func CategoryURL(category string) string {
	if category == "" || category == content.CategoryAll {
		return "/ideas/"
	}
	return "/ideas/?category=" + url.QueryEscape(category)
}

// PreviewURL cache-busts the builder preview with the board revision.
func PreviewURL(revision uint64) string {
	return "/builder/preview.png?v=" + strconv.FormatUint(revision, 10)
}

// CaptionPlaceholder is shown in an empty caption input.
func CaptionPlaceholder(i int) string {
	return "Affirmation " + strconv.Itoa(i+1)
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      buildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	return marshalJsonLD(data)
}

// FAQPageJsonLD produces a Schema.org FAQPage block for the home page FAQ.
func FAQPageJsonLD(faqs []content.FAQ) string {
	entities := make([]map[string]interface{}, len(faqs))
	for i, f := range faqs {
		entities[i] = map[string]interface{}{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": map[string]string{
				"@type": "Answer",
				"text":  f.Answer,
			},
		}
	}
	return marshalJsonLD(map[string]interface{}{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": entities,
	})
}

func marshalJsonLD(data map[string]interface{}) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func pageTitle(cfg SiteConfig, meta visionkit.PageMeta) string {
	if meta.Title != "" {
		return meta.Title
	}
	return cfg.Name
}

func pageDescription(cfg SiteConfig, meta visionkit.PageMeta) string {
	if meta.Description != "" {
		return meta.Description
	}
	return cfg.Description
}

func ogType(meta visionkit.PageMeta) string {
	if meta.OGType != "" {
		return meta.OGType
	}
	return "website"
}

// jsonLDScript wraps already-marshalled JSON-LD in its script element.
func jsonLDScript(ld string) string {
	return `<script type="application/ld+json">` + ld + `</script>`
}

func themeInfo(key content.Theme) content.ThemeInfo {
	info, _ := content.ThemeByKey(key)
	return info
}

// categoryActive reports whether category c is the one being browsed; an
// empty selection means "All".
func categoryActive(c, current string) bool {
	return c == current || (c == content.CategoryAll && current == "")
}
