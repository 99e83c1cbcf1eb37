package ideasync

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eringen/visionkit/content"
)

// Extensions lists the inbox file types that are synced.
var Extensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

// categoryPrefixes is ordered; the first matching filename prefix wins.
var categoryPrefixes = []struct {
	prefix   string
	category string
}{
	{"career", "Career"},
	{"money", "Money"},
	{"health", "Health"},
	{"relationship", "Relationships"},
	{"study", "Study"},
	{"travel", "Travel"},
}

var keywordTags = []struct {
	words []string
	tag   string
}{
	{[]string{"goal", "dream", "vision"}, "Goals"},
	{[]string{"motivation", "inspire", "quote"}, "Motivation"},
	{[]string{"fitness", "exercise", "yoga"}, "Fitness"},
	{[]string{"travel", "adventure", "beach"}, "Travel"},
	{[]string{"career", "business", "office"}, "Career"},
	{[]string{"money", "finance", "wealth"}, "Finance"},
	{[]string{"family", "love", "relationship"}, "Relationships"},
	{[]string{"study", "learn", "book", "education"}, "Learning"},
}

var (
	specialChars = regexp.MustCompile(`[^\w\s\x{4e00}-\x{9fa5}-]`)
	separators   = regexp.MustCompile(`[\s_]+`)
	hyphens      = regexp.MustCompile(`-+`)
)

// IsImage reports whether name has a synced extension.
func IsImage(name string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(name)))
}

// NormalizeFilename lowercases name, drops special characters and joins
// words with single hyphens. Names that normalize to nothing become
// idea-<unix-ms>.
func NormalizeFilename(name string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(name))
	base := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
	base = specialChars.ReplaceAllString(base, "")
	base = separators.ReplaceAllString(base, "-")
	base = hyphens.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = fmt.Sprintf("idea-%d", now.UnixMilli())
	}
	return base + ext
}

// UniqueFilename returns name, or name-1, name-2, ... for the first that
// does not exist in dir.
func UniqueFilename(dir, name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	candidate := name
	for n := 1; ; n++ {
		if _, err := os.Stat(filepath.Join(dir, candidate)); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d%s", base, n, ext)
	}
}

// Category maps a normalized filename to its gallery category.
func Category(name string) string {
	base := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
	for _, p := range categoryPrefixes {
		if strings.HasPrefix(base, p.prefix) {
			return p.category
		}
	}
	return content.CategoryGeneral
}

// Title derives a display title from a normalized filename, dropping the
// category prefix.
func Title(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	for _, p := range categoryPrefixes {
		if strings.HasPrefix(strings.ToLower(base), p.prefix) {
			base = base[len(p.prefix):]
			break
		}
	}
	base = strings.TrimPrefix(base, "-")
	title := strings.TrimSpace(strings.Join(strings.Split(base, "-"), " "))
	if title == "" {
		return "Vision Board Idea"
	}
	return cases.Title(language.English).String(title)
}

// Tags starts with the category and adds keyword tags found in the name.
func Tags(name, category string) []string {
	base := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
	tags := []string{category}
	for _, kw := range keywordTags {
		if slices.Contains(tags, kw.tag) {
			continue
		}
		for _, w := range kw.words {
			if strings.Contains(base, w) {
				tags = append(tags, kw.tag)
				break
			}
		}
	}
	return tags
}
