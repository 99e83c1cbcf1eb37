package views

// SiteConfig holds the site-wide settings every page needs. It mirrors the
// public part of visionkit.SiteConfig; secrets never reach templates.
type SiteConfig struct {
	Name        string
	URL         string
	Description string
	Author      string
}
