// Package views renders visionkit pages as templ components.
//
//go:generate templ generate
package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/visionkit"
	"github.com/eringen/visionkit/board"
)

var (
	templateOptions = []struct {
		Kind  board.TemplateKind
		Label string
	}{
		{board.Grid, "Grid (3×3)"},
		{board.Freeform, "Freeform collage"},
	}
	layoutOptions = []struct {
		Variant board.LayoutVariant
		Label   string
	}{
		{board.Classic, "Classic"},
		{board.Modern, "Modern"},
		{board.Collage, "Collage"},
	}
)

// Funcs returns the full set of page components for cfg.
func Funcs(cfg SiteConfig) visionkit.ViewFuncs {
	return visionkit.ViewFuncs{
		Home:           func(p visionkit.HomePage) templ.Component { return Home(cfg, p) },
		Signup:         func(r visionkit.SignupResult) templ.Component { return Signup(cfg, r) },
		Templates:      func(p visionkit.TemplatesPage) templ.Component { return Templates(cfg, p) },
		Ideas:          func(p visionkit.IdeasPage) templ.Component { return Ideas(cfg, p) },
		Builder:        func(p visionkit.BuilderPage) templ.Component { return Builder(cfg, p) },
		AdminLogin:     func(showError bool, csrf string) templ.Component { return AdminLogin(cfg, showError, csrf) },
		AdminDashboard: func(d visionkit.AdminDashboard) templ.Component { return AdminDashboard(cfg, d) },
		NotFound:       func() templ.Component { return NotFound(cfg) },
		ServerError:    func() templ.Component { return ServerError(cfg) },
	}
}
