package visionkit

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/visionkit/content"
	"github.com/eringen/visionkit/ideasync"
)

// ideasURLPrefix is where synced idea images are served from.
const ideasURLPrefix = "/public/ideas"

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

// handleAdminLogin counts only failed attempts against the limiter.
func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	a.Logger.Warn("failed admin login", zap.String("ip", ip))
	return Render(c, a.Views.AdminLogin(true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminRemoveIdea(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid idea id")
	}
	if err := a.Store.DeleteGalleryIdea(id); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return redirectAdmin(c, "Idea removed.")
}

func (a *App) handleAdminSync(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	rep, err := a.IdeaSyncer().Sync(c.Request().Context())
	if err != nil {
		a.Logger.Error("idea sync failed", zap.Error(err))
		return redirectAdmin(c, "Sync failed: "+err.Error())
	}
	return redirectAdmin(c, fmt.Sprintf("Synced %d new, %d unchanged, %d failed.", rep.Copied, rep.Skipped, rep.Failed))
}

func redirectAdmin(c echo.Context, msg string) error {
	return c.Redirect(http.StatusSeeOther, "/admin/?msg="+url.QueryEscape(msg))
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	ideas, err := a.Store.ListGalleryIdeas("")
	if err != nil {
		return err
	}
	subs, err := a.Store.ListSubscriptions()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminDashboard(AdminDashboard{
		Ideas:         ideas,
		Subscriptions: subs,
		ActiveBoards:  a.Boards.Len(),
		Message:       msg,
		CSRF:          CsrfToken(c),
	}))
}

// IdeaSyncer returns a syncer that copies the configured inbox into the
// public ideas directory and records ideas through the App.
func (a *App) IdeaSyncer() *ideasync.Syncer {
	return ideasync.New(
		a.Config.IdeasInbox,
		filepath.Join(a.Config.StaticDir, "ideas"),
		ideasURLPrefix,
		a,
		a.Logger.Named("ideasync"),
	)
}

// SaveGalleryIdea stores idea and drops the cached gallery.
func (a *App) SaveGalleryIdea(idea content.GalleryIdea) error {
	if err := a.Store.SaveGalleryIdea(idea); err != nil {
		return err
	}
	if a.Cache != nil {
		a.Cache.Invalidate()
	}
	return nil
}
