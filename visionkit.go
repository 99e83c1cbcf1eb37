// Package visionkit serves a vision board website: a template gallery, a
// synced ideas gallery, a resource pack signup and a board builder that
// composes uploaded images and affirmations into a downloadable PNG.
//
// Pages are rendered by caller-supplied templ components (ViewFuncs);
// visionkit owns the handlers, middleware, builder sessions and storage.
package visionkit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/eringen/visionkit/export"
)

// ViewFuncs holds the templ components the handlers render. Callers own
// every template.
type ViewFuncs struct {
	Home           func(page HomePage) templ.Component
	Signup         func(result SignupResult) templ.Component
	Templates      func(page TemplatesPage) templ.Component
	Ideas          func(page IdeasPage) templ.Component
	Builder        func(page BuilderPage) templ.Component
	AdminLogin     func(showError bool, csrfToken string) templ.Component
	AdminDashboard func(d AdminDashboard) templ.Component
	NotFound       func() templ.Component
	ServerError    func() templ.Component
}

// App is the central visionkit application. It wires together the store,
// caches, builder sessions, handlers, middleware and templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *Store
	Cache   *IdeaCache
	Boards  *BoardRegistry
	Views   ViewFuncs
	Logger  *zap.Logger
	Metrics *Metrics

	loginLimiter  *Limiter
	exportLimiter *Limiter
	signupLimiter *Limiter
	customRoutes  []func(*App)
	exportOpts    []export.Option
	ownsStore     bool
	ready         bool
}

// WithExportOptions configures the exporter of every new builder session.
func WithExportOptions(opts ...export.Option) Option {
	return func(a *App) {
		a.exportOpts = append(a.exportOpts, opts...)
	}
}

// New creates a visionkit App with the given configuration and views.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config: cfg,
		Echo:   e,
		Views:  views,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Logger == nil {
		a.Logger = zap.NewNop()
	}
	return a
}

// Setup validates the configuration, opens the store and registers
// middleware and routes. Start calls it; tests call it directly and drive
// a.Echo with httptest.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if err := a.Config.validate(); err != nil {
		return err
	}

	if a.Store == nil {
		store, err := NewStore(a.Config.DatabasePath)
		if err != nil {
			return fmt.Errorf("visionkit: init store: %w", err)
		}
		a.Store = store
		a.ownsStore = true
	}
	a.Cache = NewIdeaCache(a.Store, a.Config.IdeaCacheTTL)
	a.Metrics = NewMetrics("visionkit")

	a.Boards = NewBoardRegistry(a.Config.BoardTTL, a.Logger.Named("boards"), func(n int) {
		a.Metrics.ActiveBoards.Set(float64(n))
	}, a.exportOpts...)
	a.Boards.Start(a.Config.SweepInterval)

	a.loginLimiter = NewLimiter(5, time.Minute)
	a.exportLimiter = NewLimiter(a.Config.ExportsPerMinute, time.Minute)
	a.signupLimiter = NewLimiter(a.Config.SignupsPerMinute, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start sets the app up and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.Logger.Info("listening", zap.String("addr", a.Config.Addr), zap.String("url", a.Config.URL))
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones,
// including exports, until ctx expires.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(embeddedFS))))
	e.GET("/public/visionkit.css", embeddedHandler)
	e.GET("/public/builder.js", embeddedHandler)
	e.FileFS("/favicon.svg", "favicon.svg", embeddedFS)

	// User's static assets, including synced ideas under /public/ideas/.
	e.Static("/public", a.Config.StaticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/metrics", a.Metrics.Handler())

	e.GET("/", a.handleHome)
	e.POST("/resources/signup/", a.handleSignup)
	e.GET("/templates/", a.handleTemplates)
	e.GET("/ideas/", a.handleIdeas)

	b := e.Group("/builder")
	b.GET("/", a.handleBuilder)
	b.POST("/template/", a.handleBuilderTemplate)
	b.POST("/layout/", a.handleBuilderLayout)
	b.POST("/title/", a.handleBuilderTitle)
	b.POST("/images/", a.handleBuilderUpload, middleware.BodyLimit(a.uploadBodyLimit()))
	b.POST("/images/:id/remove/", a.handleBuilderRemoveImage)
	b.GET("/assets/:ref", a.handleBuilderAsset)
	b.POST("/captions/", a.handleBuilderAddCaption)
	b.POST("/captions/:id/", a.handleBuilderUpdateCaption)
	b.POST("/captions/:id/remove/", a.handleBuilderRemoveCaption)
	b.GET("/scene.json", a.handleBuilderScene)
	b.GET("/preview.png", a.handleBuilderPreview)
	b.POST("/export/", a.handleBuilderExport)

	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.POST("/admin/ideas/sync/", a.handleAdminSync)
	e.POST("/admin/ideas/:id/remove/", a.handleAdminRemoveIdea)
}

// uploadBodyLimit allows a batch of up to 12 full-size files per request.
func (a *App) uploadBodyLimit() string {
	return fmt.Sprintf("%dK", a.Config.MaxUploadBytes*12/1024)
}

// Close stops background work, releases every board and closes the store
// when the App opened it.
func (a *App) Close() error {
	if a.Boards != nil {
		a.Boards.Close()
	}
	for _, l := range []*Limiter{a.loginLimiter, a.exportLimiter, a.signupLimiter} {
		if l != nil {
			l.Stop()
		}
	}
	var err error
	if a.Store != nil && a.ownsStore {
		err = a.Store.Close()
	}
	_ = a.Logger.Sync()
	return err
}
