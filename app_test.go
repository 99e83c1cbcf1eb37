package visionkit

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"github.com/eringen/visionkit/export"
)

// exportTime is the fixed clock every test exporter uses.
var exportTime = time.UnixMilli(1767225600123)

// pages records the data each stub view was last rendered with.
type pages struct {
	mu        sync.Mutex
	home      HomePage
	builder   BuilderPage
	templates TemplatesPage
	ideas     IdeasPage
	signup    SignupResult
	dashboard AdminDashboard
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func (p *pages) views() ViewFuncs {
	return ViewFuncs{
		Home: func(page HomePage) templ.Component {
			p.mu.Lock()
			p.home = page
			p.mu.Unlock()
			return text(fmt.Sprintf("home templates=%d ideas=%d themes=%d", len(page.Templates), len(page.Ideas), len(page.Themed)))
		},
		Signup: func(r SignupResult) templ.Component {
			p.mu.Lock()
			p.signup = r
			p.mu.Unlock()
			return text("signup " + r.Email)
		},
		Templates: func(page TemplatesPage) templ.Component {
			p.mu.Lock()
			p.templates = page
			p.mu.Unlock()
			return text(fmt.Sprintf("templates %d/%d", len(page.Templates), page.Total))
		},
		Ideas: func(page IdeasPage) templ.Component {
			p.mu.Lock()
			p.ideas = page
			p.mu.Unlock()
			return text(fmt.Sprintf("ideas %d", len(page.Ideas)))
		},
		Builder: func(page BuilderPage) templ.Component {
			p.mu.Lock()
			p.builder = page
			p.mu.Unlock()
			return text(fmt.Sprintf("builder images=%d captions=%d", len(page.Images), len(page.Captions)))
		},
		AdminLogin: func(showError bool, _ string) templ.Component {
			return text(fmt.Sprintf("login error=%t", showError))
		},
		AdminDashboard: func(d AdminDashboard) templ.Component {
			p.mu.Lock()
			p.dashboard = d
			p.mu.Unlock()
			return text("dashboard " + d.Message)
		},
		NotFound:    func() templ.Component { return text("not found") },
		ServerError: func() templ.Component { return text("server error") },
	}
}

func (p *pages) lastBuilder() BuilderPage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.builder
}

func newTestApp(t *testing.T, opts ...Option) (*App, *pages) {
	t.Helper()
	dir := t.TempDir()
	cfg := SiteConfig{
		Name:          "Vision Board Kit",
		URL:           "https://example.com",
		AdminPassword: "secret",
		SessionSecret: "0123456789abcdef0123456789abcdef",
		DatabasePath:  filepath.Join(dir, "data", "visionkit.db"),
		StaticDir:     filepath.Join(dir, "public"),
		IdeasInbox:    filepath.Join(dir, "inbox"),
	}
	p := &pages{}
	opts = append([]Option{WithExportOptions(export.WithClock(func() time.Time { return exportTime }))}, opts...)
	app := New(cfg, p.views(), opts...)
	require.NoError(t, app.Setup())
	t.Cleanup(func() { app.Close() })
	return app, p
}

// client is a browser stand-in: it keeps cookies and echoes the CSRF
// cookie back in the X-CSRF-Token header on POST.
type client struct {
	t       *testing.T
	app     *App
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, app *App) *client {
	c := &client{t: t, app: app, cookies: map[string]*http.Cookie{}}
	c.get("/builder/")
	return c
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	c.t.Helper()
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	if req.Method == http.MethodPost {
		if tok, ok := c.cookies["_csrf"]; ok {
			req.Header.Set("X-CSRF-Token", tok.Value)
		}
	}
	rec := httptest.NewRecorder()
	c.app.Echo.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		c.cookies[ck.Name] = ck
	}
	return rec
}

func (c *client) get(path string) *httptest.ResponseRecorder {
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (c *client) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

type upload struct {
	name      string
	mediaType string
	data      []byte
}

func (c *client) upload(files ...upload) *httptest.ResponseRecorder {
	c.t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, f.name))
		h.Set("Content-Type", f.mediaType)
		part, err := mw.CreatePart(h)
		require.NoError(c.t, err)
		_, err = part.Write(f.data)
		require.NoError(c.t, err)
	}
	require.NoError(c.t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/builder/images/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req)
}

func pngBytes(t *testing.T, w, h int, col color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, col)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func pngUpload(t *testing.T, name string, col color.Color) upload {
	return upload{name: name, mediaType: "image/png", data: pngBytes(t, 40, 30, col)}
}
