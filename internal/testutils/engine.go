package testutils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"restaurant-review-server/internal/config"
	"restaurant-review-server/internal/locale"
	"restaurant-review-server/internal/session"
	"restaurant-review-server/internal/web"

	"github.com/gin-gonic/gin"
)

// TestConfig returns a configuration with the same defaults the server uses.
func TestConfig() config.Config {
	var cfg config.Config
	cfg.Server.Mode = gin.TestMode
	cfg.Server.MaxBodyMB = 2
	cfg.Server.StaticCacheControl = "public, max-age=3600"
	cfg.Database.Type = "sqlite"
	cfg.Session = config.SessionConfig{Secret: "test-session-secret", CookieName: "rr_test", MaxAgeSeconds: 3600}
	cfg.Security.PasswordHash = config.HashSHA256
	cfg.Upload.MaxPhotoMB = 10
	cfg.Upload.MaxPhotoPixels = config.DefaultMaxPhotoPixels
	cfg.Upload.JPEGQuality = 90
	cfg.Map.Zoom = 12
	cfg.Map.TileURL = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"
	cfg.Map.Attribution = "OpenStreetMap"
	return cfg
}

// NewEngine builds a gin engine with templates, sessions and localisation installed.
func NewEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := web.Templates()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(session.Middleware(TestConfig().Session), locale.Middleware())
	return r
}

// LoginAs installs a route that logs in as the given user and returns the session cookies.
func LoginAs(t *testing.T, r *gin.Engine, id uint, username string) []*http.Cookie {
	t.Helper()
	r.GET("/__test_login", func(c *gin.Context) {
		if err := session.SetLoginUserID(c, id, username); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})
	w := Do(r, http.MethodGet, "/__test_login", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("test login failed: %d", w.Code)
	}
	return w.Result().Cookies()
}

// Do performs a request against h, sending form as url-encoded body when non-nil.
func Do(h http.Handler, method, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// DoRaw performs a request with an arbitrary body and content type.
func DoRaw(h http.Handler, method, target, contentType, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
