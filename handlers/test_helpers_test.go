package handlers

import (
	"github.com/cric2000/calenderService/config"
	"github.com/cric2000/calenderService/middleware"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.HTTPErrorHandler = JSONErrorHandler
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return e, c, rec
}

// setupStaticDir writes the front-end assets into a temporary directory
func setupStaticDir(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, IndexFile), []byte("<html>calendar</html>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FaviconFile), []byte("ico"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, LogoFile), []byte("png"), 0644))
	return dir
}

func setupRouter(t *testing.T, limiter *middleware.RateLimiter) *echo.Echo {
	dir := setupStaticDir(t)
	cfg := &config.Config{
		ServerPort:     "3000",
		Environment:    "test",
		StaticDir:      dir,
		AllowedOrigins: []string{"*"},
	}
	return NewRouter(RouterOptions{
		Config:  cfg,
		Assets:  middleware.NewAssetVersions(dir, StaticFiles...),
		Limiter: limiter,
	})
}

// freezeTime pins timeNow for the duration of a test
func freezeTime(t *testing.T, now time.Time) {
	original := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = original })
}
