package handlers

import (
	"errors"
	"github.com/cric2000/calenderService/middleware"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

// Static assets served by the front-end routes
const (
	IndexFile   = "index.html"
	FaviconFile = "favicon.ico"
	LogoFile    = "calendar.png"
)

// StaticFiles lists every file the static routes may serve
var StaticFiles = []string{IndexFile, FaviconFile, LogoFile}

// etagMatches reports whether an If-None-Match header names etag. The header
// may list several tags, carry weak W/ prefixes, or be "*".
func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

// StaticFileHandler streams dir/name with the given content type. A missing
// file is a plain-text 404; any other read failure is a plain-text 500.
// ETags come from hashes taken at startup, so assets are treated as fixed for
// the life of the process; restart the server after replacing them.
func StaticFileHandler(dir, name, contentType string, assets *middleware.AssetVersions) echo.HandlerFunc {
	path := filepath.Join(dir, name)
	return func(c echo.Context) error {
		etag := assets.ETag(name)
		if etag != "" && etagMatches(c.Request().Header.Get("If-None-Match"), etag) {
			return c.NoContent(http.StatusNotModified)
		}

		file, err := os.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return c.String(http.StatusNotFound, "Not Found")
			}
			log.Printf("[ERROR] Failed to open static file %s: %v", path, err)
			return c.String(http.StatusInternalServerError, "Internal Server Error")
		}
		defer file.Close()

		info, err := file.Stat()
		if err != nil || info.IsDir() {
			log.Printf("[ERROR] Static path %s is not a readable file: %v", path, err)
			return c.String(http.StatusInternalServerError, "Internal Server Error")
		}

		if etag != "" {
			c.Response().Header().Set("ETag", etag)
		}
		return c.Stream(http.StatusOK, contentType, file)
	}
}
