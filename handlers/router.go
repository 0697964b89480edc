package handlers

import (
	"github.com/cric2000/calenderService/config"
	"github.com/cric2000/calenderService/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// RouterOptions carries the collaborators NewRouter wires in
type RouterOptions struct {
	Config *config.Config
	Assets *middleware.AssetVersions
	// Limiter guards the date endpoints; nil disables rate limiting
	Limiter *middleware.RateLimiter
}

// NewRouter builds the echo instance with all routes and middleware.
// Routes accept any method.
func NewRouter(opts RouterOptions) *echo.Echo {
	cfg := opts.Config

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = JSONErrorHandler

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Date arithmetic
	var dateMiddleware []echo.MiddlewareFunc
	if opts.Limiter != nil {
		dateMiddleware = append(dateMiddleware, opts.Limiter.Middleware())
	}
	e.Any("/add", AddDateHandler, dateMiddleware...)
	e.Any("/sub", SubDateHandler, dateMiddleware...)

	// Front-end assets
	e.Any("/", StaticFileHandler(cfg.StaticDir, IndexFile, "text/html", opts.Assets))
	e.Any("/favicon.ico", StaticFileHandler(cfg.StaticDir, FaviconFile, "image/x-icon", opts.Assets))
	e.Any("/logo.jpg", StaticFileHandler(cfg.StaticDir, LogoFile, "image/png", opts.Assets))

	return e
}
