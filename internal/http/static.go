package http

import (
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/logger"
)

// registerStatic serves the built frontend with SPA fallback routing.
func registerStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	indexPath := filepath.Join(dir, "index.html")
	info, err := os.Stat(indexPath)
	if err != nil || info.IsDir() {
		logger.Warn("static index missing", "module", "http", "action", "request", "resource", "http", "result", "failed", "path", indexPath)
		return
	}

	logger.Info("static assets enabled", "module", "http", "action", "request", "resource", "http", "result", "ok", "dir", dir)

	fileServer := nethttp.FileServer(nethttp.Dir(dir))

	e.GET("/*", func(c echo.Context) error {
		requestPath := c.Request().URL.Path
		if requestPath == "/api" || strings.HasPrefix(requestPath, "/api/") {
			return echo.ErrNotFound
		}

		cleanPath := strings.TrimPrefix(path.Clean(requestPath), "/")
		if cleanPath == "." || cleanPath == "" {
			return c.File(indexPath)
		}

		candidate := filepath.Join(dir, cleanPath)
		if fileInfo, err := os.Stat(candidate); err == nil && !fileInfo.IsDir() {
			fileServer.ServeHTTP(c.Response(), c.Request())
			return nil
		}

		// SPA routes fall back to the index page.
		return c.File(indexPath)
	})
}
