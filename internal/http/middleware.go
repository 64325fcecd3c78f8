package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/logger"
	"lingua/backend/internal/service"
)

// AuthCookieName is the name of the session cookie.
const AuthCookieName = "lingua_auth"

// RequestLoggerMiddleware logs HTTP requests using logger.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			latency := time.Since(start)

			args := []any{
				"module", "http",
				"action", "request",
				"resource", "http",
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", res.Status,
				"duration_ms", latency.Milliseconds(),
				"remote_ip", c.RealIP(),
			}

			switch {
			case res.Status >= 500:
				logger.Error("http request", append(args, "result", "failed")...)
			case res.Status >= 400:
				logger.Warn("http request", append(args, "result", "failed")...)
			default:
				logger.Debug("http request", append(args, "result", "ok")...)
			}

			return nil
		}
	}
}

// TokenAuthMiddleware validates session tokens from the Authorization
// header or the session cookie.
func TokenAuthMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var token string

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
					token = parts[1]
				}
			}

			if token == "" {
				if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie.Value != "" {
					token = cookie.Value
				}
			}

			if !authService.ValidateToken(token) {
				logger.Warn("auth rejected",
					"module", "http",
					"action", "request",
					"resource", "auth",
					"result", "failed",
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"remote_ip", c.RealIP(),
				)
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "missing or invalid session",
				})
			}

			return next(c)
		}
	}
}
