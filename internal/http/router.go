package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "lingua/backend/docs"
	"lingua/backend/internal/handler"
	"lingua/backend/internal/service"
)

func NewRouter(
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	translateHandler *handler.TranslateHandler,
	speechHandler *handler.SpeechHandler,
	historyHandler *handler.HistoryHandler,
	ingestHandler *handler.IngestHandler,
	exportHandler *handler.ExportHandler,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	authHandler.RegisterPublicRoutes(api)

	protected := api.Group("", TokenAuthMiddleware(authService))
	authHandler.RegisterProtectedRoutes(protected)
	translateHandler.RegisterRoutes(protected)
	speechHandler.RegisterRoutes(protected)
	historyHandler.RegisterRoutes(protected)
	ingestHandler.RegisterRoutes(protected)
	exportHandler.RegisterRoutes(protected)

	registerStatic(e, staticDir)

	return e
}
