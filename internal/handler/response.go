package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/audio"
	"lingua/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeServiceError maps service and audio errors onto one user-facing
// failure message per action.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, service.ErrSizeLimit):
		return c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "file too large"})
	case errors.Is(err, service.ErrRead):
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "file could not be read as text"})
	case errors.Is(err, service.ErrRemoteCall):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "translation service unavailable"})
	case errors.Is(err, service.ErrPageFetch):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "page fetch failed"})
	case errors.Is(err, audio.ErrDeviceAccess):
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "microphone unavailable"})
	case errors.Is(err, audio.ErrAlreadyRecording):
		return c.JSON(http.StatusConflict, errorResponse{Error: "recording already in progress"})
	case errors.Is(err, audio.ErrNotRecording):
		return c.JSON(http.StatusConflict, errorResponse{Error: "no recording in progress"})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
