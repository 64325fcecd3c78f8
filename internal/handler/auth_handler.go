package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/service"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Request/Response types

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// RegisterPublicRoutes registers routes that don't require a session.
func (h *AuthHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/auth/login", h.Login)
}

// RegisterProtectedRoutes registers routes that require a session.
func (h *AuthHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/auth/logout", h.Logout)
}

// Login checks the configured credentials and mints a session token.
// @Summary Login
// @Description Check credentials and get a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "Login credentials"
// @Success 200 {object} loginResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	token, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

// Logout invalidates the current session token.
// @Summary Logout
// @Description Invalidate the current session token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := bearerToken(c)
	if token != "" {
		h.service.Logout(token)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
