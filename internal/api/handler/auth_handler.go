package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/news-backend/internal/core/ports"
)

// AuthHandler handles login and the token introspection endpoints.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates a user and returns a signed bearer token.
//
// @Summary      Login with username and password
// @Tags         login
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {string}  string
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/Login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, token)
}

// Username returns the username carried in the caller's token.
//
// @Summary      Get the caller's username
// @Tags         login
// @Produce      json
// @Security     BearerAuth
// @Success      200  {string}  string
// @Router       /api/Login/GetUsername [get]
func (h *AuthHandler) Username(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ident.Username)
}

// Role returns whether the caller's token carries the admin role.
//
// @Summary      Get the caller's admin flag
// @Tags         login
// @Produce      json
// @Security     BearerAuth
// @Success      200  {boolean}  boolean
// @Router       /api/Login/GetRole [get]
func (h *AuthHandler) Role(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ident.IsAdmin())
}

// ID returns the user id carried in the caller's token.
//
// @Summary      Get the caller's user id
// @Tags         login
// @Produce      json
// @Security     BearerAuth
// @Success      200  {integer}  int
// @Router       /api/Login/GetId [get]
func (h *AuthHandler) ID(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ident.UserID)
}
