package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/news-backend/internal/core/ports"
)

// UserHandler handles account self-service requests.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// UpdatePassword handles PATCH /api/User/password-update.
//
// @Summary      Update the caller's password
// @Tags         user
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  passwordUpdateRequest  true  "Current and new password"
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/User/password-update [patch]
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req passwordUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdatePassword(c.Request().Context(), ident, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}
