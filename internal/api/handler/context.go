package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/news-backend/internal/api/middleware"
	"github.com/newsdesk/news-backend/internal/core/domain"
)

// ctxIdentity extracts the verified identity injected by the Auth middleware
// and fails closed before any service call: a missing or zero identity means
// the middleware did not run, so the request is rejected with 401 rather than
// falling through with a default user.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	ident, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok || ident.UserID <= 0 {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ident, nil
}
