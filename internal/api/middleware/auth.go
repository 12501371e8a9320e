package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/newsdesk/news-backend/internal/core/domain"
)

// IdentityKey is the echo context key under which the verified caller
// identity is stored.
const IdentityKey = "identity"

// Auth validates the bearer token and injects the caller identity into the
// context. Any defect in the token, including an unparseable subject,
// rejects the request with 401.
func Auth(secret, issuer, audience string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims,
				func(token *jwt.Token) (interface{}, error) {
					return []byte(secret), nil
				},
				jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
				jwt.WithIssuer(issuer),
				jwt.WithAudience(audience),
				jwt.WithExpirationRequired(),
			)
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			ident, ok := identityFromClaims(claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}

			c.Set(IdentityKey, ident)
			return next(c)
		}
	}
}

func identityFromClaims(claims jwt.MapClaims) (domain.Identity, bool) {
	sub, err := claims.GetSubject()
	if err != nil {
		return domain.Identity{}, false
	}
	userID, err := strconv.Atoi(sub)
	if err != nil || userID <= 0 {
		return domain.Identity{}, false
	}

	username, _ := claims[domain.ClaimUniqueName].(string)
	role, _ := claims[domain.ClaimRole].(string)
	if username == "" || (role != domain.RoleAdmin && role != domain.RoleUser) {
		return domain.Identity{}, false
	}

	return domain.Identity{UserID: userID, Username: username, Role: role}, true
}
