package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/directory-api/internal/api/metrics"
	"github.com/staffdesk/directory-api/internal/core/domain"
	"github.com/staffdesk/directory-api/internal/core/service"
)

// IdentityLoader resolves the account behind a token's email claim.
// ports.UserRepository satisfies it.
type IdentityLoader interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// unauthorized is the uniform denial message. Every rejection (missing
// header, unknown account, wrong role) returns the same 401 so responses
// leak nothing about why access was denied or whether an account exists.
const unauthorized = "Unauthorized"

// Authorized gates a single route. It validates the bearer token, loads the
// account behind its email claim, checks role membership when roles is
// non-empty, and attaches a typed Identity to the request before the
// handler runs. An empty role set means "authenticated only". Routes mix
// public, authenticated and role-gated handlers freely by applying (or not
// applying) this wrapper at registration time.
func Authorized(users IdentityLoader, jwtSecret string, roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return deny("missing_credentials", unauthorized)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return deny("missing_credentials", unauthorized)
			}

			claims, err := service.DecodeToken(jwtSecret, parts[1])
			if err != nil {
				// The status stays uniform; the message carries the verify
				// failure so clients can tell an expired session from a
				// rejected one.
				return deny("bad_token", unauthorized+": "+err.Error())
			}

			user, err := users.FindByEmail(c.Request().Context(), claims.Email)
			if err != nil {
				return deny("unknown_identity", unauthorized)
			}

			if len(allowed) > 0 {
				if _, ok := allowed[user.Role]; !ok {
					return deny("forbidden", unauthorized)
				}
			}

			SetIdentity(c, Identity{UserID: user.ID, Role: user.Role})
			return next(c)
		}
	}
}

func deny(reason, message string) error {
	metrics.AuthDeniedTotal.WithLabelValues(reason).Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, message)
}
