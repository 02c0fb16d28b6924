package middleware

import "github.com/labstack/echo/v4"

// Identity is the request-scoped authorization context set by Authorized.
// It lives only for the duration of one request; handlers read it through
// IdentityFrom instead of poking at raw context keys.
type Identity struct {
	UserID string
	Role   string
}

const identityKey = "auth.identity"

// SetIdentity attaches an identity to the request. The gate calls this after
// a successful role check; tests use it to simulate a gated request.
func SetIdentity(c echo.Context, id Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the identity attached by the Authorized middleware.
// ok is false when the route was not gated.
func IdentityFrom(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}
