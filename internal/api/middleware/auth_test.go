package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/directory-api/internal/core/domain"
	"github.com/staffdesk/directory-api/internal/core/service"
)

type stubIdentityLoader struct {
	users map[string]*domain.User
}

func (s *stubIdentityLoader) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func signToken(t *testing.T, secret string, ttl time.Duration, user *domain.User) string {
	t.Helper()
	token, err := service.NewTokenCodec(secret, ttl).Sign(service.TokenClaims{
		ID: user.ID, Email: user.Email, Role: user.Role,
	})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func gateContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func denialStatus(t *testing.T, err error) (int, string) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	msg, _ := he.Message.(string)
	return he.Code, msg
}

func TestAuthorized_ForwardsWithIdentity(t *testing.T) {
	admin := &domain.User{ID: "u1", Email: "alice@example.com", Role: domain.RoleAdmin}
	loader := &stubIdentityLoader{users: map[string]*domain.User{admin.Email: admin}}
	token := signToken(t, "secret", time.Hour, admin)

	c, rec := gateContext("Bearer " + token)

	called := false
	handler := Authorized(loader, "secret", domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		identity, ok := IdentityFrom(c)
		if !ok {
			t.Fatalf("identity not attached")
		}
		if identity.UserID != "u1" || identity.Role != domain.RoleAdmin {
			t.Fatalf("unexpected identity: %+v", identity)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

// An empty role set means authenticated-only: any valid account passes.
func TestAuthorized_EmptyRoleSet(t *testing.T) {
	user := &domain.User{ID: "u2", Email: "bob@example.com", Role: domain.RoleUser}
	loader := &stubIdentityLoader{users: map[string]*domain.User{user.Email: user}}
	token := signToken(t, "secret", time.Hour, user)

	c, _ := gateContext("Bearer " + token)

	called := false
	handler := Authorized(loader, "secret")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

// Every rejection path returns 401. Apart from the token-verify detail, the
// message is identical so responses do not reveal why access was denied.
func TestAuthorized_UniformDenial(t *testing.T) {
	admin := &domain.User{ID: "u1", Email: "alice@example.com", Role: domain.RoleAdmin}
	user := &domain.User{ID: "u2", Email: "bob@example.com", Role: domain.RoleUser}
	loader := &stubIdentityLoader{users: map[string]*domain.User{
		admin.Email: admin,
		user.Email:  user,
	}}

	ghost := &domain.User{ID: "u9", Email: "ghost@example.com", Role: domain.RoleAdmin}

	cases := []struct {
		name    string
		header  string
		wantMsg string
	}{
		{"missing header", "", "Unauthorized"},
		{"wrong scheme", "Token abc", "Unauthorized"},
		{"not a token", "Bearer not-a-token", "Unauthorized: token is malformed"},
		{"expired token", "Bearer " + signToken(t, "secret", -time.Minute, admin), "Unauthorized: token is expired"},
		{"wrong secret", "Bearer " + signToken(t, "other", time.Hour, admin), "Unauthorized: token is invalid"},
		{"unknown identity", "Bearer " + signToken(t, "secret", time.Hour, ghost), "Unauthorized"},
		{"role not allowed", "Bearer " + signToken(t, "secret", time.Hour, user), "Unauthorized"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gateContext(tc.header)

			handler := Authorized(loader, "secret", domain.RoleAdmin)(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			err := handler(c)
			if err == nil {
				t.Fatalf("expected denial")
			}
			code, msg := denialStatus(t, err)
			if code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", code)
			}
			if msg != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, msg)
			}
			if _, ok := IdentityFrom(c); ok {
				t.Fatalf("identity attached on denied request")
			}
		})
	}
}
