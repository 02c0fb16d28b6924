package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/directory-api/internal/api/middleware"
	"github.com/staffdesk/directory-api/internal/core/domain"
	"github.com/staffdesk/directory-api/internal/core/ports"
)

type stubUserService struct {
	users     map[string]*domain.User
	signIn    *ports.SignInResult
	signInErr error
}

func (s *stubUserService) Create(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return &domain.User{ID: "u1", Name: input.Name, Email: input.Email, Role: domain.RoleUser}, nil
}

func (s *stubUserService) SignIn(_ context.Context, _, _ string) (*ports.SignInResult, error) {
	return s.signIn, s.signInErr
}

func (s *stubUserService) GetInfo(_ context.Context, id string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserService) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *stubUserService) Update(_ context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	u, ok := s.users[input.ID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserService) Delete(_ context.Context, id string) error {
	if _, ok := s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	return nil
}

func jsonContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestUserHandler_SignIn_Success(t *testing.T) {
	svc := &stubUserService{signIn: &ports.SignInResult{Token: "tok", Role: domain.RoleAdmin, ID: "u1"}}
	h := NewUserHandler(svc)

	c, rec := jsonContext(http.MethodPost, "/signin", `{"email":"alice@example.com","password":"pass123"}`)
	if err := h.SignIn(c); err != nil {
		t.Fatalf("signin: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Fatalf("expected success envelope")
	}
	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %T", env.Data)
	}
	if data["token"] != "tok" || data["role"] != domain.RoleAdmin || data["id"] != "u1" {
		t.Fatalf("unexpected sign-in data: %v", data)
	}
}

func TestUserHandler_SignIn_Failure(t *testing.T) {
	svc := &stubUserService{signInErr: domain.ErrInvalidCredentials}
	h := NewUserHandler(svc)

	c, _ := jsonContext(http.MethodPost, "/signin", `{"email":"alice@example.com","password":"wrong"}`)
	err := h.SignIn(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserHandler_SignIn_MissingFields(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := jsonContext(http.MethodPost, "/signin", `{"email":"alice@example.com"}`)
	err := h.SignIn(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUserHandler_GetInfo_UsesSubjectFromContext(t *testing.T) {
	me := &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleAdmin}
	svc := &stubUserService{users: map[string]*domain.User{"u1": me}}
	h := NewUserHandler(svc)

	c, rec := jsonContext(http.MethodPost, "/users/get-info", "")
	middleware.SetIdentity(c, middleware.Identity{UserID: "u1", Role: domain.RoleAdmin})

	if err := h.GetInfo(c); err != nil {
		t.Fatalf("get info: %v", err)
	}

	env := decodeEnvelope(t, rec)
	data, _ := env.Data.(map[string]any)
	if data["id"] != "u1" || data["email"] != "alice@example.com" {
		t.Fatalf("unexpected data: %v", data)
	}
	// PasswordHash has json:"-": it must never appear in responses.
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password material leaked: %s", rec.Body.String())
	}
}

func TestUserHandler_GetInfo_WithoutIdentity(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := jsonContext(http.MethodPost, "/users/get-info", "")
	err := h.GetInfo(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	h := NewUserHandler(&stubUserService{users: map[string]*domain.User{}})

	c, _ := jsonContext(http.MethodDelete, "/users", `{"id":"missing"}`)
	err := h.Delete(c)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
