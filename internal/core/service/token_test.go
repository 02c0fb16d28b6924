package service

import (
	"errors"
	"testing"
	"time"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	token, err := codec.Sign(TokenClaims{ID: "u1", Email: "alice@example.com", Role: "admin"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.ID != "u1" || claims.Email != "alice@example.com" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := NewTokenCodec("secret", -time.Minute)

	token, err := codec.Sign(TokenClaims{ID: "u1", Email: "a@x.com", Role: "user"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)
	token, err := codec.Sign(TokenClaims{ID: "u1", Email: "a@x.com", Role: "user"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := DecodeToken("other-secret", token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestDecodeToken_Malformed(t *testing.T) {
	if _, err := DecodeToken("secret", "not-a-token"); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}
