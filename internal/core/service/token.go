package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures. Callers needing a uniform denial can treat
// them identically; the messages still distinguish the cause for logs.
var (
	ErrTokenExpired   = errors.New("token is expired")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenInvalid   = errors.New("token is invalid")
)

// TokenClaims is the application payload carried by a session token.
type TokenClaims struct {
	ID    string
	Email string
	Role  string
}

// TokenCodec signs and verifies HS256 session tokens. It is a pure function
// of payload, secret and clock; nothing is persisted.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Sign produces a compact JWS carrying the claims plus iat/exp.
func (tc *TokenCodec) Sign(claims TokenClaims) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    claims.ID,
		"email": claims.Email,
		"role":  claims.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(tc.ttl).Unix(),
	})
	return t.SignedString(tc.secret)
}

// Verify decodes and validates a token produced by Sign.
func (tc *TokenCodec) Verify(token string) (TokenClaims, error) {
	return DecodeToken(string(tc.secret), token)
}

// DecodeToken verifies a session token against the given secret. It is
// usable without a TokenCodec instance so the authorization middleware can
// validate tokens with only the configured secret in hand.
func DecodeToken(secret, token string) (TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return TokenClaims{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return TokenClaims{}, ErrTokenMalformed
		default:
			return TokenClaims{}, ErrTokenInvalid
		}
	}
	if !tkn.Valid {
		return TokenClaims{}, ErrTokenInvalid
	}

	id, _ := claims["id"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return TokenClaims{ID: id, Email: email, Role: role}, nil
}
