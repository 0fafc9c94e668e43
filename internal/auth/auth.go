// Package auth guards the gateway with an optional static bearer
// token. When no token is configured the gateway runs open, which is
// the expected mode for local and single-tenant deployments.
package auth

import (
	"errors"
	"net/http"
	"os"
	"strings"
)

var (
	ErrMissingBearer = errors.New("missing bearer token")
	ErrInvalidToken  = errors.New("invalid token")
)

type Claims struct {
	Subject string
	Token   string
}

type Authenticator interface {
	Authenticate(r *http.Request) (Claims, error)
}

// TokenAuthenticator checks requests against a single static token.
// An empty token disables authentication entirely.
type TokenAuthenticator struct {
	DevToken string
}

func NewAuthenticatorFromEnv() *TokenAuthenticator {
	return &TokenAuthenticator{DevToken: os.Getenv("MAKAO_DEV_TOKEN")}
}

func (a *TokenAuthenticator) Authenticate(r *http.Request) (Claims, error) {
	if a.DevToken == "" {
		return Claims{Subject: "anonymous"}, nil
	}

	bearer, err := extractBearer(r)
	if err != nil {
		return Claims{}, err
	}
	if bearer != a.DevToken {
		return Claims{}, ErrInvalidToken
	}
	return Claims{Subject: "dev", Token: bearer}, nil
}

func extractBearer(r *http.Request) (string, error) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", ErrMissingBearer
	}
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", ErrInvalidToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	if token == "" {
		return "", ErrInvalidToken
	}
	return token, nil
}
