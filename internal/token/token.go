// Package token manages the file-backed bearer credentials used against the
// Fusus API. Tokens are stored and transmitted with the literal "JWT "
// scheme marker; the refresh endpoint wants the bare value.
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Prefix is the scheme marker carried by every stored token.
const Prefix = "JWT "

// Credential is the in-memory token passed explicitly into API clients.
// Refreshed tells the caller whether the token changed during the run, so
// persistence is an explicit choice rather than a side effect.
type Credential struct {
	Token     string
	Refreshed bool
}

// Normalize adds the scheme marker when missing.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, Prefix) {
		return raw
	}
	return Prefix + raw
}

// Bare strips the scheme marker.
func Bare(tok string) string {
	return strings.TrimPrefix(tok, Prefix)
}

// ExpiresAt decodes the exp claim without verifying the signature. Display
// only; the API is the authority on whether a token is still valid.
func ExpiresAt(tok string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(Bare(tok), claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no exp claim")
	}
	return exp.Time, nil
}
