package token

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// RefreshPath is the vendor endpoint that exchanges a bare token for a
// fresh one.
const RefreshPath = "/api/auth/jwt/refresh/"

type refreshResponse struct {
	Token string `json:"token"`
}

// Refresh POSTs the bare token to the refresh endpoint and returns a new
// prefixed token. It never returns an error: on any network, HTTP or
// missing-field failure the second result is false and the caller keeps
// using the token it had. An expired token then fails fast with 401, which
// the fetcher handles with its own refresh-and-retry path.
func Refresh(baseURL, tok string) (string, bool) {
	httpc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Origin", "https://fususone.com")

	var result refreshResponse
	resp, err := httpc.R().
		SetBody(map[string]string{"token": Bare(tok)}).
		SetResult(&result).
		Post(RefreshPath)
	if err != nil || resp.IsError() || result.Token == "" {
		return "", false
	}
	return Prefix + result.Token, true
}
