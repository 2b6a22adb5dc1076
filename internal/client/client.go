// Package client wraps the Fusus REST APIs: a resty client carrying the
// bearer credential, a sequential paginated fetcher with refresh-and-retry,
// and one file of resource operations per endpoint family.
package client

import (
	"time"

	"github.com/go-resty/resty/v2"

	"fusus-cli/internal/token"
)

const (
	defaultTimeout = 30 * time.Second
	origin         = "https://fususone.com"
)

// Client is an authenticated handle on one Fusus API host. The credential
// is passed in explicitly and mutated in place on refresh so the caller can
// inspect Cred.Refreshed and decide whether to persist.
type Client struct {
	HTTP *resty.Client
	Cred *token.Credential

	refreshBase string
	store       *token.Store
	profile     token.Profile
}

// New builds a client for baseURL using cred for authorization.
func New(baseURL string, cred *token.Credential) *Client {
	r := resty.New()
	r.SetBaseURL(baseURL)
	r.SetTimeout(defaultTimeout)
	r.SetHeader("Accept", "application/json")
	r.SetHeader("Origin", origin)
	r.SetHeader("Authorization", cred.Token)

	return &Client{
		HTTP:        r,
		Cred:        cred,
		refreshBase: baseURL,
	}
}

// WithPersistence saves refreshed tokens back through the store so the next
// run starts from the newest credential.
func (c *Client) WithPersistence(s *token.Store, p token.Profile) *Client {
	c.store = s
	c.profile = p
	return c
}

// WithRefreshBase points token refreshes at a different host. The LPR API
// authenticates against the main API's refresh endpoint.
func (c *Client) WithRefreshBase(baseURL string) *Client {
	c.refreshBase = baseURL
	return c
}

// refreshCredential swaps in a fresh token. Failure is not an error here:
// the caller keeps retrying with the token it has and surfaces the 401 if
// it never clears.
func (c *Client) refreshCredential() bool {
	newTok, ok := token.Refresh(c.refreshBase, c.Cred.Token)
	if !ok {
		return false
	}
	c.Cred.Token = newTok
	c.Cred.Refreshed = true
	c.HTTP.SetHeader("Authorization", newTok)
	if c.store != nil {
		_ = c.store.Save(c.profile, newTok)
	}
	return true
}
