package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"fusus-cli/internal/client"
	"fusus-cli/internal/token"
)

func tokenStore() *token.Store {
	return token.NewStore(viper.GetString("token_dir"))
}

// mustLoadToken exits with guidance when the profile has no stored token.
func mustLoadToken(store *token.Store, profile token.Profile) string {
	tok, err := store.Load(profile)
	if err != nil {
		fmt.Printf("Error: no %s token on file. Run 'fusus-cli token set --profile %s' first.\n", profile, profile)
		os.Exit(1)
	}
	return token.Normalize(tok)
}

// apiClient builds an authenticated client for the main API. The stored
// token is refreshed up front; a failed refresh falls back to the stored
// one, which the fetcher's own 401 path will retry against.
func apiClient(profile token.Profile) *client.Client {
	store := tokenStore()
	tok := mustLoadToken(store, profile)
	base := viper.GetString("api_base_url")

	cred := &token.Credential{Token: tok}
	c := client.New(base, cred).WithPersistence(store, profile)

	if newTok, ok := token.Refresh(base, tok); ok {
		cred.Token = newTok
		cred.Refreshed = true
		c.HTTP.SetHeader("Authorization", newTok)
		_ = store.Save(profile, newTok)
	}
	return c
}

// lprClient targets the LPR host, which shares the main API's auth.
func lprClient(profile token.Profile) *client.Client {
	store := tokenStore()
	tok := mustLoadToken(store, profile)
	apiBase := viper.GetString("api_base_url")

	cred := &token.Credential{Token: tok}
	c := client.New(viper.GetString("lpr_base_url"), cred).
		WithPersistence(store, profile).
		WithRefreshBase(apiBase)

	if newTok, ok := token.Refresh(apiBase, tok); ok {
		cred.Token = newTok
		cred.Refreshed = true
		c.HTTP.SetHeader("Authorization", newTok)
		_ = store.Save(profile, newTok)
	}
	return c
}

func parseProfileFlag(s string) token.Profile {
	p, err := token.ParseProfile(s)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return p
}
