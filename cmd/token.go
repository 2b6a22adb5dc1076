package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fusus-cli/internal/token"
)

var tokenProfile string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage stored API tokens",
	Long: `Each workflow profile (primary, support, one) keeps its own token
file. Tokens are stored with the "JWT " scheme marker and refreshed
against the vendor endpoint.`,
}

var tokenSetCmd = &cobra.Command{
	Use:     "set <token>",
	Short:   "Store a token for a profile",
	Args:    cobra.ExactArgs(1),
	Example: `  fusus-cli token set "eyJhbGciOi..." --profile primary`,
	Run: func(cmd *cobra.Command, args []string) {
		profile := parseProfileFlag(tokenProfile)
		store := tokenStore()

		tok := token.Normalize(args[0])
		if tok == "" {
			fmt.Println("Error: empty token.")
			os.Exit(1)
		}
		if err := store.Save(profile, tok); err != nil {
			fmt.Printf("Error saving token: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Token saved to %s\n", store.Path(profile))
	},
}

var tokenShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored token's file and expiry",
	Run: func(cmd *cobra.Command, args []string) {
		profile := parseProfileFlag(tokenProfile)
		store := tokenStore()
		tok := mustLoadToken(store, profile)

		fmt.Printf("Profile: %s\nFile:    %s\n", profile, store.Path(profile))
		if exp, err := token.ExpiresAt(tok); err == nil {
			fmt.Printf("Expires: %s\n", exp.UTC().Format("Jan 02, 03:04 PM MST"))
		} else {
			fmt.Printf("Expires: unknown (%v)\n", err)
		}
	},
}

var tokenRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh the stored token now",
	Run: func(cmd *cobra.Command, args []string) {
		profile := parseProfileFlag(tokenProfile)
		store := tokenStore()
		tok := mustLoadToken(store, profile)

		newTok, ok := token.Refresh(viper.GetString("api_base_url"), tok)
		if !ok {
			fmt.Println("Token refresh failed; keeping the stored token.")
			os.Exit(1)
		}
		if err := store.Save(profile, newTok); err != nil {
			fmt.Printf("Error saving refreshed token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Token refreshed successfully.")
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenSetCmd)
	tokenCmd.AddCommand(tokenShowCmd)
	tokenCmd.AddCommand(tokenRefreshCmd)

	tokenCmd.PersistentFlags().StringVar(&tokenProfile, "profile", "primary", "Token profile: primary, support or one")
}
