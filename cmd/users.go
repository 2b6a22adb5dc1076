package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"fusus-cli/internal/client"
	"fusus-cli/internal/token"
	"fusus-cli/pkg/models"
)

var (
	usersOldDomain string
	usersNewDomain string
	usersDryRun    bool
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Bulk user maintenance",
}

var usersMigrateCmd = &cobra.Command{
	Use:   "migrate-domain",
	Short: "Rewrite user email domains",
	Long: `Fetches every user, selects the ones whose address ends with the
old domain, and PATCHes each with the new domain. The vendor requires the
complete record on update, so each user is resent in full. One failure does
not stop the batch.`,
	Example: `  fusus-cli users migrate-domain --old @cobbcounty.org --new @cobbcounty.gov --dry-run`,
	Run: func(cmd *cobra.Command, args []string) {
		oldDomain := normalizeDomain(usersOldDomain)
		newDomain := normalizeDomain(usersNewDomain)
		if oldDomain == "" || newDomain == "" || oldDomain == newDomain {
			fmt.Println("Error: --old and --new must be distinct domains like @example.org")
			os.Exit(1)
		}

		api := apiClient(token.ProfilePrimary)

		fmt.Println("Fetching all users...")
		users, err := api.FetchAllUsers()
		if err != nil {
			fmt.Printf("Error fetching users: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Total users fetched: %d\n", len(users))

		matched := client.MatchingUsers(users, oldDomain)
		fmt.Printf("Users matching %q: %d\n", oldDomain, len(matched))

		if usersDryRun {
			for _, u := range matched {
				fmt.Printf("  %s -> %s\n", u.Email, client.RewriteDomain(u.Email, oldDomain, newDomain))
			}
			return
		}

		result := api.MigrateDomain(users, oldDomain, newDomain, func(u models.User, newEmail string, err error) {
			if err != nil {
				fmt.Printf("Failed to update %s: %v\n", u.FullName(), err)
			} else {
				fmt.Printf("Updated %s: %s -> %s\n", u.FullName(), u.Email, newEmail)
			}
		})
		fmt.Printf("Done: %d matched, %d updated, %d failed.\n", result.Matched, result.Updated, result.Failed)
		if result.Failed > 0 {
			os.Exit(1)
		}
	},
}

func normalizeDomain(d string) string {
	d = strings.TrimSpace(d)
	if d == "" {
		return ""
	}
	if !strings.HasPrefix(d, "@") {
		d = "@" + d
	}
	return strings.ToLower(d)
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersMigrateCmd)

	usersMigrateCmd.Flags().StringVar(&usersOldDomain, "old", "", "Old email domain (e.g. @cobbcounty.org)")
	usersMigrateCmd.Flags().StringVar(&usersNewDomain, "new", "", "New email domain (e.g. @cobbcounty.gov)")
	usersMigrateCmd.Flags().BoolVar(&usersDryRun, "dry-run", false, "List the rewrites without patching anyone")
	_ = usersMigrateCmd.MarkFlagRequired("old")
	_ = usersMigrateCmd.MarkFlagRequired("new")
}
