package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fusus-cli/internal/client"
	"fusus-cli/internal/token"
	"fusus-cli/pkg/models"
)

var (
	locOrgName   string
	locNames     string
	locLive      bool
	locPlayback  bool
	locPTZ       bool
	locAdminOnly bool
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Share locations with other organizations",
}

var locationsShareCmd = &cobra.Command{
	Use:   "share",
	Short: "Grant another organization access to locations",
	Long: `Resolves the target organization (support directory first, then the
primary listing) and the named locations, then issues one share grant per
location with the requested access options. A location that is already
shared with the organization counts as success.`,
	Example: `  fusus-cli locations share --org "Fulton County" --locations "City Hall,Substation 4" --live --playback`,
	Run: func(cmd *cobra.Command, args []string) {
		names := splitCSVFlag(locNames)
		if len(names) == 0 {
			fmt.Println("Error: --locations must name at least one location.")
			os.Exit(1)
		}

		one := apiClient(token.ProfileOne)
		support := supportClientIfAvailable()

		fmt.Println("Looking up organization and location IDs...")
		org, err := client.ResolveOrg(support, one, locOrgName)
		if err != nil {
			fmt.Printf("Error resolving organization: %v\n", err)
			os.Exit(1)
		}
		if org == nil {
			fmt.Printf("Target organization %q not found. Aborting.\n", locOrgName)
			os.Exit(1)
		}

		all, err := one.FetchAllLocations()
		if err != nil {
			fmt.Printf("Error fetching locations (matched against %d fetched): %v\n", len(all), err)
		}
		matched, notFound := client.ResolveLocations(all, names)
		if len(matched) == 0 {
			fmt.Println("No valid locations found. Aborting.")
			os.Exit(1)
		}

		fmt.Printf("Organization found: %s (ID: %d)\n", org.Name, org.ID)
		fmt.Println("Locations to be shared:")
		for name, loc := range matched {
			fmt.Printf(" - %s -> %s (ID: %d)\n", name, loc.Name, loc.ID)
		}
		for _, name := range notFound {
			fmt.Printf(" - %s: not found or not owned by your org, skipping\n", name)
		}

		perms := models.SharePermissions{
			ViewLiveVideo:    locLive,
			ViewPlayback:     locPlayback,
			EnablePtzControl: locPTZ,
			IsAdminOnly:      locAdminOnly,
		}

		failures := 0
		for name, loc := range matched {
			if err := one.ShareLocation(loc.ID, org.ID, perms); err != nil {
				fmt.Printf("Failed to share %q: %v\n", name, err)
				failures++
				continue
			}
			fmt.Printf("Shared location %q successfully.\n", name)
		}
		if failures > 0 {
			os.Exit(1)
		}
	},
}

// supportClientIfAvailable returns nil when no support token is stored; org
// resolution then goes straight to the fallback listing.
func supportClientIfAvailable() *client.Client {
	store := tokenStore()
	tok, err := store.Load(token.ProfileSupport)
	if err != nil {
		return nil
	}
	cred := &token.Credential{Token: token.Normalize(tok)}
	return client.New(viper.GetString("api_base_url"), cred).
		WithPersistence(store, token.ProfileSupport)
}

func init() {
	rootCmd.AddCommand(locationsCmd)
	locationsCmd.AddCommand(locationsShareCmd)

	locationsShareCmd.Flags().StringVar(&locOrgName, "org", "", "Target organization name")
	locationsShareCmd.Flags().StringVar(&locNames, "locations", "", "Comma-separated location names to share")
	locationsShareCmd.Flags().BoolVar(&locLive, "live", false, "Allow live video")
	locationsShareCmd.Flags().BoolVar(&locPlayback, "playback", false, "Allow playback access")
	locationsShareCmd.Flags().BoolVar(&locPTZ, "ptz", false, "Allow PTZ control")
	locationsShareCmd.Flags().BoolVar(&locAdminOnly, "admin-only", false, "Restrict to admin-only access")
	_ = locationsShareCmd.MarkFlagRequired("org")
	_ = locationsShareCmd.MarkFlagRequired("locations")
}
