package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fusus-cli/internal/client"
	"fusus-cli/internal/contacts"
	"fusus-cli/internal/health"
	"fusus-cli/internal/report"
	"fusus-cli/internal/token"
)

var (
	healthInput   string
	healthShowMAC bool
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Cross-check core connectivity and draft outage emails",
}

var healthReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Cross-check Balena and Fusus status for the daily report",
	Long: `Reads tab-separated report lines (core_id, org, location,
offline_time, camera_count) from a file or stdin, queries both backends for
each core, and drafts the outage email for cores both agree are offline.
Disagreements are listed as conflicts instead of emailed.`,
	Example: `  fusus-cli health report --input offline_cores.tsv
  pbpaste | fusus-cli health report --mac`,
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := readHealthEntries()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if len(entries) == 0 {
			fmt.Println("No report entries to check.")
			return
		}

		balenaToken := viper.GetString("balena_token")
		if balenaToken == "" {
			fmt.Println("Error: balena_token is not configured (set it in ~/.fusus-cli.yaml or the BALENA_TOKEN env var).")
			os.Exit(1)
		}
		balena := client.NewBalena(viper.GetString("balena_base_url"), balenaToken)
		fusus := apiClient(token.ProfilePrimary)

		var confirmed []health.Entry
		var conflicts []health.CheckResult

		fmt.Println("Cross-checking Balena and Fusus status...")
		for _, entry := range entries {
			dev, err := balena.DeviceStatus(entry.CoreID)
			if err != nil {
				fmt.Printf("Balena lookup failed for %s: %v\n", entry.CoreID, err)
			}
			status, err := fusus.CoreStatus(entry.CoreID)
			if err != nil {
				fmt.Printf("Fusus lookup failed for %s: %v\n", entry.CoreID, err)
			}

			result := health.Check(entry, health.BalenaState(dev), health.FususState(status))
			fmt.Printf("  %s: balena=%s fusus=%s -> %s\n",
				entry.CoreID, result.Balena, result.Fusus, result.Outcome)

			switch result.Outcome {
			case health.OutcomeConfirmedOffline:
				confirmed = append(confirmed, entry)
			case health.OutcomeConflict:
				conflicts = append(conflicts, result)
			}

			if healthShowMAC && dev != nil {
				printMACVars(balena, entry.CoreID, dev.ID)
			}
		}

		if len(conflicts) > 0 {
			fmt.Println("\nConflicts detected:")
			for _, c := range conflicts {
				fmt.Printf(" - %s %s %s: %s\n", c.Entry.CoreID, c.Entry.Org, c.Entry.Location, c.ConflictDetail())
			}
		}

		email := draftEmail(fusus, confirmed)
		fmt.Println("\nGenerated Email:")
		fmt.Println()
		fmt.Println(email.String())
	},
}

func readHealthEntries() ([]health.Entry, error) {
	var r io.Reader = os.Stdin
	if healthInput != "" {
		f, err := os.Open(healthInput)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	return health.ParseEntries(r)
}

func printMACVars(balena *client.BalenaClient, coreID string, deviceID int64) {
	serviceIDs, err := balena.DeviceServiceIDs(deviceID)
	if err != nil {
		fmt.Printf("  MAC vars unavailable for %s: %v\n", coreID, err)
		return
	}
	vars, err := balena.ServiceEnvVars(serviceIDs)
	if err != nil {
		fmt.Printf("  MAC vars unavailable for %s: %v\n", coreID, err)
		return
	}
	check, scan := vars["CAMERA_MAC_CHECK"], vars["CAMERA_MAC_SCAN_TYPE"]
	if check == "" {
		check = "Not set"
	}
	if scan == "" {
		scan = "Not set"
	}
	fmt.Printf("    CAMERA_MAC_CHECK:     %s\n    CAMERA_MAC_SCAN_TYPE: %s\n", check, scan)
}

// draftEmail resolves contacts from both sources before formatting: the
// vendor-side location contact and the local POC directory. Either may be
// missing; the generator handles the fallback notice.
func draftEmail(fusus *client.Client, confirmed []health.Entry) report.Email {
	if len(confirmed) == 0 {
		return report.OfflineEmail(nil, nil, nil)
	}

	org := confirmed[0].Org
	vendorContact, err := fusus.LocationContact(confirmed[0].Location, org)
	if err != nil {
		fmt.Printf("Location contact lookup failed: %v\n", err)
	}

	var localContacts []contacts.Contact
	store, err := contacts.Open(viper.GetString("contacts_db"))
	if err != nil {
		fmt.Printf("Contacts db unavailable: %v\n", err)
	} else {
		defer store.Close()
		if localContacts, err = store.ByOrg(org); err != nil {
			fmt.Printf("Contacts lookup failed: %v\n", err)
		}
	}

	return report.OfflineEmail(confirmed, vendorContact, localContacts)
}

func init() {
	rootCmd.AddCommand(healthCmd)
	healthCmd.AddCommand(healthReportCmd)

	healthReportCmd.Flags().StringVar(&healthInput, "input", "", "TSV input file (default stdin)")
	healthReportCmd.Flags().BoolVar(&healthShowMAC, "mac", false, "Show CAMERA_MAC_* service variables per core")
}
