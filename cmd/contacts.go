package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fusus-cli/internal/contacts"
)

var (
	contactOrg   string
	contactName  string
	contactEmail string
	contactPhone string
	contactInput string
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Maintain the local POC directory",
	Long: `A small sqlite directory of points of contact, keyed by
(organization, name). The health report appends matching contacts to its
outage emails.`,
}

func openContacts() *contacts.Store {
	store, err := contacts.Open(viper.GetString("contacts_db"))
	if err != nil {
		fmt.Printf("Error opening contacts db: %v\n", err)
		os.Exit(1)
	}
	return store
}

var contactsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or update one contact",
	Run: func(cmd *cobra.Command, args []string) {
		store := openContacts()
		defer store.Close()

		c := contacts.Contact{
			Org:   contactOrg,
			Name:  contactName,
			Email: contactEmail,
			Phone: contactPhone,
		}
		if err := store.Upsert(c); err != nil {
			fmt.Printf("Error saving contact: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved: %s (%s)\n", c.Name, c.Org)
	},
}

var contactsImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import contacts from 3-line blocks",
	Long: `Reads the help desk's clipboard format: name on one line, email or
phone on the next, then the organization (optionally preceded by a
tab-separated phone). Existing (org, name) rows are overwritten.`,
	Run: func(cmd *cobra.Command, args []string) {
		var r io.Reader = os.Stdin
		if contactInput != "" {
			f, err := os.Open(contactInput)
			if err != nil {
				fmt.Printf("Error opening input: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			r = f
		}

		parsed, err := contacts.ParseBlocks(r)
		if err != nil {
			fmt.Printf("Error parsing input: %v\n", err)
			os.Exit(1)
		}

		store := openContacts()
		defer store.Close()
		for _, c := range parsed {
			if err := store.Upsert(c); err != nil {
				fmt.Printf("Error saving %s/%s: %v\n", c.Org, c.Name, err)
				os.Exit(1)
			}
			fmt.Printf("Saved: %s (%s)\n", c.Name, c.Org)
		}
	},
}

var contactsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts, optionally for one org",
	Run: func(cmd *cobra.Command, args []string) {
		store := openContacts()
		defer store.Close()

		var (
			rows []contacts.Contact
			err  error
		)
		if contactOrg != "" {
			rows, err = store.ByOrg(contactOrg)
		} else {
			rows, err = store.All()
		}
		if err != nil {
			fmt.Printf("Error listing contacts: %v\n", err)
			os.Exit(1)
		}
		if len(rows) == 0 {
			fmt.Println("No POCs found in the database.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ORG\tNAME\tEMAIL\tPHONE")
		fmt.Fprintln(w, "---\t----\t-----\t-----")
		for _, c := range rows {
			email, phone := c.Email, c.Phone
			if email == "" {
				email = "N/A"
			}
			if phone == "" {
				phone = "N/A"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Org, c.Name, email, phone)
		}
		w.Flush()
	},
}

var contactsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete one contact by org and name",
	Run: func(cmd *cobra.Command, args []string) {
		store := openContacts()
		defer store.Close()

		if err := store.Delete(contactOrg, contactName); err != nil {
			fmt.Printf("Error deleting contact: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted: %s from %s\n", contactName, contactOrg)
	},
}

func init() {
	rootCmd.AddCommand(contactsCmd)
	contactsCmd.AddCommand(contactsAddCmd)
	contactsCmd.AddCommand(contactsImportCmd)
	contactsCmd.AddCommand(contactsListCmd)
	contactsCmd.AddCommand(contactsDeleteCmd)

	contactsAddCmd.Flags().StringVar(&contactOrg, "org", "", "Organization")
	contactsAddCmd.Flags().StringVar(&contactName, "name", "", "Contact name")
	contactsAddCmd.Flags().StringVar(&contactEmail, "email", "", "Email address")
	contactsAddCmd.Flags().StringVar(&contactPhone, "phone", "", "Phone number")
	_ = contactsAddCmd.MarkFlagRequired("org")
	_ = contactsAddCmd.MarkFlagRequired("name")

	contactsImportCmd.Flags().StringVar(&contactInput, "input", "", "Input file (default stdin)")

	contactsListCmd.Flags().StringVar(&contactOrg, "org", "", "Limit to one organization")

	contactsDeleteCmd.Flags().StringVar(&contactOrg, "org", "", "Organization")
	contactsDeleteCmd.Flags().StringVar(&contactName, "name", "", "Contact name")
	_ = contactsDeleteCmd.MarkFlagRequired("org")
	_ = contactsDeleteCmd.MarkFlagRequired("name")
}
