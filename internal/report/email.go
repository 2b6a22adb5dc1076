package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"fusus-cli/internal/contacts"
	"fusus-cli/internal/health"
	"fusus-cli/pkg/models"
)

// NoOfflineNotice replaces the email when nothing was cross-confirmed.
const NoOfflineNotice = "No cores were found offline in both systems."

// Email is a drafted outage notification. It is printed, not sent; the
// operator pastes it into their mail client.
type Email struct {
	Subject string
	Body    string
}

func (e Email) String() string {
	if e.Subject == "" {
		return e.Body
	}
	return "Subject: " + e.Subject + "\n\n" + e.Body
}

// FormatOfflineTime renders the vendor timestamp like "Jan 02, 03:04 PM
// UTC". Unparseable input passes through so the operator still sees it.
func FormatOfflineTime(ts string) string {
	if ts == "" {
		return "N/A"
	}
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return t.UTC().Format("Jan 02, 03:04 PM") + " UTC"
}

// OfflineEmail drafts the notification for cross-confirmed offline cores.
// The subject lists core ids for one or two entries and switches to a
// count-only form at three or more. Either contact source may be absent;
// when both are, the draft says so explicitly instead of going silent.
func OfflineEmail(entries []health.Entry, vendorContact *models.Contact, localContacts []contacts.Contact) Email {
	if len(entries) == 0 {
		return Email{Body: NoOfflineNotice}
	}

	org := entries[0].Org
	if org == "" {
		org = "Unknown Org"
	}
	count := len(entries)
	ids := lo.Map(entries, func(e health.Entry, _ int) string { return e.CoreID })

	locations := lo.Uniq(lo.Map(entries, func(e health.Entry, _ int) string { return e.Location }))
	locInfo := ""
	if len(locations) == 1 {
		locInfo = fmt.Sprintf(" - [%s]", locations[0])
	}

	plural := ""
	verb := "is"
	if count > 1 {
		plural = "s"
		verb = "are"
	}

	var subject string
	if count <= 2 {
		subject = fmt.Sprintf("%d FususCore%s Offline - [%s]%s - %s", count, plural, org, locInfo, strings.Join(ids, " - "))
	} else {
		subject = fmt.Sprintf("%d FususCores Offline - [%s]%s", count, org, locInfo)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello,\n\nOur daily health report indicates that %d Core%s %s offline:\n", count, plural, verb)
	for _, e := range entries {
		fmt.Fprintf(&b, "Core %s at %s has been offline since %s, with %s cameras connected to it.\n",
			e.CoreID, e.Location, FormatOfflineTime(e.OfflineTime), e.CameraCount)
	}
	b.WriteString("\nCould you confirm if there have been any network issues or power outages at the location? " +
		"A simple power cycle of the core might resolve the issue. " +
		"If you require any assistance, please don't hesitate to contact the help desk.")

	if vendorContact != nil {
		fmt.Fprintf(&b, "\n\nFusus Contact Info:\n%s\n%s\n%s\n",
			orNA(vendorContact.Name), orNA(vendorContact.Email), orNA(vendorContact.Phone))
	}
	if len(localContacts) > 0 {
		b.WriteString("\n\nLocal DB Contacts:\n")
		for _, poc := range localContacts {
			fmt.Fprintf(&b, "%s\n%s\n%s\n", poc.Name, orNA(poc.Email), orNA(poc.Phone))
		}
	}
	if vendorContact == nil && len(localContacts) == 0 {
		b.WriteString("\n\nSuggested POC: No contact on file for this org.")
	}

	return Email{Subject: subject, Body: b.String()}
}
