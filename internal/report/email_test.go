package report

import (
	"strings"
	"testing"

	"fusus-cli/internal/contacts"
	"fusus-cli/internal/health"
	"fusus-cli/pkg/models"
)

func entry(coreID, org, loc string) health.Entry {
	return health.Entry{
		CoreID:      coreID,
		Org:         org,
		Location:    loc,
		OfflineTime: "2026-08-30T04:12:00.000000Z",
		CameraCount: "12",
	}
}

func TestFormatOfflineTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-08-30T04:12:00.000000Z", "Aug 30, 04:12 AM UTC"},
		{"not-a-timestamp", "not-a-timestamp"},
		{"", "N/A"},
	}
	for _, tt := range tests {
		if got := FormatOfflineTime(tt.in); got != tt.want {
			t.Errorf("FormatOfflineTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOfflineEmailSubjects(t *testing.T) {
	t.Run("single core lists the id", func(t *testing.T) {
		email := OfflineEmail([]health.Entry{entry("FC-1", "Cobb County", "City Hall")}, nil, nil)
		want := "1 FususCore Offline - [Cobb County] - [City Hall] - FC-1"
		if email.Subject != want {
			t.Errorf("subject = %q, want %q", email.Subject, want)
		}
	})

	t.Run("two cores list both ids", func(t *testing.T) {
		email := OfflineEmail([]health.Entry{
			entry("FC-1", "Cobb County", "City Hall"),
			entry("FC-2", "Cobb County", "City Hall"),
		}, nil, nil)
		want := "2 FususCores Offline - [Cobb County] - [City Hall] - FC-1 - FC-2"
		if email.Subject != want {
			t.Errorf("subject = %q, want %q", email.Subject, want)
		}
	})

	t.Run("three cores switch to count only", func(t *testing.T) {
		email := OfflineEmail([]health.Entry{
			entry("FC-1", "Cobb County", "City Hall"),
			entry("FC-2", "Cobb County", "Substation 4"),
			entry("FC-3", "Cobb County", "Water Plant"),
		}, nil, nil)
		want := "3 FususCores Offline - [Cobb County]"
		if email.Subject != want {
			t.Errorf("subject = %q, want %q", email.Subject, want)
		}
		if strings.Contains(email.Subject, "FC-1") {
			t.Error("count-only subject should not list core ids")
		}
	})

	t.Run("mixed locations drop the location tag", func(t *testing.T) {
		email := OfflineEmail([]health.Entry{
			entry("FC-1", "Cobb County", "City Hall"),
			entry("FC-2", "Cobb County", "Substation 4"),
		}, nil, nil)
		want := "2 FususCores Offline - [Cobb County] - FC-1 - FC-2"
		if email.Subject != want {
			t.Errorf("subject = %q, want %q", email.Subject, want)
		}
	})
}

func TestOfflineEmailBody(t *testing.T) {
	vendor := &models.Contact{Name: "J. Poole", Email: "jp@marietta.gov", Phone: ""}
	local := []contacts.Contact{{Org: "Cobb County", Name: "A. Ray", Email: "ar@cobb.org", Phone: "555-0101"}}

	email := OfflineEmail([]health.Entry{entry("FC-1", "Cobb County", "City Hall")}, vendor, local)

	for _, want := range []string{
		"Core FC-1 at City Hall has been offline since Aug 30, 04:12 AM UTC, with 12 cameras connected to it.",
		"power cycle",
		"Fusus Contact Info:\nJ. Poole\njp@marietta.gov\nN/A",
		"Local DB Contacts:\nA. Ray\nar@cobb.org\n555-0101",
	} {
		if !strings.Contains(email.Body, want) {
			t.Errorf("body missing %q:\n%s", want, email.Body)
		}
	}
	if strings.Contains(email.Body, "No contact on file") {
		t.Error("fallback notice present despite contacts")
	}
}

func TestOfflineEmailNoContacts(t *testing.T) {
	email := OfflineEmail([]health.Entry{entry("FC-1", "Cobb County", "City Hall")}, nil, nil)
	if !strings.Contains(email.Body, "Suggested POC: No contact on file for this org.") {
		t.Errorf("body missing fallback notice:\n%s", email.Body)
	}
}

func TestOfflineEmailNoEntries(t *testing.T) {
	email := OfflineEmail(nil, nil, nil)
	if email.Subject != "" {
		t.Errorf("subject = %q, want empty", email.Subject)
	}
	if email.Body != NoOfflineNotice {
		t.Errorf("body = %q, want notice", email.Body)
	}
	if email.String() != NoOfflineNotice {
		t.Errorf("String() = %q, want bare notice", email.String())
	}
}
