package health

import (
	"strings"
	"testing"
)

func TestParseEntry(t *testing.T) {
	line := "FC-1234\t-- Cobb County --\t-- City Hall --\t2026-08-30T04:12:00.000000Z\t12"
	entry, err := ParseEntry(line)
	if err != nil {
		t.Fatalf("ParseEntry: %v", err)
	}
	want := Entry{
		CoreID:      "FC-1234",
		Org:         "Cobb County",
		Location:    "City Hall",
		OfflineTime: "2026-08-30T04:12:00.000000Z",
		CameraCount: "12",
	}
	if entry != want {
		t.Errorf("entry = %+v, want %+v", entry, want)
	}
}

func TestParseEntryWrongFieldCount(t *testing.T) {
	if _, err := ParseEntry("FC-1234\tCobb County\tCity Hall"); err == nil {
		t.Error("expected error for 3 fields")
	}
	if _, err := ParseEntry(""); err == nil {
		t.Error("expected error for empty line")
	}
}

func TestParseEntries(t *testing.T) {
	input := "FC-1\tOrg A\tLoc A\tt1\t3\n" +
		"\n" +
		"   \n" +
		"FC-2\tOrg B\tLoc B\tt2\t5\r\n"

	entries, err := ParseEntries(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (blank lines skipped)", len(entries))
	}
	if entries[0].CoreID != "FC-1" || entries[1].CoreID != "FC-2" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestCheckAndConflictDetail(t *testing.T) {
	entry := Entry{CoreID: "FC-9"}
	result := Check(entry, StateOffline, StateOnline)
	if result.Outcome != OutcomeConflict {
		t.Fatalf("Outcome = %v, want conflict", result.Outcome)
	}
	if got := result.ConflictDetail(); got != "Balena says OFFLINE, Fusus says ONLINE" {
		t.Errorf("ConflictDetail = %q", got)
	}
}
