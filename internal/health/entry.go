package health

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Entry is one line of the daily health report input, tab-separated:
// core_id, org, location, offline_time, camera_count. Org and location may
// carry the report's "--" separators, which are stripped.
type Entry struct {
	CoreID      string
	Org         string
	Location    string
	OfflineTime string
	CameraCount string
}

// ParseEntry splits and cleans a single report line.
func ParseEntry(line string) (Entry, error) {
	parts := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(parts) != 5 {
		return Entry{}, fmt.Errorf("invalid report line (want 5 tab-separated fields, got %d): %q", len(parts), line)
	}
	clean := func(s string) string {
		return strings.TrimSpace(strings.ReplaceAll(s, "--", ""))
	}
	return Entry{
		CoreID:      strings.TrimSpace(parts[0]),
		Org:         clean(parts[1]),
		Location:    clean(parts[2]),
		OfflineTime: strings.TrimSpace(parts[3]),
		CameraCount: strings.TrimSpace(parts[4]),
	}, nil
}

// ParseEntries reads report lines until EOF, skipping blank lines.
func ParseEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, err := ParseEntry(line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, scanner.Err()
}

// CheckResult pairs an entry with its normalized reports and the
// reconciliation outcome.
type CheckResult struct {
	Entry   Entry
	Balena  State
	Fusus   State
	Outcome Outcome
}

// Check reconciles one entry given the two normalized states.
func Check(entry Entry, balena, fusus State) CheckResult {
	return CheckResult{
		Entry:   entry,
		Balena:  balena,
		Fusus:   fusus,
		Outcome: Reconcile(balena, fusus),
	}
}

// ConflictDetail words a conflict for operator output.
func (r CheckResult) ConflictDetail() string {
	return fmt.Sprintf("Balena says %s, Fusus says %s",
		strings.ToUpper(r.Balena.String()), strings.ToUpper(r.Fusus.String()))
}
