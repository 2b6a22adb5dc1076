// Package health cross-checks core connectivity between two unrelated
// backends. An offline report is only actionable when the second source
// corroborates it: the policy trades recall for precision so that nobody
// gets an outage email for a core that one backend merely lost track of.
package health

import (
	"strings"

	"fusus-cli/pkg/models"
)

// State is the tri-state a source's report normalizes to.
type State int

const (
	StateUnknown State = iota
	StateOnline
	StateOffline
)

func (s State) String() string {
	switch s {
	case StateOnline:
		return "online"
	case StateOffline:
		return "offline"
	}
	return "unknown"
}

// FususState maps the appliance status string onto the tri-state. Anything
// unrecognized is unknown, not offline.
func FususState(status string) State {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "connected", "online":
		return StateOnline
	case "disconnected", "unreachable", "offline", "down":
		return StateOffline
	}
	return StateUnknown
}

// BalenaState maps a device record onto the tri-state. A device missing
// from the fleet reports as offline, matching the fleet dashboard.
func BalenaState(dev *models.BalenaDevice) State {
	if dev == nil {
		return StateOffline
	}
	if dev.IsOnline {
		return StateOnline
	}
	return StateOffline
}

// Outcome classifies one cross-checked pair.
type Outcome int

const (
	// OutcomeSuppressed: no action. Covers both-online and any pairing of
	// unknowns that lacks a corroborated offline.
	OutcomeSuppressed Outcome = iota
	// OutcomeConfirmedOffline: both sources agree the core is offline.
	OutcomeConfirmedOffline
	// OutcomeConflict: exactly one source reports offline.
	OutcomeConflict
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConfirmedOffline:
		return "confirmed offline"
	case OutcomeConflict:
		return "conflict"
	}
	return "suppressed"
}

// Reconcile classifies a pair of independent reports. It is commutative in
// source order, and a pair where either source reports online can never be
// confirmed offline.
func Reconcile(a, b State) Outcome {
	offA, offB := a == StateOffline, b == StateOffline
	switch {
	case offA && offB:
		return OutcomeConfirmedOffline
	case offA != offB:
		return OutcomeConflict
	}
	return OutcomeSuppressed
}
