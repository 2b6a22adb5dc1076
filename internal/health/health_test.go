package health

import (
	"testing"

	"fusus-cli/pkg/models"
)

func TestFususState(t *testing.T) {
	tests := []struct {
		status string
		want   State
	}{
		{"connected", StateOnline},
		{"Online", StateOnline},
		{"disconnected", StateOffline},
		{"UNREACHABLE", StateOffline},
		{"offline", StateOffline},
		{"down", StateOffline},
		{" connected ", StateOnline},
		{"provisioning", StateUnknown},
		{"", StateUnknown},
	}
	for _, tt := range tests {
		if got := FususState(tt.status); got != tt.want {
			t.Errorf("FususState(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestBalenaState(t *testing.T) {
	if got := BalenaState(nil); got != StateOffline {
		t.Errorf("BalenaState(nil) = %v, want offline", got)
	}
	if got := BalenaState(&models.BalenaDevice{IsOnline: true}); got != StateOnline {
		t.Errorf("online device = %v, want online", got)
	}
	if got := BalenaState(&models.BalenaDevice{IsOnline: false}); got != StateOffline {
		t.Errorf("offline device = %v, want offline", got)
	}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name string
		a, b State
		want Outcome
	}{
		{"both offline", StateOffline, StateOffline, OutcomeConfirmedOffline},
		{"both online", StateOnline, StateOnline, OutcomeSuppressed},
		{"offline vs online", StateOffline, StateOnline, OutcomeConflict},
		{"offline vs unknown", StateOffline, StateUnknown, OutcomeConflict},
		{"online vs unknown", StateOnline, StateUnknown, OutcomeSuppressed},
		{"both unknown", StateUnknown, StateUnknown, OutcomeSuppressed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reconcile(tt.a, tt.b); got != tt.want {
				t.Errorf("Reconcile(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Reconcile(tt.b, tt.a); got != tt.want {
				t.Errorf("Reconcile(%v, %v) = %v, not commutative", tt.b, tt.a, got)
			}
		})
	}
}

func TestReconcileNeverConfirmsWithAnOnlineSource(t *testing.T) {
	for _, other := range []State{StateUnknown, StateOnline, StateOffline} {
		if Reconcile(StateOnline, other) == OutcomeConfirmedOffline {
			t.Errorf("Reconcile(online, %v) confirmed offline", other)
		}
	}
}
