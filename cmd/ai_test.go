package cmd

import (
	"reflect"
	"testing"

	"fusus-cli/pkg/models"
)

func TestPickDetection(t *testing.T) {
	detections := []models.DetectionType{
		{ID: 1, Name: "Person Detection", Type: "person"},
		{ID: 2, Name: "Vehicle Detection", Type: "vehicle"},
	}

	tests := []struct {
		name   string
		input  string
		wantID int64
		found  bool
	}{
		{"exact name", "Person Detection", 1, true},
		{"exact type", "vehicle", 2, true},
		{"case-insensitive", "PERSON DETECTION", 1, true},
		{"substring fallback", "person det", 1, true},
		{"no match", "face", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det, found := pickDetection(detections, tt.input)
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if found && det.ID != tt.wantID {
				t.Errorf("picked ID %d, want %d", det.ID, tt.wantID)
			}
		})
	}
}

func TestInvalidLabels(t *testing.T) {
	det := models.DetectionType{AllowedLabels: []string{"car", "truck", "bus"}}
	bad := invalidLabels(det, []string{"car", "boat", "bike"})
	if !reflect.DeepEqual(bad, []string{"boat", "bike"}) {
		t.Errorf("invalidLabels = %v, want [boat bike]", bad)
	}
	if got := invalidLabels(det, nil); len(got) != 0 {
		t.Errorf("invalidLabels(nil) = %v, want empty", got)
	}
}

func TestSplitCSVFlag(t *testing.T) {
	if got := splitCSVFlag(" car , truck ,,bus "); !reflect.DeepEqual(got, []string{"car", "truck", "bus"}) {
		t.Errorf("splitCSVFlag = %v", got)
	}
	if got := splitCSVFlag(""); got != nil {
		t.Errorf("splitCSVFlag(empty) = %v, want nil", got)
	}
}

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"@cobbcounty.org", "@cobbcounty.org"},
		{"cobbcounty.org", "@cobbcounty.org"},
		{"  @Cobbcounty.ORG ", "@cobbcounty.org"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeDomain(tt.in); got != tt.want {
			t.Errorf("normalizeDomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
