package cmd

import "testing"

func TestEscapeRTSP(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"password123", "password123"},
		{"p@ss:word", "p%40ss%3Aword"},
		{"it's!fine~", "it's!fine~"},
		{"a b", "a%20b"},
		{"100%", "100%25"},
	}
	for _, tt := range tests {
		if got := escapeRTSP(tt.in); got != tt.want {
			t.Errorf("escapeRTSP(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHexEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc123", "abc123"},
		{"a-b", "a%2db"},
		{"p@ss", "p%40ss"},
		{"a b", "a%20b"},
		{"x!", "x%21"},
	}
	for _, tt := range tests {
		if got := hexEscape(tt.in); got != tt.want {
			t.Errorf("hexEscape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
