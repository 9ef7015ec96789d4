package models

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"La Liga", "la liga"},
		{"São Paulo", "sao paulo"},
		{"Atlético-MG", "atletico mg"},
		{"  Sporting   CP ", "sporting cp"},
		{"Brøndby IF", "br ndby if"},
		{"1. FC Köln", "1 fc koln"},
		{"", ""},
	}

	for _, tt := range tests {
		result := NormalizeName(tt.input)
		if result != tt.expected {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestTeamPairKey(t *testing.T) {
	got := TeamPairKey("Benfica", "FC Porto")
	want := "benfica|fc porto"
	if got != want {
		t.Errorf("TeamPairKey = %q, want %q", got, want)
	}
}

func TestSecondaryBundleLookupReversed(t *testing.T) {
	bundle := SecondaryBundle{
		"porto|benfica": {Home: 40, Draw: 30, Away: 30, Over25: 55, BttsYes: 48},
	}

	probs, ok := bundle.Lookup("Benfica", "Porto")
	if !ok {
		t.Fatal("expected reversed lookup to succeed")
	}
	if probs.Home != 30 || probs.Away != 40 {
		t.Errorf("reversed lookup should swap home/away: got home=%d away=%d", probs.Home, probs.Away)
	}
	if probs.Draw != 30 || probs.Over25 != 55 || probs.BttsYes != 48 {
		t.Errorf("symmetric fields must be preserved: %+v", probs)
	}
}

func TestSecondaryBundleLookupMiss(t *testing.T) {
	var bundle SecondaryBundle
	if _, ok := bundle.Lookup("A", "B"); ok {
		t.Error("lookup on empty bundle should miss")
	}
}
