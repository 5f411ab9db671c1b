package main

import "testing"

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		input string
		want  uiMode
	}{
		{"", uiModeAuto},
		{"auto", uiModeAuto},
		{"on", uiModeOn},
		{"off", uiModeOff},
		{" ON ", uiModeOn},
		{"Off", uiModeOff},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.input)
		if err != nil {
			t.Fatalf("readUIMode(%q) error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("readUIMode(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestReadUIMode_Invalid(t *testing.T) {
	if _, err := readUIMode("sometimes"); err == nil {
		t.Fatalf("expected error for invalid mode")
	}
}

func TestShouldUseTUI_ExplicitModes(t *testing.T) {
	if !shouldUseTUI(uiModeOn) {
		t.Fatalf("uiModeOn must force the TUI")
	}
	if shouldUseTUI(uiModeOff) {
		t.Fatalf("uiModeOff must disable the TUI")
	}
}
