package source

import (
	"bytes"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name        string
		input       []byte
		want        []byte
		wantChanged bool
	}{
		{"no CR", []byte("a\nb"), []byte("a\nb"), false},
		{"single CRLF", []byte("a\r\nb"), []byte("a\nb"), true},
		{"bare CR kept", []byte("a\rb"), []byte("a\rb"), false},
		{"mixed endings", []byte("a\r\nb\rc\n"), []byte("a\nb\rc\n"), true},
		{"empty", []byte{}, []byte{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := NormalizeCRLF(tt.input)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("NormalizeCRLF() = %q, want %q", got, tt.want)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	got, removed := RemoveBOM(withBOM)
	if !removed || !bytes.Equal(got, []byte("hi")) {
		t.Errorf("RemoveBOM() = %q removed=%v", got, removed)
	}

	plain := []byte("hi")
	got, removed = RemoveBOM(plain)
	if removed || !bytes.Equal(got, plain) {
		t.Errorf("RemoveBOM() on plain input = %q removed=%v", got, removed)
	}
}

func TestIsWhitespace(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"", false},
		{" ", true},
		{" \t\r\n", true},
		{"a", false},
		{"  x  ", false},
	}
	for _, tt := range tests {
		if got := IsWhitespace(tt.s); got != tt.want {
			t.Errorf("IsWhitespace(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
