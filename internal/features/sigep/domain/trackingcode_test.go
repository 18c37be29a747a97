package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestStripCheckDigit verifies the digit third from the end is removed.
func TestStripCheckDigit(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "finished code", code: "DL760237275BR", want: "DL76023727BR"},
		{name: "tracking fixture", code: "JF598971235BR", want: "JF59897123BR"},
		{name: "short fixture first", code: "PC0000001HK", want: "PC000000HK"},
		{name: "short fixture second", code: "PC0000002HK", want: "PC000000HK"},
		{name: "three characters", code: "5BR", want: "BR"},
		{name: "too short", code: "BR", want: "BR"},
		{name: "empty", code: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCheckDigit(tt.code))
		})
	}
}

// TestAppendCheckDigit verifies the placeholder is replaced.
func TestAppendCheckDigit(t *testing.T) {
	assert.Equal(t, "DL760237275BR", AppendCheckDigit("DL76023727 BR", "5"))
	assert.Equal(t, "PC0000001HK", AppendCheckDigit("PC0000001HK", "7"), "no placeholder leaves code unchanged")
}

// TestRoundTrip verifies strip and append are inverses when the placeholder convention holds.
func TestRoundTrip(t *testing.T) {
	tests := []struct {
		code  string
		digit string
	}{
		{"DL760237275BR", "5"},
		{"JF598971235BR", "5"},
		{"SS123456789BR", "9"},
		{"PC0000001HK", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			stripped := StripCheckDigit(tt.code)
			placeholder := stripped[:len(stripped)-2] + CheckDigitPlaceholder + stripped[len(stripped)-2:]

			rebuilt := AppendCheckDigit(placeholder, tt.digit)
			assert.Equal(t, tt.code, rebuilt)
		})
	}
}

// TestNormalizeZipCode verifies hyphen removal and zero padding.
func TestNormalizeZipCode(t *testing.T) {
	assert.Equal(t, "37902000", NormalizeZipCode("37902-000"))
	assert.Equal(t, "00902000", NormalizeZipCode("902000"))
	assert.Equal(t, "37902000", NormalizeZipCode("37902000"))
	assert.Equal(t, "01310100", NormalizeZipCode(" 1310-100 "))
}
