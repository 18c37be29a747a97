package domain

import "strings"

// ZipCodeLength is the number of digits in a CEP.
const ZipCodeLength = 8

// NormalizeZipCode strips hyphens and left-pads with zeros to eight digits:
// "37902-000" becomes "37902000" and "902000" becomes "00902000".
func NormalizeZipCode(zip string) string {
	zip = strings.ReplaceAll(strings.TrimSpace(zip), "-", "")
	if len(zip) >= ZipCodeLength {
		return zip
	}
	return strings.Repeat("0", ZipCodeLength-len(zip)) + zip
}
