package domain

import "strings"

// CheckDigitPlaceholder marks where the check digit goes in codes returned by
// solicitaEtiquetas, e.g. "DL76023727 BR".
const CheckDigitPlaceholder = " "

// StripCheckDigit removes the check digit, the third character from the end:
// "DL760237275BR" becomes "DL76023727BR". Codes shorter than three characters
// are returned unchanged.
func StripCheckDigit(code string) string {
	if len(code) < 3 {
		return code
	}
	return code[:len(code)-3] + code[len(code)-2:]
}

// AppendCheckDigit replaces the placeholder in code with digit.
// A code without a placeholder is returned unchanged.
func AppendCheckDigit(code, digit string) string {
	return strings.ReplaceAll(code, CheckDigitPlaceholder, digit)
}
