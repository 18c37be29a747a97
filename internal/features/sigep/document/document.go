// Package document renders and checks the PLP (pre-posting list) XML sent to
// fechaPlpVariosServicos.
package document

import (
	_ "embed"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/template"
	"unicode/utf8"

	"sigep-gateway/internal/features/sigep/domain"
)

//go:embed plp.xml.tmpl
var plpTemplate string

// Additional service and object type codes used in the document.
const (
	ServiceRegistered    = "025"
	ServiceDeclaredValue = "019"

	ObjectTypePackage  = "002"
	ObjectTypeCylinder = "003"
)

// streetNumberMissing is printed when the receiver has no street number.
const streetNumberMissing = "S/N"

var plp = template.Must(template.New("plp").Funcs(template.FuncMap{
	"xml":          template.HTMLEscapeString,
	"cdata":        cdata,
	"zip":          zip,
	"digits":       digits,
	"streetNumber": streetNumber,
	"decimal":      decimal,
	"cm":           centimeters,
	"objectType":   ObjectType,
	"services":     AdditionalServices,
}).Parse(plpTemplate))

// Data is everything the PLP template needs.
type Data struct {
	PostageCard  string
	Contract     string
	RegionalCode string
	AdminCode    string
	Sender       domain.SenderInfo
	Items        []domain.ShipmentItem
}

// NewData collects the contract fields of creds and the items of one batch.
func NewData(creds domain.Credentials, items []domain.ShipmentItem) Data {
	return Data{
		PostageCard:  creds.PostageCard,
		Contract:     creds.Contract,
		RegionalCode: creds.RegionalCode,
		AdminCode:    creds.AdminCode,
		Sender:       creds.Sender,
		Items:        items,
	}
}

// Render executes the template without any post-processing.
func Render(data Data) (string, error) {
	var b strings.Builder
	if err := plp.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render plp: %w", err)
	}
	return b.String(), nil
}

// Build renders data, escapes every non-ASCII character and canonicalizes
// the whitespace. The result is ready for Validate and submission.
func Build(data Data) (string, error) {
	rendered, err := Render(data)
	if err != nil {
		return "", err
	}
	return Canonicalize(EncodeASCII(rendered)), nil
}

// EncodeASCII replaces every non-ASCII rune with a decimal character reference.
func EncodeASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
			continue
		}
		b.WriteString("&#")
		b.WriteString(strconv.Itoa(int(r)))
		b.WriteByte(';')
	}
	return b.String()
}

// Canonicalize applies the whitespace rules the carrier expects, in order:
// drop double spaces, newlines and tabs, then join "> <" into "><".
// The replacements are sequential, so text inside elements is affected too.
func Canonicalize(s string) string {
	s = strings.ReplaceAll(s, "  ", "")
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\t", "")
	return strings.ReplaceAll(s, "> <", "><")
}

// ObjectType returns the dimensao_objeto type for item.
func ObjectType(item domain.ShipmentItem) string {
	if item.Diameter > 0 {
		return ObjectTypeCylinder
	}
	return ObjectTypePackage
}

// AdditionalServices returns the codigo_servico_adicional values for item.
// Every object is registered; insured objects also declare their value.
func AdditionalServices(item domain.ShipmentItem) []string {
	if item.Insurance {
		return []string{ServiceRegistered, ServiceDeclaredValue}
	}
	return []string{ServiceRegistered}
}

func cdata(s string) string {
	return strings.ReplaceAll(s, "]]>", "]]]]><![CDATA[>")
}

func zip(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return domain.NormalizeZipCode(s)
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func streetNumber(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return streetNumberMissing
	}
	return s
}

// decimal formats v with two places and a comma separator.
func decimal(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
}

// centimeters rounds a dimension up to whole centimeters.
func centimeters(v float64) string {
	if v <= 0 {
		return "0"
	}
	return strconv.Itoa(int(math.Ceil(v)))
}
