package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate_InvalidFields verifies each broken field is reported by element path.
func TestValidate_InvalidFields(t *testing.T) {
	item := testItem("DL760237275BR")
	item.ReceiverState = "MGX"
	item.ReceiverName = ""

	doc, err := Build(testData(item))
	require.NoError(t, err)

	err = Validate(doc)
	require.ErrorIs(t, err, ErrInvalidDocument)
	assert.Contains(t, err.Error(), "objeto_postal[0].nacional.uf_destinatario must be exactly 2 characters")
	assert.Contains(t, err.Error(), "objeto_postal[0].destinatario.nome_destinatario is required")
}

// TestValidate_ShortTrackingCode verifies a code without check digit is rejected.
func TestValidate_ShortTrackingCode(t *testing.T) {
	doc, err := Build(testData(testItem("DL76023727BR")))
	require.NoError(t, err)

	err = Validate(doc)
	require.ErrorIs(t, err, ErrInvalidDocument)
	assert.Contains(t, err.Error(), "numero_etiqueta")
}

// TestValidate_NoObjects verifies a document must carry at least one object.
func TestValidate_NoObjects(t *testing.T) {
	doc, err := Build(testData())
	require.NoError(t, err)

	err = Validate(doc)
	require.ErrorIs(t, err, ErrInvalidDocument)
	assert.Contains(t, err.Error(), "objeto_postal")
}

// TestValidate_MissingRegistration verifies every object must be registered.
func TestValidate_MissingRegistration(t *testing.T) {
	doc := strings.Replace(mustBuild(t),
		"<codigo_servico_adicional>"+ServiceRegistered+"<",
		"<codigo_servico_adicional>049<", 1)

	err := Validate(doc)
	require.ErrorIs(t, err, ErrInvalidDocument)
	assert.Contains(t, err.Error(), "objeto_postal[0].servico_adicional must include 025")
}

// TestValidate_Malformed verifies parse errors and foreign documents are rejected.
func TestValidate_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not xml", "not xml"},
		{"wrong root", `<?xml version="1.0"?><envio/>`},
		{"wrong version", strings.Replace(mustBuild(t), "<versao_arquivo>2.3<", "<versao_arquivo>2.2<", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Validate(tt.doc), ErrInvalidDocument)
		})
	}
}

func mustBuild(t *testing.T) string {
	t.Helper()
	doc, err := Build(testData(testItem("DL760237275BR")))
	require.NoError(t, err)
	return doc
}
