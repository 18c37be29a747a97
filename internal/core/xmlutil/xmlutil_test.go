package xmlutil

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadDocument_Latin1 verifies that ISO-8859-1 documents are decoded to UTF-8.
func TestReadDocument_Latin1(t *testing.T) {
	data := append([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?><remetente><cidade>Ribeir`), 0xE3)
	data = append(data, []byte(`o Preto</cidade></remetente>`)...)

	doc, err := ReadDocument(data)
	require.NoError(t, err)

	assert.Equal(t, "Ribeirão Preto", ChildText(doc.Root(), "cidade"))
}

// TestReadDocument_Errors verifies malformed and empty input is rejected.
func TestReadDocument_Errors(t *testing.T) {
	_, err := ReadDocument([]byte(`<a><b></a>`))
	assert.Error(t, err)

	_, err = ReadDocument([]byte(``))
	assert.Error(t, err)

	_, err = ReadDocument([]byte(`<?xml version="1.0" encoding="EBCDIC"?><a/>`))
	assert.Error(t, err)
}

// TestCharsetReader verifies label handling.
func TestCharsetReader(t *testing.T) {
	r, err := CharsetReader("UTF-8", strings.NewReader("abc"))
	require.NoError(t, err)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))

	_, err = CharsetReader("shift_jis", strings.NewReader("abc"))
	assert.Error(t, err)
}

// TestChildText verifies namespace-agnostic lookup and trimming.
func TestChildText(t *testing.T) {
	doc, err := ReadDocument([]byte(`<ns2:r xmlns:ns2="urn:x"><ns2:codigo> 40096 </ns2:codigo></ns2:r>`))
	require.NoError(t, err)

	assert.Equal(t, "40096", ChildText(doc.Root(), "codigo"))
	assert.Empty(t, ChildText(doc.Root(), "missing"))
	assert.Empty(t, ChildText(nil, "codigo"))
}
