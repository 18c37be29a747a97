package soap

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNamespace = "http://cliente.bean.master.sigep.bsb.correios.com.br/"

const okResponse = `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
<soap:Body>
<ns2:buscaServicosResponse xmlns:ns2="http://cliente.bean.master.sigep.bsb.correios.com.br/">
<return>first</return>
<return>second</return>
</ns2:buscaServicosResponse>
</soap:Body>
</soap:Envelope>`

const faultResponse = `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
<soap:Body>
<soap:Fault>
<faultcode>soap:Server</faultcode>
<faultstring>Usuario nao autorizado</faultstring>
<detail><ns2:SigepClienteException xmlns:ns2="http://cliente.bean.master.sigep.bsb.correios.com.br/">acesso negado</ns2:SigepClienteException></detail>
</soap:Fault>
</soap:Body>
</soap:Envelope>`

// capture records the last request envelope a fake server received.
type capture struct {
	doc    *etree.Document
	header http.Header
}

func newServer(t *testing.T, status int, body string, c *capture) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		if c != nil {
			c.doc = etree.NewDocument()
			require.NoError(t, c.doc.ReadFromBytes(data))
			c.header = r.Header.Clone()
		}
		w.Header().Set("Content-Type", "text/xml;charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

// TestClient_Call_Envelope verifies the request envelope layout and parameter order.
func TestClient_Call_Envelope(t *testing.T) {
	var c capture
	ts := newServer(t, http.StatusOK, okResponse, &c)

	client := NewClient(Config{Name: "test", Endpoint: ts.URL, Namespace: testNamespace, Prefix: "cli"}, ts.Client())

	_, err := client.Call(context.Background(), "geraDigitoVerificadorEtiquetas",
		List("etiquetas", []string{"DL76023727 BR", "DL76023728 BR"}),
		P("usuario", "sigep"),
		P("senha", "n5f9t8"),
	)
	require.NoError(t, err)

	assert.Equal(t, "text/xml; charset=utf-8", c.header.Get("Content-Type"))

	root := c.doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Envelope", root.Tag)
	assert.Equal(t, EnvelopeNamespace, root.SelectAttrValue("xmlns:soapenv", ""))
	assert.Equal(t, testNamespace, root.SelectAttrValue("xmlns:cli", ""))

	op := root.FindElement("./Body/geraDigitoVerificadorEtiquetas")
	require.NotNil(t, op)
	assert.Equal(t, "cli", op.Space)

	var names, values []string
	for _, child := range op.ChildElements() {
		names = append(names, child.Tag)
		values = append(values, child.Text())
		assert.Empty(t, child.Space)
	}
	assert.Equal(t, []string{"etiquetas", "etiquetas", "usuario", "senha"}, names)
	assert.Equal(t, []string{"DL76023727 BR", "DL76023728 BR", "sigep", "n5f9t8"}, values)
}

// TestClient_Call_Response verifies that the operation response element is returned.
func TestClient_Call_Response(t *testing.T) {
	ts := newServer(t, http.StatusOK, okResponse, nil)
	client := NewClient(Config{Name: "test", Endpoint: ts.URL, Namespace: testNamespace}, ts.Client())

	resp, err := client.Call(context.Background(), "buscaServicos")
	require.NoError(t, err)

	assert.Equal(t, "buscaServicosResponse", resp.Tag)
	assert.Equal(t, "first", ReturnText(resp))

	returns := Returns(resp)
	require.Len(t, returns, 2)
	assert.Equal(t, "second", returns[1].Text())
}

// TestClient_Call_Fault verifies that a fault is returned as *Fault even with HTTP 500.
func TestClient_Call_Fault(t *testing.T) {
	ts := newServer(t, http.StatusInternalServerError, faultResponse, nil)
	client := NewClient(Config{Name: "test", Endpoint: ts.URL, Namespace: testNamespace}, ts.Client())

	resp, err := client.Call(context.Background(), "buscaCliente")

	assert.Nil(t, resp)
	var fault *Fault
	require.True(t, errors.As(err, &fault))
	assert.Equal(t, "soap:Server", fault.Code)
	assert.Equal(t, "Usuario nao autorizado", fault.String)
	assert.Equal(t, "acesso negado", fault.Detail)
	assert.Equal(t, "buscaCliente", fault.Operation)
	assert.Contains(t, err.Error(), "Usuario nao autorizado")
}

// TestClient_Call_HTTPError verifies that a non-SOAP error page is reported with its status code.
func TestClient_Call_HTTPError(t *testing.T) {
	ts := newServer(t, http.StatusBadGateway, "<html><body>bad gateway", nil)
	client := NewClient(Config{Name: "test", Endpoint: ts.URL, Namespace: testNamespace}, ts.Client())

	_, err := client.Call(context.Background(), "buscaCliente")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	var fault *Fault
	assert.False(t, errors.As(err, &fault))
}

// TestClient_Call_InvalidResponse verifies malformed bodies are rejected.
func TestClient_Call_InvalidResponse(t *testing.T) {
	cases := map[string]string{
		"not xml":    "OK",
		"not soap":   "<html/>",
		"no body":    `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"/>`,
		"empty body": `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body/></soap:Envelope>`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			ts := newServer(t, http.StatusOK, body, nil)
			client := NewClient(Config{Name: "test", Endpoint: ts.URL, Namespace: testNamespace}, ts.Client())

			_, err := client.Call(context.Background(), "buscaCliente")
			assert.Error(t, err)
		})
	}
}

// TestClient_Call_Timeout verifies that the transport timeout surfaces as an error.
func TestClient_Call_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	client := NewClient(Config{Name: "test", Endpoint: ts.URL, Namespace: testNamespace}, &http.Client{Timeout: 20 * time.Millisecond})

	_, err := client.Call(context.Background(), "buscaCliente")
	assert.Error(t, err)
}

// TestClient_Call_Latin1 verifies ISO-8859-1 responses are decoded.
func TestClient_Call_Latin1(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="ISO-8859-1"?><soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body><r><return>S`)
	body = append(body, 0xE3)
	body = append(body, []byte(`o Paulo</return></r></soap:Body></soap:Envelope>`)...)

	ts := newServer(t, http.StatusOK, string(body), nil)
	client := NewClient(Config{Name: "test", Endpoint: ts.URL, Namespace: testNamespace}, ts.Client())

	resp, err := client.Call(context.Background(), "buscaCliente")
	require.NoError(t, err)
	assert.Equal(t, "São Paulo", ReturnText(resp))
}
