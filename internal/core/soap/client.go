// Package soap implements the small subset of SOAP 1.1 the carrier services use:
// document/literal calls with flat parameter lists and a single response element.
package soap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sigep-gateway/internal/core/logger"
	"sigep-gateway/internal/core/metrics"
	"sigep-gateway/internal/core/xmlutil"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// EnvelopeNamespace is the SOAP 1.1 envelope namespace.
const EnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"

const maxResponseBytes = 10 << 20

// Config describes one remote SOAP service.
type Config struct {
	// Name labels metrics and logs, e.g. "atendecliente".
	Name string
	// Endpoint is the service location (without ?wsdl).
	Endpoint string
	// Namespace is the target namespace of the operations.
	Namespace string
	// Prefix is the namespace prefix used in the envelope.
	Prefix string
}

// Param is one named operation parameter.
// Multiple values are written as repeated elements.
type Param struct {
	Name   string
	Values []string
}

// P returns a single-valued parameter.
func P(name, value string) Param {
	return Param{Name: name, Values: []string{value}}
}

// List returns a parameter written once per value.
func List(name string, values []string) Param {
	return Param{Name: name, Values: values}
}

// Client invokes operations on one SOAP endpoint.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Client for the given service using httpClient for transport.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if cfg.Prefix == "" {
		cfg.Prefix = "ns"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     logger.Named("soap." + cfg.Name),
	}
}

// Endpoint returns the service location.
func (c *Client) Endpoint() string {
	return c.cfg.Endpoint
}

// Call invokes operation with params and returns the operation response element
// (the single child of the SOAP Body). A Fault in the body is returned as *Fault
// regardless of the HTTP status code.
func (c *Client) Call(ctx context.Context, operation string, params ...Param) (*etree.Element, error) {
	start := time.Now()

	resp, err := c.call(ctx, operation, params)

	metrics.SOAPRequestDuration.WithLabelValues(c.cfg.Name, operation).Observe(time.Since(start).Seconds())
	metrics.SOAPRequestsTotal.WithLabelValues(c.cfg.Name, operation, outcome(err)).Inc()

	if err != nil {
		c.logger.Warn("SOAP call failed",
			zap.String("operation", operation),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	c.logger.Debug("SOAP call completed",
		zap.String("operation", operation),
		zap.Duration("duration", time.Since(start)),
	)
	return resp, nil
}

func (c *Client) call(ctx context.Context, operation string, params []Param) (*etree.Element, error) {
	body, err := c.buildEnvelope(operation, params).WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to encode envelope: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", `""`)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", operation, err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", operation, err)
	}

	doc, err := xmlutil.ReadDocument(data)
	if err != nil {
		if httpResp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("unexpected status code %d from %s", httpResp.StatusCode, operation)
		}
		return nil, fmt.Errorf("invalid %s response: %w", operation, err)
	}

	return parseBody(doc, operation, httpResp.StatusCode)
}

// buildEnvelope writes:
//
//	<soapenv:Envelope xmlns:soapenv=".." xmlns:cli="..">
//	  <soapenv:Header/>
//	  <soapenv:Body><cli:operation><param>value</param>...</cli:operation></soapenv:Body>
//	</soapenv:Envelope>
func (c *Client) buildEnvelope(operation string, params []Param) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	env := doc.CreateElement("soapenv:Envelope")
	env.CreateAttr("xmlns:soapenv", EnvelopeNamespace)
	env.CreateAttr("xmlns:"+c.cfg.Prefix, c.cfg.Namespace)

	env.CreateElement("soapenv:Header")
	body := env.CreateElement("soapenv:Body")
	op := body.CreateElement(c.cfg.Prefix + ":" + operation)

	for _, p := range params {
		for _, v := range p.Values {
			op.CreateElement(p.Name).SetText(v)
		}
	}

	return doc
}

func parseBody(doc *etree.Document, operation string, status int) (*etree.Element, error) {
	root := doc.Root()
	if root.Tag != "Envelope" {
		return nil, fmt.Errorf("invalid %s response: root element is %s", operation, root.Tag)
	}

	body := root.SelectElement("Body")
	if body == nil {
		return nil, fmt.Errorf("invalid %s response: missing Body", operation)
	}

	if f := body.SelectElement("Fault"); f != nil {
		fault := &Fault{
			Code:      xmlutil.ChildText(f, "faultcode"),
			String:    xmlutil.ChildText(f, "faultstring"),
			Operation: operation,
		}
		if d := f.SelectElement("detail"); d != nil {
			fault.Detail = strings.TrimSpace(detailText(d))
		}
		return nil, fault
	}

	if status >= http.StatusBadRequest {
		return nil, fmt.Errorf("unexpected status code %d from %s", status, operation)
	}

	children := body.ChildElements()
	if len(children) == 0 {
		return nil, fmt.Errorf("invalid %s response: empty Body", operation)
	}
	return children[0], nil
}

// detailText flattens the text of a fault detail, which usually wraps a
// service specific exception element.
func detailText(el *etree.Element) string {
	var parts []string
	if t := strings.TrimSpace(el.Text()); t != "" {
		parts = append(parts, t)
	}
	for _, child := range el.ChildElements() {
		if t := detailText(child); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeOK
	}
	var fault *Fault
	if errors.As(err, &fault) {
		return metrics.OutcomeFault
	}
	return metrics.OutcomeError
}

// ReturnText returns the trimmed text of the first <return> child of resp.
func ReturnText(resp *etree.Element) string {
	return xmlutil.ChildText(resp, "return")
}

// Returns returns every <return> child of resp.
func Returns(resp *etree.Element) []*etree.Element {
	if resp == nil {
		return nil
	}
	return resp.SelectElements("return")
}
