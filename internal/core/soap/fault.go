package soap

import "fmt"

// Fault is a SOAP 1.1 fault returned by the remote service.
type Fault struct {
	// Code is the faultcode, e.g. "soap:Server".
	Code string
	// String is the human readable faultstring.
	String string
	// Detail is the text content of the detail element, if any.
	Detail string
	// Operation is the operation that produced the fault.
	Operation string
}

// Error implements error.
func (f *Fault) Error() string {
	if f.Detail != "" {
		return fmt.Sprintf("soap fault in %s: %s: %s (%s)", f.Operation, f.Code, f.String, f.Detail)
	}
	return fmt.Sprintf("soap fault in %s: %s: %s", f.Operation, f.Code, f.String)
}
