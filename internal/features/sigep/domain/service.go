package domain

// Well known postage service codes.
const (
	ServicePAC     = "41106"
	ServiceSEDEX   = "40010"
	ServiceSEDEX10 = "40215"
	ServiceSEDEX12 = "40169"

	ServicePACContract    = "41068"
	ServiceSEDEXContract  = "40096"
	ServiceESEDEXContract = "81019"
)

// Service is one entry of the contract service list (buscaServicos).
type Service struct {
	// ID is the internal service id used by solicitaEtiquetas.
	ID string `json:"id"`
	// Code is the postage service code, e.g. "40096".
	Code string `json:"code"`
	// Description is the carrier name for the service.
	Description string `json:"description"`
}

// ClientData is the contract descriptor returned by buscaCliente.
type ClientData struct {
	CNPJ      string     `json:"cnpj"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	Contracts []Contract `json:"contracts"`

	// Raw is the response element as returned by the carrier.
	Raw string `json:"raw,omitempty"`
}

// Contract is one contract of the client with its postage cards.
type Contract struct {
	Number       string        `json:"number"`
	PostageCards []PostageCard `json:"postage_cards"`
}

// PostageCard is one postage card and the services it may use.
type PostageCard struct {
	Number   string    `json:"number"`
	Services []Service `json:"services"`
}
