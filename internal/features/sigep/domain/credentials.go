package domain

import (
	"errors"
	"fmt"
	"strings"

	"sigep-gateway/internal/core/validation"
)

// ErrInvalidCredentials is returned when required contract data is missing or malformed.
var ErrInvalidCredentials = errors.New("invalid sigep credentials")

// Endpoints of the AtendeCliente service.
const (
	SandboxURL    = "https://apphom.correios.com.br/SigepMasterJPA/AtendeClienteService/AtendeCliente"
	ProductionURL = "https://apps.correios.com.br/SigepMasterJPA/AtendeClienteService/AtendeCliente"

	// Namespace is the target namespace of the AtendeCliente operations.
	Namespace = "http://cliente.bean.master.sigep.bsb.correios.com.br/"
)

// SenderInfo is the sender address block printed in every PLP.
type SenderInfo struct {
	Name         string `json:"name" validate:"required,max=50"`
	Street       string `json:"street" validate:"required,max=50"`
	Number       string `json:"number" validate:"required,max=6"`
	Complement   string `json:"complement" validate:"max=30"`
	Neighborhood string `json:"neighborhood" validate:"max=30"`
	Zip          string `json:"zip" validate:"required,numeric,len=8"`
	City         string `json:"city" validate:"required,max=30"`
	State        string `json:"state" validate:"required,len=2,alpha"`
	Phone        string `json:"phone" validate:"omitempty,numeric,max=12"`
	Fax          string `json:"fax" validate:"omitempty,numeric,max=12"`
	Email        string `json:"email" validate:"omitempty,email,max=50"`
}

// Credentials is the contract data one gateway authenticates with.
// Build it with NewCredentials; the value is copied into the gateway and never changed.
type Credentials struct {
	// Contract is the contract number (idContrato).
	Contract string `json:"contract" validate:"required,numeric,max=10"`
	// CNPJ is the company tax id sent as identificador.
	CNPJ string `json:"cnpj" validate:"required"`
	// User is the SIGEP login.
	User string `json:"user" validate:"required"`
	// Password is the SIGEP password.
	Password string `json:"-" validate:"required"`
	// PostageCard is the postage card number (idCartaoPostagem).
	PostageCard string `json:"postage_card" validate:"required,numeric,max=10"`
	// OriginZip is the zip code shipments leave from.
	OriginZip string `json:"origin_zip" validate:"required,numeric,len=8"`
	// AdminCode is the administrative code (codAdministrativo).
	AdminCode string `json:"admin_code" validate:"required,numeric,max=8"`
	// RegionalCode is the regional office number. Leading zeros are dropped
	// on construction, so "00074" is stored as "74".
	RegionalCode string `json:"regional_code" validate:"required,numeric,max=3"`
	// Sender is the sender address block.
	Sender SenderInfo `json:"sender"`
	// Sandbox selects the homologation endpoint.
	Sandbox bool `json:"sandbox"`
}

// NewCredentials normalizes zip codes and the regional code, then validates
// every field against the bounds the PLP document enforces.
func NewCredentials(c Credentials) (Credentials, error) {
	if c.RegionalCode != "" {
		c.RegionalCode = trimLeadingZeros(c.RegionalCode)
	}
	if c.OriginZip != "" {
		c.OriginZip = NormalizeZipCode(c.OriginZip)
	}
	if c.Sender.Zip != "" {
		c.Sender.Zip = NormalizeZipCode(c.Sender.Zip)
	}

	if err := validation.Struct(c); err != nil {
		return Credentials{}, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	return c, nil
}

func trimLeadingZeros(s string) string {
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// Endpoint returns the AtendeCliente location for the selected environment.
func (c Credentials) Endpoint() string {
	if c.Sandbox {
		return SandboxURL
	}
	return ProductionURL
}
