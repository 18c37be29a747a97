package adapters

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"sigep-gateway/internal/core/config"
	"sigep-gateway/internal/core/logger"
	"sigep-gateway/internal/core/soap"
	"sigep-gateway/internal/core/xmlutil"
	"sigep-gateway/internal/features/sigep/domain"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// recipientTypeClient is the tipoDestinatario sent with solicitaEtiquetas.
const recipientTypeClient = "C"

// AtendeClienteGateway implements ports.Gateway against the SIGEP AtendeCliente service.
// It owns one set of credentials and one endpoint; it is safe for concurrent use.
type AtendeClienteGateway struct {
	creds  domain.Credentials
	client *soap.Client
	logger *zap.Logger
}

// NewAtendeClienteGateway creates a gateway for creds. When endpoint is empty
// the sandbox or production URL is chosen from creds.Sandbox.
func NewAtendeClienteGateway(creds domain.Credentials, endpoint string, httpClient *http.Client) *AtendeClienteGateway {
	if endpoint == "" {
		endpoint = creds.Endpoint()
	}
	return &AtendeClienteGateway{
		creds: creds,
		client: soap.NewClient(soap.Config{
			Name:      "atendecliente",
			Endpoint:  endpoint,
			Namespace: domain.Namespace,
			Prefix:    "cli",
		}, httpClient),
		logger: logger.Named("sigep.gateway"),
	}
}

// CredentialsFromConfig builds validated credentials from the application configuration.
func CredentialsFromConfig(cfg config.SigepConfig) (domain.Credentials, error) {
	return domain.NewCredentials(domain.Credentials{
		Contract:     cfg.Contract,
		CNPJ:         cfg.CNPJ,
		User:         cfg.User,
		Password:     cfg.Password,
		PostageCard:  cfg.PostageCard,
		OriginZip:    cfg.OriginZip,
		AdminCode:    cfg.AdminCode,
		RegionalCode: cfg.RegionalCode,
		Sandbox:      cfg.Sandbox,
		Sender: domain.SenderInfo{
			Name:         cfg.Sender.Name,
			Street:       cfg.Sender.Street,
			Number:       cfg.Sender.Number,
			Complement:   cfg.Sender.Complement,
			Neighborhood: cfg.Sender.Neighborhood,
			Zip:          cfg.Sender.Zip,
			City:         cfg.Sender.City,
			State:        cfg.Sender.State,
			Phone:        cfg.Sender.Phone,
			Fax:          cfg.Sender.Fax,
			Email:        cfg.Sender.Email,
		},
	})
}

// Endpoint returns the service location this gateway calls.
func (g *AtendeClienteGateway) Endpoint() string {
	return g.client.Endpoint()
}

func (g *AtendeClienteGateway) auth() []soap.Param {
	return []soap.Param{
		soap.P("usuario", g.creds.User),
		soap.P("senha", g.creds.Password),
	}
}

// ListAvailableServices calls buscaServicos.
func (g *AtendeClienteGateway) ListAvailableServices(ctx context.Context) ([]domain.Service, error) {
	params := append([]soap.Param{
		soap.P("idContrato", g.creds.Contract),
		soap.P("idCartaoPostagem", g.creds.PostageCard),
	}, g.auth()...)

	resp, err := g.client.Call(ctx, "buscaServicos", params...)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	returns := soap.Returns(resp)
	services := make([]domain.Service, 0, len(returns))
	for _, r := range returns {
		services = append(services, parseService(r))
	}
	return services, nil
}

// IsServiceAvailable calls verificaDisponibilidadeServico. Faults and transport
// errors are logged and reported as unavailable.
func (g *AtendeClienteGateway) IsServiceAvailable(ctx context.Context, serviceCode, destinationZip string) bool {
	params := append([]soap.Param{
		soap.P("codAdministrativo", g.creds.AdminCode),
		soap.P("numeroServico", serviceCode),
		soap.P("cepOrigem", g.creds.OriginZip),
		soap.P("cepDestino", domain.NormalizeZipCode(destinationZip)),
	}, g.auth()...)

	resp, err := g.client.Call(ctx, "verificaDisponibilidadeServico", params...)
	if err != nil {
		g.logger.Warn("Service availability check failed",
			zap.String("service_code", serviceCode),
			zap.String("destination_zip", destinationZip),
			zap.Error(err),
		)
		return false
	}

	answer := soap.ReturnText(resp)
	available := strings.EqualFold(answer, "true") || strings.HasPrefix(answer, "0#")
	if !available {
		g.logger.Debug("Service not available",
			zap.String("service_code", serviceCode),
			zap.String("answer", answer),
		)
	}
	return available
}

// FetchClientData calls buscaCliente.
func (g *AtendeClienteGateway) FetchClientData(ctx context.Context) (*domain.ClientData, error) {
	params := append([]soap.Param{
		soap.P("idContrato", g.creds.Contract),
		soap.P("idCartaoPostagem", g.creds.PostageCard),
	}, g.auth()...)

	resp, err := g.client.Call(ctx, "buscaCliente", params...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client data: %w", err)
	}

	ret := resp.SelectElement("return")
	if ret == nil {
		return nil, fmt.Errorf("failed to fetch client data: empty response")
	}

	data := &domain.ClientData{
		CNPJ:   xmlutil.ChildText(ret, "cnpj"),
		Name:   xmlutil.ChildText(ret, "nome"),
		Status: xmlutil.ChildText(ret, "descricaoStatusCliente"),
	}

	for _, c := range ret.SelectElements("contratos") {
		contract := domain.Contract{
			Number: xmlutil.ChildText(c.SelectElement("contratoPK"), "numero"),
		}
		for _, card := range c.SelectElements("cartoesPostagem") {
			pc := domain.PostageCard{Number: xmlutil.ChildText(card, "numero")}
			for _, s := range card.SelectElements("servicos") {
				pc.Services = append(pc.Services, parseService(s))
			}
			contract.PostageCards = append(contract.PostageCards, pc)
		}
		data.Contracts = append(data.Contracts, contract)
	}

	raw := etree.NewDocument()
	raw.SetRoot(ret.Copy())
	if s, err := raw.WriteToString(); err == nil {
		data.Raw = s
	}

	return data, nil
}

// RequestTrackingCodes calls solicitaEtiquetas. The carrier answers with a comma
// separated list; a quantity of one always yields exactly one code.
func (g *AtendeClienteGateway) RequestTrackingCodes(ctx context.Context, serviceID string, quantity int) ([]string, error) {
	if quantity < 1 {
		quantity = 1
	}

	params := append([]soap.Param{
		soap.P("tipoDestinatario", recipientTypeClient),
		soap.P("identificador", g.creds.CNPJ),
		soap.P("idServico", serviceID),
		soap.P("qtdEtiquetas", strconv.Itoa(quantity)),
	}, g.auth()...)

	resp, err := g.client.Call(ctx, "solicitaEtiquetas", params...)
	if err != nil {
		return nil, fmt.Errorf("failed to request tracking codes: %w", err)
	}

	var codes []string
	for _, c := range strings.Split(soap.ReturnText(resp), ",") {
		if c = strings.TrimSpace(c); c != "" {
			codes = append(codes, c)
		}
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("failed to request tracking codes: empty response")
	}

	if quantity == 1 {
		return codes[:1], nil
	}
	return codes, nil
}

// GenerateCheckDigits calls geraDigitoVerificadorEtiquetas.
func (g *AtendeClienteGateway) GenerateCheckDigits(ctx context.Context, codes []string) ([]int, error) {
	params := append([]soap.Param{soap.List("etiquetas", codes)}, g.auth()...)

	resp, err := g.client.Call(ctx, "geraDigitoVerificadorEtiquetas", params...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate check digits: %w", err)
	}

	returns := soap.Returns(resp)
	digits := make([]int, 0, len(returns))
	for _, r := range returns {
		d, err := strconv.Atoi(strings.TrimSpace(r.Text()))
		if err != nil {
			return nil, fmt.Errorf("failed to parse check digit %q: %w", r.Text(), err)
		}
		digits = append(digits, d)
	}
	if len(digits) != len(codes) {
		return nil, fmt.Errorf("failed to generate check digits: got %d digits for %d codes", len(digits), len(codes))
	}
	return digits, nil
}

// RequestBatchDocument calls solicitaPLP.
func (g *AtendeClienteGateway) RequestBatchDocument(ctx context.Context, remoteID int64, codes []string) (string, error) {
	params := append([]soap.Param{
		soap.P("idPlpMaster", strconv.FormatInt(remoteID, 10)),
		soap.List("numEtiqueta", codes),
	}, g.auth()...)

	resp, err := g.client.Call(ctx, "solicitaPLP", params...)
	if err != nil {
		return "", fmt.Errorf("failed to request plp %d: %w", remoteID, err)
	}

	return soap.ReturnText(resp), nil
}

// CloseBatch calls fechaPlpVariosServicos. Remote errors are returned as is.
func (g *AtendeClienteGateway) CloseBatch(ctx context.Context, xml string, internalNumber int64, codes []string) (int64, error) {
	params := append([]soap.Param{
		soap.P("xml", xml),
		soap.P("idPlpCliente", strconv.FormatInt(internalNumber, 10)),
		soap.P("cartaoPostagem", g.creds.PostageCard),
		soap.List("listaEtiquetas", codes),
	}, g.auth()...)

	resp, err := g.client.Call(ctx, "fechaPlpVariosServicos", params...)
	if err != nil {
		return 0, fmt.Errorf("failed to close plp %d: %w", internalNumber, err)
	}

	id, err := strconv.ParseInt(soap.ReturnText(resp), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse plp id: %w", err)
	}

	g.logger.Info("PLP closed",
		zap.Int64("internal_number", internalNumber),
		zap.Int64("remote_id", id),
		zap.Int("objects", len(codes)),
	)
	return id, nil
}

// parseService reads a service entry. Plain text entries carry only the code.
func parseService(el *etree.Element) domain.Service {
	if len(el.ChildElements()) == 0 {
		return domain.Service{Code: strings.TrimSpace(el.Text())}
	}
	return domain.Service{
		ID:          xmlutil.ChildText(el, "id"),
		Code:        xmlutil.ChildText(el, "codigo"),
		Description: xmlutil.ChildText(el, "descricao"),
	}
}
