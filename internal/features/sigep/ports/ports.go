package ports

import (
	"context"

	"sigep-gateway/internal/features/sigep/domain"
)

// Gateway exposes the AtendeCliente operations for one contract.
// Every method performs at most one blocking remote call.
type Gateway interface {
	// ListAvailableServices returns the services of the contract postage card (buscaServicos).
	ListAvailableServices(ctx context.Context) ([]domain.Service, error)
	// IsServiceAvailable reports whether serviceCode delivers to destinationZip
	// (verificaDisponibilidadeServico). Remote failures are reported as false.
	IsServiceAvailable(ctx context.Context, serviceCode, destinationZip string) bool
	// FetchClientData returns the contract descriptor (buscaCliente).
	FetchClientData(ctx context.Context) (*domain.ClientData, error)
	// RequestTrackingCodes reserves quantity codes with a check digit placeholder (solicitaEtiquetas).
	RequestTrackingCodes(ctx context.Context, serviceID string, quantity int) ([]string, error)
	// GenerateCheckDigits returns one check digit per code (geraDigitoVerificadorEtiquetas).
	GenerateCheckDigits(ctx context.Context, codes []string) ([]int, error)
	// RequestBatchDocument returns the XML of a closed PLP (solicitaPLP).
	RequestBatchDocument(ctx context.Context, remoteID int64, codes []string) (string, error)
	// CloseBatch submits a PLP document and returns the carrier id (fechaPlpVariosServicos).
	CloseBatch(ctx context.Context, xml string, internalNumber int64, codes []string) (int64, error)
}

// BatchRepository stores closed batches and hands out internal PLP numbers.
type BatchRepository interface {
	// NextInternalNumber returns a new, strictly increasing internal number.
	NextInternalNumber(ctx context.Context) (int64, error)
	// Save stores a closed batch by its remote id.
	Save(ctx context.Context, batch *domain.Batch) error
	// Get returns the batch with remoteID, or nil, nil when unknown.
	Get(ctx context.Context, remoteID int64) (*domain.Batch, error)
}

// LabelService is the contract-level API used by the HTTP handlers.
type LabelService interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	CheckAvailability(ctx context.Context, serviceCode, destinationZip string) bool
	ClientData(ctx context.Context) (*domain.ClientData, error)
	IssueTrackingCodes(ctx context.Context, serviceID string, quantity int) ([]string, error)
}

// BatchService assembles, submits and reprints PLPs.
type BatchService interface {
	CreateBatch(ctx context.Context, internalNumber int64, items []domain.ShipmentItem) (*domain.Batch, error)
	BatchDocument(ctx context.Context, remoteID int64) (string, error)
}
