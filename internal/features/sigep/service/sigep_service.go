package service

import (
	"context"
	"fmt"
	"strconv"

	"sigep-gateway/internal/features/sigep/domain"
	"sigep-gateway/internal/features/sigep/ports"

	"github.com/samber/lo"
)

// SigepService implements ports.LabelService on top of a gateway.
type SigepService struct {
	gateway ports.Gateway
}

// NewSigepService creates a new SigepService.
func NewSigepService(gateway ports.Gateway) *SigepService {
	return &SigepService{
		gateway: gateway,
	}
}

// ListServices returns the services of the configured postage card.
func (s *SigepService) ListServices(ctx context.Context) ([]domain.Service, error) {
	services, err := s.gateway.ListAvailableServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return services, nil
}

// CheckAvailability reports whether serviceCode delivers to destinationZip.
func (s *SigepService) CheckAvailability(ctx context.Context, serviceCode, destinationZip string) bool {
	return s.gateway.IsServiceAvailable(ctx, serviceCode, destinationZip)
}

// ClientData returns the contract descriptor.
func (s *SigepService) ClientData(ctx context.Context) (*domain.ClientData, error) {
	data, err := s.gateway.FetchClientData(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return data, nil
}

// IssueTrackingCodes reserves quantity codes and fills in their check digits.
func (s *SigepService) IssueTrackingCodes(ctx context.Context, serviceID string, quantity int) ([]string, error) {
	codes, err := s.gateway.RequestTrackingCodes(ctx, serviceID, quantity)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	digits, err := s.gateway.GenerateCheckDigits(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	return lo.Map(codes, func(code string, i int) string {
		return domain.AppendCheckDigit(code, strconv.Itoa(digits[i]))
	}), nil
}

// NewTrackingCode reserves a single finished code for serviceID.
func (s *SigepService) NewTrackingCode(ctx context.Context, serviceID string) (string, error) {
	codes, err := s.IssueTrackingCodes(ctx, serviceID, 1)
	if err != nil {
		return "", err
	}
	return codes[0], nil
}
