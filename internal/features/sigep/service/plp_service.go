package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sigep-gateway/internal/core/logger"
	"sigep-gateway/internal/core/metrics"
	"sigep-gateway/internal/features/sigep/document"
	"sigep-gateway/internal/features/sigep/domain"
	"sigep-gateway/internal/features/sigep/ports"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

var (
	// ErrEmptyBatch is returned when a batch has no items.
	ErrEmptyBatch = errors.New("plp has no items")
	// ErrBatchNotFound is returned when no closed batch has the requested id.
	ErrBatchNotFound = errors.New("plp not found")
)

const (
	resultClosed          = "closed"
	resultInvalidDocument = "invalid_document"
	resultRemoteError     = "remote_error"
)

// PLPService implements ports.BatchService.
type PLPService struct {
	gateway ports.Gateway
	repo    ports.BatchRepository
	creds   domain.Credentials
	now     func() time.Time
	logger  *zap.Logger
}

// NewPLPService creates a PLPService that renders documents with creds.
func NewPLPService(gateway ports.Gateway, repo ports.BatchRepository, creds domain.Credentials) *PLPService {
	return &PLPService{
		gateway: gateway,
		repo:    repo,
		creds:   creds,
		now:     time.Now,
		logger:  logger.Named("sigep.plp"),
	}
}

// CreateBatch renders items into one PLP document, validates it and closes it
// with the carrier. An invalid document is rejected before any remote call.
// When internalNumber is zero the next number of the repository sequence is used.
// The returned batch carries the codes without check digits, in item order.
func (s *PLPService) CreateBatch(ctx context.Context, internalNumber int64, items []domain.ShipmentItem) (*domain.Batch, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBatch
	}

	xml, err := document.Build(document.NewData(s.creds, items))
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	if err := document.Validate(xml); err != nil {
		metrics.BatchesClosedTotal.WithLabelValues(resultInvalidDocument).Inc()
		return nil, err
	}

	if internalNumber == 0 {
		internalNumber, err = s.repo.NextInternalNumber(ctx)
		if err != nil {
			return nil, fmt.Errorf("service: %w", err)
		}
	}

	codes := lo.Map(items, func(item domain.ShipmentItem, _ int) string {
		return domain.StripCheckDigit(item.TrackingCode)
	})

	remoteID, err := s.gateway.CloseBatch(ctx, xml, internalNumber, codes)
	if err != nil {
		metrics.BatchesClosedTotal.WithLabelValues(resultRemoteError).Inc()
		return nil, fmt.Errorf("service: %w", err)
	}
	metrics.BatchesClosedTotal.WithLabelValues(resultClosed).Inc()

	batch := &domain.Batch{
		InternalNumber: internalNumber,
		TrackingCodes:  codes,
	}
	if err := batch.AssignRemoteID(remoteID, s.now()); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	if err := s.repo.Save(ctx, batch); err != nil {
		s.logger.Error("Failed to record closed PLP",
			zap.Int64("internal_number", internalNumber),
			zap.Int64("remote_id", remoteID),
			zap.Error(err),
		)
	}

	return batch, nil
}

// BatchDocument returns the carrier copy of a closed batch.
func (s *PLPService) BatchDocument(ctx context.Context, remoteID int64) (string, error) {
	batch, err := s.repo.Get(ctx, remoteID)
	if err != nil {
		return "", fmt.Errorf("service: %w", err)
	}
	if batch == nil {
		return "", ErrBatchNotFound
	}

	xml, err := s.gateway.RequestBatchDocument(ctx, remoteID, batch.TrackingCodes)
	if err != nil {
		return "", fmt.Errorf("service: %w", err)
	}
	return xml, nil
}
