package service

import (
	"context"
	"errors"
	"fmt"

	"sigep-gateway/internal/core/logger"
	"sigep-gateway/internal/core/metrics"
	"sigep-gateway/internal/features/tracking/domain"
	"sigep-gateway/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// DefaultCourier is used when the caller does not name one.
const DefaultCourier = "correios"

var (
	// ErrCourierNotSupported is returned when no provider supports the requested courier.
	ErrCourierNotSupported = errors.New("courier not supported")
)

// TrackingService orchestrates tracking requests across courier providers.
type TrackingService struct {
	providers []ports.TrackingProvider
	logger    *zap.Logger
}

// NewTrackingService creates a new TrackingService with the given providers.
func NewTrackingService(providers []ports.TrackingProvider) *TrackingService {
	return &TrackingService{
		providers: providers,
		logger:    logger.Named("tracking"),
	}
}

// Lookup retrieves the events of trackingCode from the provider serving courier
// and derives the shipment status from the most recent event.
func (s *TrackingService) Lookup(ctx context.Context, trackingCode, courier string, lastEventOnly bool) (*domain.TrackingResult, error) {
	if courier == "" {
		courier = DefaultCourier
	}

	for _, provider := range s.providers {
		if !provider.SupportsCourier(courier) {
			continue
		}

		result, err := provider.Lookup(ctx, trackingCode, lastEventOnly)
		if err != nil {
			metrics.TrackingLookupsTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("failed to get tracking from provider: %w", err)
		}

		if !result.Found {
			metrics.TrackingLookupsTotal.WithLabelValues("not_found").Inc()
			return result, nil
		}

		metrics.TrackingLookupsTotal.WithLabelValues("found").Inc()
		s.classify(result)
		return result, nil
	}

	return nil, ErrCourierNotSupported
}

func (s *TrackingService) classify(result *domain.TrackingResult) {
	latest := result.LatestEvent()
	if latest == nil {
		result.Status = domain.StatusCreated
		return
	}

	status, known := domain.ClassifyEvent(latest.Type, latest.Status)
	if !known {
		s.logger.Warn("Unknown tracking event",
			zap.String("tracking_code", result.TrackingCode),
			zap.String("type", latest.Type),
			zap.String("status", latest.Status),
			zap.String("description", latest.Description),
		)
	}
	result.Status = status
}
