package ports

import (
	"context"

	"sigep-gateway/internal/features/tracking/domain"
)

// TrackingProvider defines the interface for courier tracking implementations.
type TrackingProvider interface {
	// Lookup retrieves the events of one tracking code. A code unknown to the
	// courier is a result with Found set to false, not an error.
	Lookup(ctx context.Context, trackingCode string, lastEventOnly bool) (*domain.TrackingResult, error)
	// SupportsCourier returns true if this provider supports the given courier name.
	SupportsCourier(courierName string) bool
}
