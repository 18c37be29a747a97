package domain

import (
	"errors"
	"time"
)

// ErrRemoteIDAssigned is returned when a batch already carries a remote id.
var ErrRemoteIDAssigned = errors.New("plp remote id already assigned")

// Batch is a PLP closed with the carrier.
type Batch struct {
	// InternalNumber is the caller side sequence number (idPlpCliente).
	InternalNumber int64 `json:"internal_number"`
	// RemoteID is the id assigned by the carrier on a successful close.
	RemoteID int64 `json:"remote_id"`
	// TrackingCodes are the submitted codes without check digits, in item order.
	TrackingCodes []string `json:"tracking_codes"`
	// ClosedAt is when the carrier accepted the batch.
	ClosedAt time.Time `json:"closed_at"`
}

// AssignRemoteID records the carrier id. It can only be set once.
func (b *Batch) AssignRemoteID(id int64, at time.Time) error {
	if b.RemoteID != 0 {
		return ErrRemoteIDAssigned
	}
	b.RemoteID = id
	b.ClosedAt = at
	return nil
}

// Closed reports whether the carrier accepted the batch.
func (b *Batch) Closed() bool {
	return b.RemoteID != 0
}
