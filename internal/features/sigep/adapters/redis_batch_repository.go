package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"sigep-gateway/internal/core/cache"
	"sigep-gateway/internal/features/sigep/domain"
)

const (
	batchSequenceKey = "sigep:plp:seq"
	batchKeyPrefix   = "sigep:plp:"
)

// RedisBatchRepository implements ports.BatchRepository on top of the cache port.
type RedisBatchRepository struct {
	cache cache.Cache
}

// NewRedisBatchRepository creates a new RedisBatchRepository.
func NewRedisBatchRepository(c cache.Cache) *RedisBatchRepository {
	return &RedisBatchRepository{
		cache: c,
	}
}

func batchKey(remoteID int64) string {
	return fmt.Sprintf("%s%d", batchKeyPrefix, remoteID)
}

// NextInternalNumber increments the PLP sequence.
func (r *RedisBatchRepository) NextInternalNumber(ctx context.Context) (int64, error) {
	n, err := r.cache.Incr(ctx, batchSequenceKey)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate plp number: %w", err)
	}
	return n, nil
}

// Save stores a closed batch without expiration.
func (r *RedisBatchRepository) Save(ctx context.Context, batch *domain.Batch) error {
	if !batch.Closed() {
		return fmt.Errorf("failed to save plp %d: batch has no remote id", batch.InternalNumber)
	}

	data, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to marshal plp: %w", err)
	}

	if err := r.cache.Set(ctx, batchKey(batch.RemoteID), data, 0); err != nil {
		return fmt.Errorf("failed to save plp: %w", err)
	}
	return nil
}

// Get loads a batch by remote id. It returns nil, nil when the batch is unknown.
func (r *RedisBatchRepository) Get(ctx context.Context, remoteID int64) (*domain.Batch, error) {
	data, err := r.cache.Get(ctx, batchKey(remoteID))
	if errors.Is(err, cache.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plp: %w", err)
	}

	var batch domain.Batch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plp: %w", err)
	}
	return &batch, nil
}
