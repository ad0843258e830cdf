package ports

import (
	"context"

	"steelflow/internal/core/domain/model/coil"
	"steelflow/internal/core/domain/model/kernel"
)

// CoilRepository defines the persistence contract for coil aggregates.
// Several work orders may draw from one coil concurrently, so Update commits
// the remaining-weight decrement as a compare-and-swap against the stored
// version stamp.
type CoilRepository interface {
	// Get retrieves a coil aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*coil.Coil, error)

	// GetByTag retrieves a coil by the tag number stamped on it.
	// Returns an object-not-found error for an unknown tag.
	GetByTag(ctx context.Context, tagNumber string) (*coil.Coil, error)

	// Update persists the coil's consumed weight. Fails with a version
	// conflict when another writer committed first; the caller re-reads
	// the coil and retries or surfaces the conflict.
	Update(ctx context.Context, aggregate *coil.Coil) error
}
