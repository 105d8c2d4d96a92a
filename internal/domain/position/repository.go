package position

import "context"

// Repository is the storage contract for positions.
//
// Positions are addressed by their current nama. Renaming a position via
// Update changes its identity for subsequent lookups; callers must use
// the new name afterwards.
type Repository interface {
	// ListAll returns every position ordered by nama ascending; an empty
	// slice when there are none.
	ListAll(ctx context.Context) ([]Position, error)

	// Insert creates a new position.
	Insert(ctx context.Context, p NewPosition) error

	// Update rewrites the position currently named nama.
	Update(ctx context.Context, nama string, p NewPosition) error

	// Delete removes the position named nama.
	Delete(ctx context.Context, nama string) error
}
