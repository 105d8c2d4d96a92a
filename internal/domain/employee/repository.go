package employee

import "context"

// Repository is the storage contract for employees. Both the remote
// PostgREST adapter and the embedded local store implement it, so the
// service layer never knows which backend it is talking to.
//
// Deleting an employee does not touch its attendance rows
// (orphan-and-ignore; there is no cascade policy in the schema).
type Repository interface {
	// ListAll returns every employee; an empty slice when there are none.
	ListAll(ctx context.Context) ([]Employee, error)

	// Insert creates a new employee. The store enforces NIK uniqueness.
	Insert(ctx context.Context, e NewEmployee) error

	// Update rewrites the employee addressed by e.ID. IsActive is not
	// part of the update payload; no toggle path exists.
	Update(ctx context.Context, e Employee) error

	// Delete removes the employee with the given id.
	Delete(ctx context.Context, id int64) error
}
