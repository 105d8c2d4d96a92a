package admin

import "context"

// Repository is the credential-lookup contract. There is no session or
// token entity behind it; login is a single filtered read.
type Repository interface {
	// FindByCredentials returns the admin matching both email and
	// password, or nil when no row matches. Backend and transport
	// failures are returned as errors, distinct from a failed match.
	FindByCredentials(ctx context.Context, email, password string) (*Admin, error)
}
