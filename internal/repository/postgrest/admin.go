package postgrest

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/domain/admin"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/postgrest"
)

type adminRepositoryImpl struct {
	client *postgrest.Client
}

func NewAdminRepository(client *postgrest.Client) admin.Repository {
	return &adminRepositoryImpl{client: client}
}

// FindByCredentials implements admin.Repository. The backend compares
// both columns; the credentials travel in the filter predicate.
func (r *adminRepositoryImpl) FindByCredentials(ctx context.Context, email, password string) (*admin.Admin, error) {
	query := postgrest.NewQuery().
		Select("email").
		Eq("email", email).
		Eq("password", password).
		Limit(1)

	admins := []admin.Admin{}
	if err := r.client.Get(ctx, "admin", query, &admins); err != nil {
		return nil, fmt.Errorf("failed to look up admin credentials: %w", err)
	}

	if len(admins) == 0 {
		return nil, nil
	}
	return &admins[0], nil
}
