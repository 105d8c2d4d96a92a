package postgrest

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/domain/position"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/postgrest"
)

type positionRepositoryImpl struct {
	client *postgrest.Client
}

func NewPositionRepository(client *postgrest.Client) position.Repository {
	return &positionRepositoryImpl{client: client}
}

// ListAll implements position.Repository.
func (r *positionRepositoryImpl) ListAll(ctx context.Context) ([]position.Position, error) {
	query := postgrest.NewQuery().Select("*").OrderAsc("nama")

	positions := []position.Position{}
	if err := r.client.Get(ctx, "jabatan", query, &positions); err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	return positions, nil
}

// Insert implements position.Repository.
func (r *positionRepositoryImpl) Insert(ctx context.Context, p position.NewPosition) error {
	body := map[string]any{
		"nama":      p.Nama,
		"tunjangan": p.Tunjangan,
	}

	if err := r.client.Post(ctx, "jabatan", body); err != nil {
		return fmt.Errorf("failed to insert position: %w", err)
	}

	return nil
}

// Update implements position.Repository. The row is addressed by its
// current nama; renaming changes the identity used by later lookups.
func (r *positionRepositoryImpl) Update(ctx context.Context, nama string, p position.NewPosition) error {
	query := postgrest.NewQuery().Eq("nama", nama)
	body := map[string]any{
		"nama":      p.Nama,
		"tunjangan": p.Tunjangan,
	}

	if err := r.client.Patch(ctx, "jabatan", query, body); err != nil {
		return fmt.Errorf("failed to update position %q: %w", nama, err)
	}

	return nil
}

// Delete implements position.Repository.
func (r *positionRepositoryImpl) Delete(ctx context.Context, nama string) error {
	query := postgrest.NewQuery().Eq("nama", nama)

	if err := r.client.Delete(ctx, "jabatan", query); err != nil {
		return fmt.Errorf("failed to delete position %q: %w", nama, err)
	}

	return nil
}
