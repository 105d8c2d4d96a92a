package position

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/domain/position"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/postgrest"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/validator"
)

type fakePositionRepo struct {
	positions []position.Position
	insertErr error
	updateErr error
	deleteErr error

	gotUpdatedNama string
	gotDeletedNama string
	gotInserted    position.NewPosition
}

func (f *fakePositionRepo) ListAll(ctx context.Context) ([]position.Position, error) {
	return f.positions, nil
}

func (f *fakePositionRepo) Insert(ctx context.Context, p position.NewPosition) error {
	f.gotInserted = p
	return f.insertErr
}

func (f *fakePositionRepo) Update(ctx context.Context, nama string, p position.NewPosition) error {
	f.gotUpdatedNama = nama
	return f.updateErr
}

func (f *fakePositionRepo) Delete(ctx context.Context, nama string) error {
	f.gotDeletedNama = nama
	return f.deleteErr
}

func TestAddPosition(t *testing.T) {
	repo := &fakePositionRepo{}
	svc := NewPositionService(repo)

	err := svc.AddPosition(context.Background(), position.CreatePositionRequest{
		Nama:      "Supervisor",
		Tunjangan: decimal.NewFromFloat(750000.50),
	})

	require.NoError(t, err)
	assert.Equal(t, "Supervisor", repo.gotInserted.Nama)
	assert.True(t, repo.gotInserted.Tunjangan.Equal(decimal.NewFromFloat(750000.50)))
}

func TestAddPositionEmptyName(t *testing.T) {
	svc := NewPositionService(&fakePositionRepo{})

	err := svc.AddPosition(context.Background(), position.CreatePositionRequest{Nama: "  "})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "nama")
}

func TestAddPositionDuplicateName(t *testing.T) {
	repo := &fakePositionRepo{insertErr: &postgrest.BackendError{Status: 409, Body: "23505"}}
	svc := NewPositionService(repo)

	err := svc.AddPosition(context.Background(), position.CreatePositionRequest{
		Nama:      "Staff",
		Tunjangan: decimal.Zero,
	})

	assert.ErrorIs(t, err, position.ErrPositionNameExists)
}

func TestUpdatePositionAddressesByCurrentName(t *testing.T) {
	repo := &fakePositionRepo{}
	svc := NewPositionService(repo)

	err := svc.UpdatePosition(context.Background(), "Staff Gudang", position.CreatePositionRequest{
		Nama:      "Staff Logistik",
		Tunjangan: decimal.NewFromInt(500000),
	})

	require.NoError(t, err)
	assert.Equal(t, "Staff Gudang", repo.gotUpdatedNama, "update must address the row by its current name")
}

func TestUpdatePositionEmptyIdentity(t *testing.T) {
	svc := NewPositionService(&fakePositionRepo{})

	err := svc.UpdatePosition(context.Background(), "", position.CreatePositionRequest{
		Nama:      "Staff",
		Tunjangan: decimal.Zero,
	})

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}

func TestDeletePosition(t *testing.T) {
	repo := &fakePositionRepo{}
	svc := NewPositionService(repo)

	require.NoError(t, svc.DeletePosition(context.Background(), "Staff & Admin"))
	assert.Equal(t, "Staff & Admin", repo.gotDeletedNama)
}
