package position

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/domain/position"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/postgrest"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/validator"
)

type PositionService interface {
	ListPositions(ctx context.Context) ([]position.Position, error)
	AddPosition(ctx context.Context, req position.CreatePositionRequest) error
	// UpdatePosition rewrites the position currently named nama; the new
	// name in req becomes its identity for later calls.
	UpdatePosition(ctx context.Context, nama string, req position.CreatePositionRequest) error
	DeletePosition(ctx context.Context, nama string) error
}

type positionServiceImpl struct {
	repo position.Repository
}

func NewPositionService(repo position.Repository) PositionService {
	return &positionServiceImpl{repo: repo}
}

func (s *positionServiceImpl) ListPositions(ctx context.Context) ([]position.Position, error) {
	positions, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	return positions, nil
}

func (s *positionServiceImpl) AddPosition(ctx context.Context, req position.CreatePositionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.repo.Insert(ctx, req.ToNewPosition()); err != nil {
		var backendErr *postgrest.BackendError
		if errors.As(err, &backendErr) && backendErr.IsUniqueViolation() {
			return position.ErrPositionNameExists
		}
		return fmt.Errorf("add position: %w", err)
	}

	return nil
}

func (s *positionServiceImpl) UpdatePosition(ctx context.Context, nama string, req position.CreatePositionRequest) error {
	if validator.IsEmpty(nama) {
		return validator.ValidationErrors{{Field: "nama", Message: "nama is required"}}
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, nama, req.ToNewPosition()); err != nil {
		var backendErr *postgrest.BackendError
		if errors.As(err, &backendErr) && backendErr.IsUniqueViolation() {
			return position.ErrPositionNameExists
		}
		return fmt.Errorf("update position %q: %w", nama, err)
	}

	return nil
}

func (s *positionServiceImpl) DeletePosition(ctx context.Context, nama string) error {
	if validator.IsEmpty(nama) {
		return validator.ValidationErrors{{Field: "nama", Message: "nama is required"}}
	}

	if err := s.repo.Delete(ctx, nama); err != nil {
		return fmt.Errorf("delete position %q: %w", nama, err)
	}

	return nil
}
