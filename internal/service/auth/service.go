package auth

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/domain/admin"
)

type AuthService interface {
	// Login checks the credentials against the admin resource and returns
	// the matching admin, or admin.ErrAuthenticationFailed when nothing
	// matches. Transport and backend failures pass through unchanged.
	Login(ctx context.Context, req admin.LoginRequest) (admin.Admin, error)
}

type authServiceImpl struct {
	repo admin.Repository
}

func NewAuthService(repo admin.Repository) AuthService {
	return &authServiceImpl{repo: repo}
}

func (s *authServiceImpl) Login(ctx context.Context, req admin.LoginRequest) (admin.Admin, error) {
	if err := req.Validate(); err != nil {
		return admin.Admin{}, err
	}

	found, err := s.repo.FindByCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return admin.Admin{}, fmt.Errorf("admin login: %w", err)
	}
	if found == nil {
		return admin.Admin{}, admin.ErrAuthenticationFailed
	}

	return *found, nil
}
