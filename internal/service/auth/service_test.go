package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/domain/admin"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/postgrest"
	"github.com/cmlabs-hris/kepegawaian-backend-go/internal/pkg/validator"
)

type fakeAdminRepo struct {
	found *admin.Admin
	err   error

	gotEmail    string
	gotPassword string
}

func (f *fakeAdminRepo) FindByCredentials(ctx context.Context, email, password string) (*admin.Admin, error) {
	f.gotEmail = email
	f.gotPassword = password
	return f.found, f.err
}

func TestLoginSuccess(t *testing.T) {
	repo := &fakeAdminRepo{found: &admin.Admin{Email: "admin@example.com"}}
	svc := NewAuthService(repo)

	result, err := svc.Login(context.Background(), admin.LoginRequest{
		Email:    "admin@example.com",
		Password: "rahasia",
	})

	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", result.Email)
	assert.Equal(t, "rahasia", repo.gotPassword)
}

func TestLoginNoMatch(t *testing.T) {
	repo := &fakeAdminRepo{found: nil}
	svc := NewAuthService(repo)

	_, err := svc.Login(context.Background(), admin.LoginRequest{
		Email:    "admin@example.com",
		Password: "salah",
	})

	assert.ErrorIs(t, err, admin.ErrAuthenticationFailed)
}

func TestLoginBackendErrorIsNotAuthFailure(t *testing.T) {
	repo := &fakeAdminRepo{err: &postgrest.TransportError{Message: "connection refused"}}
	svc := NewAuthService(repo)

	_, err := svc.Login(context.Background(), admin.LoginRequest{
		Email:    "admin@example.com",
		Password: "rahasia",
	})

	var transportErr *postgrest.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.NotErrorIs(t, err, admin.ErrAuthenticationFailed)
}

func TestLoginValidation(t *testing.T) {
	repo := &fakeAdminRepo{}
	svc := NewAuthService(repo)

	_, err := svc.Login(context.Background(), admin.LoginRequest{Email: "not-an-email", Password: ""})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "email")
	assert.Contains(t, errs.ToMap(), "password")
	assert.Empty(t, repo.gotEmail, "repository must not be called for invalid input")
}
