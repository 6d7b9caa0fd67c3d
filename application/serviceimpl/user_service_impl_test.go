package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktracker/domain/dto"
	"tasktracker/domain/services"
	"tasktracker/infrastructure/memory"
	"tasktracker/pkg/tokens"
)

func newUserService() services.UserService {
	tokenService := tokens.NewService("test-secret", time.Hour, nil)
	return NewUserService(memory.NewUserRepository(), tokenService)
}

func TestRegisterIssuesToken(t *testing.T) {
	service := newUserService()

	token, user, err := service.Register(context.Background(), &dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "pw1",
	})
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEmpty(t, token)
	assert.Equal(t, "a@b.com", user.Email)
	// The stored password must be a hash, never the plaintext.
	assert.NotEqual(t, "pw1", user.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := newUserService()

	_, _, err := service.Register(context.Background(), &dto.RegisterRequest{Email: "a@b.com", Password: "pw1"})
	require.NoError(t, err)

	_, _, err = service.Register(context.Background(), &dto.RegisterRequest{Email: "a@b.com", Password: "other"})
	assert.ErrorIs(t, err, services.ErrEmailInUse)
}

func TestLogin(t *testing.T) {
	service := newUserService()

	_, registered, err := service.Register(context.Background(), &dto.RegisterRequest{Email: "a@b.com", Password: "pw1"})
	require.NoError(t, err)

	token, user, err := service.Login(context.Background(), &dto.LoginRequest{Email: "a@b.com", Password: "pw1"})
	require.NoError(t, err)

	assert.NotEmpty(t, token)
	assert.Equal(t, registered.ID, user.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	service := newUserService()

	_, _, err := service.Register(context.Background(), &dto.RegisterRequest{Email: "a@b.com", Password: "pw1"})
	require.NoError(t, err)

	_, _, err = service.Login(context.Background(), &dto.LoginRequest{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	service := newUserService()

	_, _, err := service.Login(context.Background(), &dto.LoginRequest{Email: "nobody@b.com", Password: "pw1"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLogoutRevokesToken(t *testing.T) {
	revocationList := memoryRevocationList{revoked: map[string]bool{}}
	tokenService := tokens.NewService("test-secret", time.Hour, &revocationList)
	service := NewUserService(memory.NewUserRepository(), tokenService)

	token, _, err := service.Register(context.Background(), &dto.RegisterRequest{Email: "a@b.com", Password: "pw1"})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), token))

	_, err = tokenService.Verify(context.Background(), token)
	assert.ErrorIs(t, err, tokens.ErrRevokedToken)
}

type memoryRevocationList struct {
	revoked map[string]bool
}

func (l *memoryRevocationList) IsRevoked(_ context.Context, jti string) (bool, error) {
	return l.revoked[jti], nil
}

func (l *memoryRevocationList) Revoke(_ context.Context, jti string, _ time.Duration) error {
	l.revoked[jti] = true
	return nil
}
