package service

import (
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	db := newTestDB(t)
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret-for-signing-tokens",
			ExpireTime: time.Hour,
		},
	}
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := newAuthService(t)

	user := &model.User{
		Email:    "alice@example.com",
		Password: "secret123",
		Name:     "Alice",
	}
	require.NoError(t, svc.Register(user))

	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	first := &model.User{Email: "alice@example.com", Password: "secret123", Name: "Alice"}
	require.NoError(t, svc.Register(first))

	second := &model.User{Email: "alice@example.com", Password: "other456", Name: "Imposter"}
	err := svc.Register(second)
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginIssuesParsableToken(t *testing.T) {
	svc := newAuthService(t)

	user := &model.User{Email: "alice@example.com", Password: "secret123", Name: "Alice"}
	require.NoError(t, svc.Register(user))

	token, err := svc.Login("alice@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.ParseJWT(token, svc.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)

	user := &model.User{Email: "alice@example.com", Password: "secret123", Name: "Alice"}
	require.NoError(t, svc.Register(user))

	_, err := svc.Login("alice@example.com", "wrong-password")
	assert.Error(t, err)

	_, err = svc.Login("nobody@example.com", "secret123")
	assert.Error(t, err)
}
