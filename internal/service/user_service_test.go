package service

import (
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUpdateProfilePartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	user := createTestUser(t, db, "alice@example.com", "Alice", "secret123")

	updated, err := svc.UpdateProfile(user.ID, "Alice B.", "")
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", updated.Name)
	assert.Empty(t, updated.Avatar)

	updated, err = svc.UpdateProfile(user.ID, "", "/uploads/avatars/a.png")
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", updated.Name)
	assert.Equal(t, "/uploads/avatars/a.png", updated.Avatar)
}

func TestChangePasswordChecksCurrent(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	user := createTestUser(t, db, "alice@example.com", "Alice", "secret123")

	err := svc.ChangePassword(user.ID, "wrong-password", "newsecret")
	assert.ErrorIs(t, err, util.ErrWrongPassword)

	err = svc.ChangePassword(user.ID, "secret123", "short")
	assert.ErrorIs(t, err, util.ErrPasswordTooShort)

	err = svc.ChangePassword(user.ID, "secret123", "newsecret")
	require.NoError(t, err)

	stored, err := svc.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newsecret")))
}

func TestGetUserByIDUnknown(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	_, err := svc.GetUserByID("missing")
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}
