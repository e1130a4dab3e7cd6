package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userportal/internal/models"
)

func newTestUser(phone string) *models.User {
	return &models.User{
		Phone:        phone,
		Username:     "ana",
		PasswordHash: "$argon2id$...",
		Gender:       "f",
		DOB:          time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestMemoryUserStore_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore()

	user := newTestUser("5550001")
	require.NoError(t, store.Create(ctx, user))
	assert.False(t, user.ID.IsZero())

	byPhone, err := store.FindByPhone(ctx, "5550001")
	require.NoError(t, err)
	assert.Equal(t, "ana", byPhone.Username)

	byID, err := store.FindByID(ctx, user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "5550001", byID.Phone)
}

func TestMemoryUserStore_DuplicatePhone(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore()

	require.NoError(t, store.Create(ctx, newTestUser("5550001")))

	err := store.Create(ctx, newTestUser("5550001"))
	assert.ErrorIs(t, err, ErrDuplicatePhone)
}

func TestMemoryUserStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore()

	_, err := store.FindByPhone(ctx, "5550001")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = store.FindByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryUserStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore()

	require.NoError(t, store.Create(ctx, newTestUser("5550001")))

	first, err := store.FindByPhone(ctx, "5550001")
	require.NoError(t, err)
	first.Username = "mutated"

	second, err := store.FindByPhone(ctx, "5550001")
	require.NoError(t, err)
	assert.Equal(t, "ana", second.Username)
}
