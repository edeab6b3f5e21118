package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/auth"
)

func TestService_AddEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("adds unverified and mails a token", func(t *testing.T) {
		t.Parallel()

		notifier := &mockNotifier{}
		svc := newTestService(t, newMemStorage(), auth.WithNotifier(notifier))
		account := registerAccount(t, svc, "alice@example.com")

		require.NoError(t, svc.AddEmail(ctx, account.ID, "Alice@Work.Example.com"))

		updated, err := svc.GetAccount(ctx, account.ID)
		require.NoError(t, err)
		require.Len(t, updated.Emails, 2)
		assert.Equal(t, "alice@work.example.com", updated.Emails[1].Address)
		assert.False(t, updated.Emails[1].Verified)
		assert.NotEmpty(t, notifier.lastVerifyToken())
	})

	t.Run("duplicate address rejected", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, newMemStorage(), auth.WithNotifier(&mockNotifier{}))
		account := registerAccount(t, svc, "alice@example.com")

		err := svc.AddEmail(ctx, account.ID, "alice@example.com")
		assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
	})
}

func TestService_ConfirmEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("marks the address verified", func(t *testing.T) {
		t.Parallel()

		notifier := &mockNotifier{}
		svc := newTestService(t, newMemStorage(), auth.WithNotifier(notifier))
		account := registerAccount(t, svc, "alice@example.com")

		require.NoError(t, svc.AddEmail(ctx, account.ID, "alice@work.example.com"))
		require.NoError(t, svc.ConfirmEmail(ctx, notifier.lastVerifyToken()))

		updated, err := svc.GetAccount(ctx, account.ID)
		require.NoError(t, err)
		assert.True(t, updated.EmailVerified("alice@work.example.com"))
		assert.Nil(t, updated.EmailVerification)

		// Token is single-use.
		assert.ErrorIs(t, svc.ConfirmEmail(ctx, notifier.lastVerifyToken()), auth.ErrTokenInvalid)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		now := time.Now()
		notifier := &mockNotifier{}
		svc := newTestService(t, newMemStorage(),
			auth.WithNotifier(notifier),
			auth.WithTimeSource(func() time.Time { return now }),
		)
		account := registerAccount(t, svc, "alice@example.com")

		require.NoError(t, svc.AddEmail(ctx, account.ID, "alice@work.example.com"))
		now = now.Add(25 * time.Hour)

		assert.ErrorIs(t, svc.ConfirmEmail(ctx, notifier.lastVerifyToken()), auth.ErrTokenExpired)
	})

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, newMemStorage())
		assert.ErrorIs(t, svc.ConfirmEmail(ctx, "bogus"), auth.ErrTokenInvalid)
	})
}

func TestService_RemoveEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	notifier := &mockNotifier{}
	svc := newTestService(t, newMemStorage(), auth.WithNotifier(notifier))
	account := registerAccount(t, svc, "alice@example.com")

	assert.ErrorIs(t, svc.RemoveEmail(ctx, account.ID, "alice@example.com"), auth.ErrCannotRemovePrimaryEmail)
	assert.ErrorIs(t, svc.RemoveEmail(ctx, account.ID, "gone@example.com"), auth.ErrEmailNotFound)

	require.NoError(t, svc.AddEmail(ctx, account.ID, "alice@work.example.com"))
	require.NoError(t, svc.RemoveEmail(ctx, account.ID, "alice@work.example.com"))

	updated, err := svc.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Len(t, updated.Emails, 1)
}
