package csrf_test

import (
	"context"
	"testing"
	"time"

	"go-contact-backend/pkg/csrf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore(t *testing.T) {
	store, err := csrf.NewStore(csrf.Config{TokenTTL: time.Minute})
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	t.Run("Issued token validates", func(t *testing.T) {
		token, err := store.Issue(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.True(t, store.TokenIsValid(ctx, token))
	})

	t.Run("Unknown token is invalid", func(t *testing.T) {
		assert.False(t, store.TokenIsValid(ctx, "never-issued"))
	})

	t.Run("Empty token is invalid", func(t *testing.T) {
		assert.False(t, store.TokenIsValid(ctx, ""))
	})

	t.Run("Tokens are unique per issue", func(t *testing.T) {
		a, err := store.Issue(ctx)
		require.NoError(t, err)
		b, err := store.Issue(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}

func TestInMemoryStoreExpiry(t *testing.T) {
	store, err := csrf.NewStore(csrf.Config{TokenTTL: 10 * time.Millisecond})
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	token, err := store.Issue(ctx)
	require.NoError(t, err)
	require.True(t, store.TokenIsValid(ctx, token))

	time.Sleep(20 * time.Millisecond)
	assert.False(t, store.TokenIsValid(ctx, token))
}

func TestStoreRejectsBadRedisURL(t *testing.T) {
	_, err := csrf.NewStore(csrf.Config{RedisURL: "://not-a-url", TokenTTL: time.Minute})
	assert.Error(t, err)
}
