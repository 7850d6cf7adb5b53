package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMustGetEnv(t *testing.T) {
	ctx := context.Background()

	t.Setenv("TECHFEED_TEST_STRING", "hello")
	t.Setenv("TECHFEED_TEST_INT", "8080")
	t.Setenv("TECHFEED_TEST_BOOL", "TRUE")
	t.Setenv("TECHFEED_TEST_DURATION", "90s")
	t.Setenv("TECHFEED_TEST_LIST", "a.example.com, b.example.com")
	t.Setenv("TECHFEED_TEST_EMPTY", "")
	t.Setenv("TECHFEED_TEST_BAD_INT", "eighty")

	assert.Equal(t, "hello", MustGetEnvAsString(ctx, "TECHFEED_TEST_STRING"))
	assert.Equal(t, 8080, MustGetEnvAsInt(ctx, "TECHFEED_TEST_INT"))
	assert.True(t, MustGetEnvAsBoolean(ctx, "TECHFEED_TEST_BOOL"))
	assert.Equal(t, 90*time.Second, MustGetEnvAsDuration(ctx, "TECHFEED_TEST_DURATION"))
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, MustGetEnvAsStrings(ctx, "TECHFEED_TEST_LIST"))
	assert.Equal(t, []string{""}, MustGetEnvAsStrings(ctx, "TECHFEED_TEST_EMPTY"))

	assert.Panics(t, func() { MustGetEnvAsString(ctx, "TECHFEED_TEST_MISSING") })
	assert.Panics(t, func() { MustGetEnvAsInt(ctx, "TECHFEED_TEST_BAD_INT") })
	assert.Panics(t, func() { MustGetEnvAsBoolean(ctx, "TECHFEED_TEST_STRING") })
}

func TestSetupFeedRepository_UnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	_, err := setupFeedRepository(context.Background())
	assert.ErrorContains(t, err, "postgres")
}

func TestSetupListCache_Null(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("CACHE_DRIVER", "null")
	ctx := context.Background()

	repo, err := setupFeedRepository(ctx)
	assert.NoError(t, err)
	cached, err := setupListCache(ctx, repo)
	assert.NoError(t, err)
	assert.Same(t, repo, cached)
}
