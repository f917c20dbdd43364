package redis

import (
	"beauty-clinic-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUnreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
}

func TestRedisRepositorySetRejectsUnencodableValue(t *testing.T) {
	client := newUnreachableClient()
	defer client.Close()
	repo := NewRedisRepository(client)

	err := repo.Set(context.Background(), "key", make(chan int), time.Minute)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, 500, customErr.StatusCode)
}

func TestRedisRepositoryWrapsConnectionErrors(t *testing.T) {
	client := newUnreachableClient()
	defer client.Close()
	repo := NewRedisRepository(client)
	ctx := context.Background()

	_, err := repo.Get(ctx, "key")
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Contains(t, customErr.DevMessage, "failed to get data from redis")

	err = repo.Delete(ctx, "key")
	require.True(t, errors.As(err, &customErr))
	assert.Contains(t, customErr.DevMessage, "failed to delete data from redis")
}
