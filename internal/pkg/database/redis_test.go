package database

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unirides/unirides/internal/pkg/models"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := NewRedisClient(context.Background(), models.RedisConfig{
		Host: mr.Host(),
		Port: mustPort(t, mr),
	})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return port
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	client, err := NewRedisClient(context.Background(), models.RedisConfig{Host: "127.0.0.1", Port: 1})
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_HashRoundTrip(t *testing.T) {
	mr, client := setupRedis(t)
	ctx := context.Background()

	err := client.HSet(ctx, "user:location:u-1", map[string]interface{}{"lat": "9.5", "lng": "44.1"})
	require.NoError(t, err)
	require.NoError(t, client.Expire(ctx, "user:location:u-1", time.Hour))

	values, err := client.HGetAll(ctx, "user:location:u-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"lat": "9.5", "lng": "44.1"}, values)
	assert.Equal(t, time.Hour, mr.TTL("user:location:u-1"))

	require.NoError(t, client.Delete(ctx, "user:location:u-1"))
	values, err = client.HGetAll(ctx, "user:location:u-1")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestRedisClient_Ping(t *testing.T) {
	mr, client := setupRedis(t)

	assert.NoError(t, client.Ping(context.Background()))

	mr.Close()
	assert.Error(t, client.Ping(context.Background()))
}
