package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GTDGit/pharmacy_api/internal/config"
	"github.com/GTDGit/pharmacy_api/internal/models"
)

func newTestRedis(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := NewRedisClient(&config.RedisConfig{Host: mr.Host(), Port: mr.Port()})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client, mr
}

func testEntityCache(t *testing.T, c EntityCache) {
	ctx := context.Background()

	var got models.Client
	found, err := c.Get(ctx, ClientKey(1), &got)
	require.NoError(t, err)
	assert.False(t, found)

	want := &models.Client{ID: 1, Name: "ANA", BirthDate: models.NewDate(1990, time.May, 17)}
	require.NoError(t, c.Set(ctx, ClientKey(1), want, time.Minute))

	found, err = c.Get(ctx, ClientKey(1), &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, *want, got)

	assert.NoError(t, c.Ping(ctx))
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	defer c.Close()

	testEntityCache(t, c)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	defer c.Close()

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, MedicationKey(3), &models.Medication{ID: 3}, time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	var got models.Medication
	found, err := c.Get(ctx, MedicationKey(3), &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisClient(t *testing.T) {
	c, _ := newTestRedis(t)

	testEntityCache(t, c)
}

func TestRedisClient_TTL(t *testing.T) {
	c, mr := newTestRedis(t)

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, MedicationKey(3), &models.Medication{ID: 3}, time.Minute))
	assert.Equal(t, time.Minute, mr.TTL(MedicationKey(3)))

	mr.FastForward(2 * time.Minute)

	var got models.Medication
	found, err := c.Get(ctx, MedicationKey(3), &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisClient_CorruptValue(t *testing.T) {
	c, mr := newTestRedis(t)

	require.NoError(t, mr.Set(ClientKey(9), "not json"))

	var got models.Client
	found, err := c.Get(context.Background(), ClientKey(9), &got)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port := mr.Host(), mr.Port()
	mr.Close()

	_, err := NewRedisClient(&config.RedisConfig{Host: host, Port: port})
	assert.Error(t, err)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "client:5", ClientKey(5))
	assert.Equal(t, "medication:5", MedicationKey(5))
}
