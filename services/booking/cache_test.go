package booking

import (
	"context"
	"testing"
	"time"

	"glowdesk/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReferenceCache(t *testing.T) (*RedisReferenceCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return &RedisReferenceCache{Client: client, TTL: time.Minute}, mr
}

func TestReferenceCacheRoundTrip(t *testing.T) {
	cache, _ := newTestReferenceCache(t)
	ctx := context.Background()

	cache.Store(ctx, "sty1",
		map[models.ID]string{"s1": "Box Braids"},
		map[models.ID]string{"t1": "2025-09-18T10:00:00Z"},
	)

	services, slots := cache.Load(ctx, "sty1")
	assert.Equal(t, map[models.ID]string{"s1": "Box Braids"}, services)
	assert.Equal(t, map[models.ID]string{"t1": "2025-09-18T10:00:00Z"}, slots)

	// Another stylist starts cold.
	services, slots = cache.Load(ctx, "sty2")
	assert.Nil(t, services)
	assert.Nil(t, slots)
}

func TestReferenceCacheExpires(t *testing.T) {
	cache, mr := newTestReferenceCache(t)
	ctx := context.Background()

	cache.Store(ctx, "sty1", map[models.ID]string{"s1": "Box Braids"}, nil)
	mr.FastForward(2 * time.Minute)

	services, slots := cache.Load(ctx, "sty1")
	assert.Nil(t, services)
	assert.Nil(t, slots)
}

func TestReferenceCacheCorruptSnapshotSelfHeals(t *testing.T) {
	cache, mr := newTestReferenceCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(serviceCachePrefix+"sty1", "not json"))

	services, _ := cache.Load(ctx, "sty1")
	assert.Nil(t, services)
	assert.False(t, mr.Exists(serviceCachePrefix+"sty1"))
}

func TestReconcileSeedsResolversFromCache(t *testing.T) {
	cache, _ := newTestReferenceCache(t)
	fb := &fakeBackend{
		list: []models.Booking{
			{ID: "b1", ServiceID: "s1", SlotID: "t1", Status: models.StatusConfirmed},
		},
		services: map[models.ID]models.Service{
			"s1": {ID: "s1", Name: "Box Braids"},
		},
		slots: map[models.ID]models.Slot{
			"t1": {ID: "t1", StartTime: "2025-09-18T10:00:00Z"},
		},
	}
	svc := &DefaultBookingService{Backend: fb, Cache: cache}
	ctx := context.Background()

	_, err := svc.Reconcile(ctx, "tok", "sty1")
	require.NoError(t, err)
	assert.Equal(t, 1, fb.serviceCalls)
	assert.Equal(t, 1, fb.slotCalls)

	// A second reconcile within the TTL resolves entirely from the snapshot.
	result, err := svc.Reconcile(ctx, "tok", "sty1")
	require.NoError(t, err)
	assert.Equal(t, 1, fb.serviceCalls)
	assert.Equal(t, 1, fb.slotCalls)
	require.Len(t, result.Bookings, 1)
	assert.Equal(t, "Box Braids", result.Bookings[0].ServiceName)
}
