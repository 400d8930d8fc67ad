package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/pkg/ptr"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

type fakeRedis struct {
	data map[string]string
	ttl  map[string]time.Duration
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = string(value.([]byte))
	f.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func sampleSession(loc *time.Location) *domain.BookingSession {
	date := time.Date(2025, time.September, 1, 0, 0, 0, 0, loc)
	return &domain.BookingSession{
		ID:        "4b7c1e9a-0000-4000-8000-000000000001",
		ArenaID:   10,
		Sport:     "BEACH_TENNIS",
		Date:      date,
		Recurring: true,
		Period:    ptr.Ptr(domain.FixedPeriodThreeMonths),
		Selection: domain.Selection{CourtID: 3, DurationMinutes: 60, Times: []types.TimeString{"18:00", "19:00"}},
		Listing: map[int64][]domain.Slot{
			3: {
				{ID: "s-18", CourtID: 3, Date: date, StartTime: "18:00", DurationMinutes: 60, Price: decimal.RequireFromString("100.50"), Status: domain.SlotStatusAvailable, Available: true},
				{ID: "s-19", CourtID: 3, Date: date, StartTime: "19:00", DurationMinutes: 60, Price: decimal.NewFromInt(150), Status: domain.SlotStatusAvailable, Available: true},
			},
		},
		CreatedAt: time.Date(2025, time.August, 30, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, time.August, 30, 12, 5, 0, 0, time.UTC),
	}
}

func TestRepository_SaveAndGet(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	client := newFakeRedis()
	repo := NewRepository(client, loc)
	ctx := context.Background()

	s := sampleSession(loc)
	require.NoError(t, repo.Save(ctx, s, 2*time.Hour))
	assert.Equal(t, 2*time.Hour, client.ttl["booking_session:"+s.ID])

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)

	assert.Equal(t, s.ArenaID, got.ArenaID)
	assert.True(t, s.Date.Equal(got.Date))
	assert.Equal(t, loc, got.Date.Location())
	assert.Equal(t, domain.FixedPeriodThreeMonths, *got.Period)
	assert.Equal(t, s.Selection, got.Selection)
	assert.Equal(t, 3, got.RecurrenceMonths())

	require.Len(t, got.Listing[3], 2)
	assert.Equal(t, "s-18", got.Listing[3][0].ID)
	assert.Equal(t, int64(3), got.Listing[3][0].CourtID)
	assert.True(t, decimal.RequireFromString("100.50").Equal(got.Listing[3][0].Price))
}

func TestRepository_EmptySelection(t *testing.T) {
	repo := NewRepository(newFakeRedis(), time.UTC)
	ctx := context.Background()

	s := sampleSession(time.UTC)
	s.ResetSelection()
	s.Listing = nil
	require.NoError(t, repo.Save(ctx, s, time.Hour))

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, got.Selection.IsEmpty())
	assert.Nil(t, got.Listing)
}

func TestRepository_NotFound(t *testing.T) {
	repo := NewRepository(newFakeRedis(), time.UTC)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	err = repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRepository_Delete(t *testing.T) {
	client := newFakeRedis()
	repo := NewRepository(client, time.UTC)
	ctx := context.Background()

	s := sampleSession(time.UTC)
	require.NoError(t, repo.Save(ctx, s, time.Hour))
	require.NoError(t, repo.Delete(ctx, s.ID))

	_, err := repo.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRepository_Errors(t *testing.T) {
	client := newFakeRedis()
	repo := NewRepository(client, time.UTC)
	ctx := context.Background()

	client.data["booking_session:broken"] = "{not json"
	_, err := repo.Get(ctx, "broken")
	assert.ErrorIs(t, err, ErrDecode)

	client.err = errors.New("connection refused")
	_, err = repo.Get(ctx, "any")
	assert.ErrorIs(t, err, ErrRedis)
	assert.ErrorIs(t, repo.Save(ctx, sampleSession(time.UTC), time.Hour), ErrRedis)
}
