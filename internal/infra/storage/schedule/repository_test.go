package schedule

import (
	"database/sql"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
)

func TestCourtQuery(t *testing.T) {
	query, args, err := courtQuery().Where(squirrel.Eq{"c.arena_id": int64(7)}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM courts c")
	assert.Contains(t, query, "c.arena_id = $1")
	assert.Contains(t, query, "AS has_schedule")
	assert.Equal(t, []interface{}{int64(7)}, args)
}

func TestToCourt(t *testing.T) {
	r := NewRepository(nil, domain.SlotDurationHalfHour, logger.NewNop())

	configured := r.toCourt(courtRow{
		id: 1, arenaID: 2, name: "Quadra 1",
		slotDuration: sql.NullString{String: "DUAS_HORAS", Valid: true},
		hasSchedule:  true,
	})
	assert.Equal(t, domain.SlotDurationTwoHours, configured.SlotDuration)
	assert.True(t, configured.HasSchedule)
	assert.Equal(t, int64(2), configured.ArenaID)

	missing := r.toCourt(courtRow{id: 2})
	assert.Equal(t, domain.SlotDurationHalfHour, missing.SlotDuration)

	unknown := r.toCourt(courtRow{id: 3, slotDuration: sql.NullString{String: "TRES_HORAS", Valid: true}})
	assert.Equal(t, domain.SlotDurationHalfHour, unknown.SlotDuration)
}

func TestToInterval(t *testing.T) {
	weekday, interval, ok := toInterval(intervalRow{
		weekday: 1,
		start:   "18:00",
		end:     "00:00",
		price:   decimal.NewFromInt(120),
		status:  "DISPONIVEL",
	})
	require.True(t, ok)
	assert.Equal(t, time.Monday, weekday)
	assert.Equal(t, domain.SlotStatusAvailable, interval.Status)
	assert.True(t, decimal.NewFromInt(120).Equal(interval.Price))

	_, _, ok = toInterval(intervalRow{weekday: 7, status: "DISPONIVEL"})
	assert.False(t, ok)

	_, _, ok = toInterval(intervalRow{weekday: 2, status: "FECHADO"})
	assert.False(t, ok)
}
