package slots

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

func interval(start, end string, price int64) domain.OpeningInterval {
	return domain.OpeningInterval{
		Start:  types.TimeString(start),
		End:    types.TimeString(end),
		Price:  decimal.NewFromInt(price),
		Status: domain.SlotStatusAvailable,
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		interval domain.OpeningInterval
		duration int
		want     []types.TimeString
	}{
		{
			name:     "half hour steps",
			interval: interval("08:00", "10:00", 80),
			duration: 30,
			want:     []types.TimeString{"08:00", "08:30", "09:00", "09:30"},
		},
		{
			name:     "last slot may run past the end",
			interval: interval("08:00", "09:30", 80),
			duration: 60,
			want:     []types.TimeString{"08:00", "09:00"},
		},
		{
			name:     "midnight end is end of day",
			interval: interval("23:00", "00:00", 120),
			duration: 60,
			want:     []types.TimeString{"23:00"},
		},
		{
			name:     "late half hour slot with one hour duration",
			interval: interval("22:30", "00:00", 120),
			duration: 60,
			want:     []types.TimeString{"22:30", "23:30"},
		},
		{
			name:     "start equals end",
			interval: interval("10:00", "10:00", 80),
			duration: 30,
			want:     nil,
		},
		{
			name:     "end before start",
			interval: interval("18:00", "09:00", 80),
			duration: 30,
			want:     nil,
		},
		{
			name:     "malformed start",
			interval: interval("oito", "10:00", 80),
			duration: 30,
			want:     nil,
		},
		{
			name:     "zero duration",
			interval: interval("08:00", "10:00", 80),
			duration: 0,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expand(tt.interval, tt.duration)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_MidnightMatchesEndOfDayCount(t *testing.T) {
	for _, duration := range []int{30, 60, 90, 120} {
		midnight := Expand(interval("17:00", "00:00", 100), duration)
		almost := Expand(interval("17:00", "23:59", 100), duration)
		assert.Len(t, midnight, len(almost), "duration %d", duration)
	}
}

func TestExpandDay(t *testing.T) {
	monday := time.Date(2025, time.September, 1, 15, 45, 0, 0, time.UTC)
	maintenance := interval("12:00", "13:00", 90)
	maintenance.Status = domain.SlotStatusMaintenance

	schedule := domain.WeeklySchedule{
		time.Monday: {
			interval("18:00", "19:00", 150),
			interval("08:00", "09:00", 100),
			maintenance,
			interval("xx:00", "09:00", 100),
		},
		time.Tuesday: {interval("08:00", "22:00", 100)},
	}
	court := domain.Court{ID: 3, SlotDuration: domain.SlotDurationOneHour}

	got, malformed := ExpandDay(schedule, court, monday)

	require.Len(t, got, 3)
	assert.Equal(t, 1, malformed)

	assert.Equal(t, types.TimeString("08:00"), got[0].StartTime)
	assert.Equal(t, types.TimeString("12:00"), got[1].StartTime)
	assert.Equal(t, types.TimeString("18:00"), got[2].StartTime)

	assert.Equal(t, int64(3), got[0].CourtID)
	assert.Equal(t, 60, got[0].DurationMinutes)
	assert.True(t, got[0].Date.Equal(time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, decimal.NewFromInt(150).Equal(got[2].Price))

	assert.False(t, got[1].Available)
	assert.False(t, got[1].IsSelectable())
	assert.True(t, got[0].IsSelectable())
}

func TestExpandDay_OverlappingIntervalsAreKept(t *testing.T) {
	day := time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC)
	schedule := domain.WeeklySchedule{
		time.Tuesday: {interval("08:00", "10:00", 100), interval("09:00", "10:00", 120)},
	}

	got, _ := ExpandDay(schedule, domain.Court{ID: 1, SlotDuration: domain.SlotDurationOneHour}, day)

	require.Len(t, got, 3)
	assert.Equal(t, types.TimeString("09:00"), got[1].StartTime)
	assert.Equal(t, types.TimeString("09:00"), got[2].StartTime)
}

func TestExpandDay_ClosedDay(t *testing.T) {
	sunday := time.Date(2025, time.September, 7, 0, 0, 0, 0, time.UTC)
	got, malformed := ExpandDay(domain.WeeklySchedule{}, domain.Court{ID: 1}, sunday)

	assert.Empty(t, got)
	assert.Zero(t, malformed)
}

func TestFilterPast(t *testing.T) {
	day := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	list := []domain.Slot{
		{Date: day, StartTime: "09:00"},
		{Date: day, StartTime: "09:30"},
		{Date: day, StartTime: "10:00"},
		{Date: day, StartTime: "bad"},
	}

	now := time.Date(2025, time.September, 1, 9, 30, 0, 0, time.UTC)
	got := FilterPast(list, now)

	require.Len(t, got, 2)
	assert.Equal(t, types.TimeString("09:30"), got[0].StartTime, "slot starting exactly now is kept")
	assert.Equal(t, types.TimeString("10:00"), got[1].StartTime)
}

func TestFilterPast_OtherDays(t *testing.T) {
	now := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)
	yesterday := []domain.Slot{{Date: now.AddDate(0, 0, -1), StartTime: "23:00"}}
	tomorrow := []domain.Slot{{Date: now.AddDate(0, 0, 1), StartTime: "06:00"}}

	assert.Empty(t, FilterPast(yesterday, now))
	assert.Len(t, FilterPast(tomorrow, now), 1)
}

func TestFilterPast_UsesSlotLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	day := time.Date(2025, time.September, 1, 0, 0, 0, 0, loc)
	list := []domain.Slot{{Date: day, StartTime: "20:00"}}

	// 22:30 UTC = 19:30 BRT, слот в 20:00 BRT еще впереди
	now := time.Date(2025, time.September, 1, 22, 30, 0, 0, time.UTC)
	assert.Len(t, FilterPast(list, now), 1)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "23:00 às 00:00", Label("23:00", 60))
	assert.Equal(t, "23:30 às 00:30", Label("23:30", 60))
	assert.Equal(t, "09:00 às 09:30", Label("09:00", 30))
	assert.Equal(t, "", Label("bad", 30))
}

func TestRangeLabel(t *testing.T) {
	sel := domain.Selection{CourtID: 1, DurationMinutes: 30, Times: []types.TimeString{"09:00", "09:30", "10:00"}}
	assert.Equal(t, "09:00 às 10:30", RangeLabel(sel))
	assert.Equal(t, "", RangeLabel(domain.Selection{}))
}

func TestScenario_LateIntervalSingleSlot(t *testing.T) {
	times := Expand(interval("23:00", "00:00", 100), 60)

	require.Len(t, times, 1)
	assert.Equal(t, "23:00 às 00:00", Label(times[0], 60))
}

func TestFromRecords(t *testing.T) {
	day := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	court := domain.Court{ID: 9, SlotDuration: domain.SlotDurationHalfHour}

	records := []domain.SlotRecord{
		{ID: "b", HorarioInicio: "09:30:00", HorarioFim: "10:00:00", Valor: "60,00", StatusDisponibilidade: "DISPONIVEL"},
		{ID: "a", HorarioInicio: "09:00:00", HorarioFim: "09:30:00", Valor: "60", StatusDisponibilidade: "DISPONIVEL"},
		{ID: "c", HorarioInicio: "10:00", HorarioFim: "10:30", Valor: "sessenta", StatusDisponibilidade: "INDISPONIVEL"},
		{ID: "d", HorarioInicio: "??", HorarioFim: "11:00", Valor: "60", StatusDisponibilidade: "DISPONIVEL"},
		{ID: "e", HorarioInicio: "11:00", HorarioFim: "11:30", Valor: "60", StatusDisponibilidade: "FECHADO"},
	}

	got, malformed := FromRecords(court, day, records)

	require.Len(t, got, 4)
	assert.Equal(t, 3, malformed)

	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.True(t, decimal.NewFromInt(60).Equal(got[1].Price))
	assert.Equal(t, 30, got[1].DurationMinutes)

	assert.True(t, got[2].Price.IsZero())
	assert.False(t, got[2].Available)

	assert.Equal(t, domain.SlotStatusUnavailable, got[3].Status)
	assert.False(t, got[3].Available)
}

func TestFromRecords_NonTextPriceIsZero(t *testing.T) {
	day := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	records := []domain.SlotRecord{
		{ID: "b", HorarioInicio: "09:00:00", Valor: "true", StatusDisponibilidade: "DISPONIVEL"},
		{ID: "c", HorarioInicio: "10:00:00", Valor: `{"x":1}`, StatusDisponibilidade: "DISPONIVEL"},
	}

	got, malformed := FromRecords(domain.Court{ID: 1, SlotDuration: domain.SlotDurationOneHour}, day, records)

	require.Len(t, got, 2)
	assert.Equal(t, 2, malformed)
	assert.True(t, got[0].Price.IsZero())
	assert.True(t, got[1].Price.IsZero())
	assert.True(t, got[1].Available)
}

func TestFromRecords_DurationFromRecordWhenCourtHasNone(t *testing.T) {
	day := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	records := []domain.SlotRecord{
		{ID: "x", HorarioInicio: "23:00", HorarioFim: "00:00", Valor: "100", StatusDisponibilidade: "DISPONIVEL"},
		{ID: "y", HorarioInicio: "21:00", HorarioFim: "22:30", Valor: "100", StatusDisponibilidade: "DISPONIVEL"},
	}

	got, malformed := FromRecords(domain.Court{ID: 1}, day, records)

	require.Len(t, got, 2)
	assert.Zero(t, malformed)
	assert.Equal(t, 90, got[0].DurationMinutes)
	assert.Equal(t, 60, got[1].DurationMinutes)
}
