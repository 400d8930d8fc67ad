package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

const hasScheduleColumn = "EXISTS (SELECT 1 FROM court_opening_intervals i WHERE i.court_id = c.id) AS has_schedule"

// Repository репозиторий кортов и их недельного расписания
type Repository struct {
	db              DBExecutor
	defaultDuration domain.SlotDuration
	log             Logger
}

// NewRepository создает новый экземпляр репозитория расписания
// defaultDuration применяется к кортам без настроенной длительности слота
func NewRepository(db DBExecutor, defaultDuration domain.SlotDuration, log Logger) *Repository {
	return &Repository{db: db, defaultDuration: defaultDuration, log: log}
}

// courtRow строка таблицы courts
type courtRow struct {
	id           int64
	arenaID      int64
	name         string
	slotDuration sql.NullString
	hasSchedule  bool
}

// intervalRow строка таблицы court_opening_intervals
type intervalRow struct {
	weekday int
	start   types.TimeString
	end     types.TimeString
	price   decimal.Decimal
	status  string
}

func courtQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"c.id",
		"c.arena_id",
		"c.name",
		"c.slot_duration",
		hasScheduleColumn,
	).From("courts c")
}

// ListCourtsByArena получает корты арены, отсортированные по ID
func (r *Repository) ListCourtsByArena(ctx context.Context, arenaID int64) ([]domain.Court, error) {
	query, args, err := courtQuery().
		Where(squirrel.Eq{"c.arena_id": arenaID}).
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCourtsByArena - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCourtsByArena - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]domain.Court, 0)
	for rows.Next() {
		var row courtRow
		if err := rows.Scan(&row.id, &row.arenaID, &row.name, &row.slotDuration, &row.hasSchedule); err != nil {
			return nil, fmt.Errorf("%w: ListCourtsByArena - scan row: %v", ErrScanRow, err)
		}
		courts = append(courts, r.toCourt(row))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCourtsByArena - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}

// GetWeeklySchedule получает недельное расписание корта
// Строки с некорректным днем недели или статусом пропускаются с предупреждением
func (r *Repository) GetWeeklySchedule(ctx context.Context, courtID int64) (domain.WeeklySchedule, error) {
	query, args, err := psqlbuilder.Select(
		"weekday",
		"start_time",
		"end_time",
		"price",
		"status",
	).
		From("court_opening_intervals").
		Where(squirrel.Eq{"court_id": courtID}).
		OrderBy("weekday ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := make(domain.WeeklySchedule)
	for rows.Next() {
		var row intervalRow
		if err := rows.Scan(&row.weekday, &row.start, &row.end, &row.price, &row.status); err != nil {
			return nil, fmt.Errorf("%w: GetWeeklySchedule - scan row: %v", ErrScanRow, err)
		}

		weekday, interval, ok := toInterval(row)
		if !ok {
			r.log.Warn("GetWeeklySchedule: skipping malformed interval court_id=%d weekday=%d start=%s status=%s",
				courtID, row.weekday, row.start, row.status)
			continue
		}
		schedule[weekday] = append(schedule[weekday], interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - rows error: %v", ErrScanRow, err)
	}

	return schedule, nil
}

func (r *Repository) toCourt(row courtRow) domain.Court {
	duration := r.defaultDuration
	if row.slotDuration.Valid {
		if d, err := domain.ParseSlotDuration(row.slotDuration.String); err == nil {
			duration = d
		}
	}

	return domain.Court{
		ID:           row.id,
		ArenaID:      row.arenaID,
		Name:         row.name,
		SlotDuration: duration,
		HasSchedule:  row.hasSchedule,
	}
}

// toInterval weekday хранится как в time.Weekday: 0 = воскресенье
func toInterval(row intervalRow) (time.Weekday, domain.OpeningInterval, bool) {
	if row.weekday < int(time.Sunday) || row.weekday > int(time.Saturday) {
		return 0, domain.OpeningInterval{}, false
	}
	status, ok := domain.ParseSlotStatus(row.status)
	if !ok {
		return 0, domain.OpeningInterval{}, false
	}

	return time.Weekday(row.weekday), domain.OpeningInterval{
		Start:  row.start,
		End:    row.end,
		Price:  row.price,
		Status: status,
	}, true
}
