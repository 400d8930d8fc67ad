package get_available_slots

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

// Request модель запроса на получение доступных слотов арены
type Request struct {
	ArenaID   int64
	Date      string // "2025-09-01"; можно не указывать, если передана сессия
	SessionID string // необязательно: отметить выбранные слоты и сохранить список в сессию
}

// Response модель ответа со слотами всех кортов арены
type Response struct {
	ArenaID int64
	Date    time.Time
	Courts  []Court
}

// Court слоты одного корта
type Court struct {
	CourtID         int64
	Name            string
	DurationMinutes int
	Source          string // schedule или booking_api
	Degraded        bool   // источник недоступен, список пуст
	Slots           []Slot
}

// Slot слот корта для отображения
type Slot struct {
	ID              string
	StartTime       types.TimeString
	Label           string // "18:00 às 19:00"
	DurationMinutes int
	Price           decimal.Decimal
	Status          domain.SlotStatus
	Available       bool
	Selected        bool
	Selectable      bool // слот можно нажать при текущем выборе
}
