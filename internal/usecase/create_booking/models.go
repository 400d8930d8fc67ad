package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

// Request модель запроса на создание бронирования по выбору сессии
type Request struct {
	SessionID string
	Sport     string // пусто = вид спорта из сессии
	Players   *int   // numeroJogadoresNecessarios, по умолчанию 1
	Public    bool   // isPublico
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID string
	Status    string
	CourtID   int64
	Date      time.Time
	Times     []types.TimeString
	Label     string // "18:00 às 20:00"

	Recurring       bool
	Period          *domain.FixedPeriod
	OccurrenceCount int
	LastOccurrence  *time.Time
	TotalPrice      decimal.Decimal
}
