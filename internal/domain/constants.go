package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Источники данных о доступности
const (
	SourceSchedule   = "schedule"    // недельное расписание площадки, разворачивается локально
	SourceBookingAPI = "booking_api" // готовый список слотов от API бронирований
)

// Default values
const (
	DefaultSlotDuration = SlotDurationOneHour
	DefaultPlayers      = 1
)

// Business validation constants
const (
	MaxPlayers     = 22
	MaxSportLength = 64
)

// Label separator between start and end of a slot interval
const LabelSeparator = " às "
