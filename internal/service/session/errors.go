package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrSlotNotListed возвращается, когда слота нет в последнем показанном списке
	ErrSlotNotListed = errors.New("slot is not in the current availability listing")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при некорректной или прошедшей дате
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidPeriod возвращается при неизвестном периоде фиксированного бронирования
	ErrInvalidPeriod = errors.New("invalid fixed period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
