package bookingapi

import "errors"

var (
	// ErrCourtNotFound возвращается, когда API бронирований не знает корт
	ErrCourtNotFound = errors.New("bookingapi client: court not found")

	// ErrSlotUnavailable возвращается, когда API отклонило бронирование (слот уже занят)
	ErrSlotUnavailable = errors.New("bookingapi client: slot unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")
)
