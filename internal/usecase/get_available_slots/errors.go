package get_available_slots

import "errors"

var (
	// ErrArenaNotFound возвращается, когда у арены нет кортов
	ErrArenaNotFound = errors.New("arena not found")

	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidDate возвращается при некорректной или прошедшей дате
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDateMismatch возвращается, когда дата запроса не совпадает с датой сессии
	ErrDateMismatch = errors.New("date does not match the session date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
