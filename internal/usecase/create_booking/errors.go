package create_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("create_booking: session not found")

	// ErrEmptySelection возвращается, когда в сессии не выбрано ни одного слота
	ErrEmptySelection = errors.New("create_booking: no slots selected")

	// ErrInvalidSelection возвращается, когда выбор не является непрерывным блоком
	ErrInvalidSelection = errors.New("create_booking: selection is not a contiguous block")

	// ErrSlotNotListed возвращается, когда выбранного слота нет в последнем списке
	ErrSlotNotListed = errors.New("create_booking: selected slot is not in the current listing")

	// ErrMissingSlotID возвращается, когда у выбранного слота нет идентификатора API бронирований
	ErrMissingSlotID = errors.New("create_booking: selected slot has no booking API id")

	// ErrCourtNotFound возвращается, когда API бронирований не знает корт
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrSlotNotAvailable возвращается, когда API отклонило бронирование (данные устарели)
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
