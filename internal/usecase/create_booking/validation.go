package create_booking

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if _, err := uuid.Parse(req.SessionID); err != nil {
		return fmt.Errorf("%w: malformed sessionId", ErrInvalidInput)
	}

	if req.Players != nil && (*req.Players < 1 || *req.Players > domain.MaxPlayers) {
		return fmt.Errorf("%w: players must be in 1..%d", ErrInvalidInput, domain.MaxPlayers)
	}

	if len(req.Sport) > domain.MaxSportLength {
		return fmt.Errorf("%w: sport must not exceed %d characters", ErrInvalidInput, domain.MaxSportLength)
	}

	return nil
}
