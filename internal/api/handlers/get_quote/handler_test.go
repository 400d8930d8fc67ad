package get_quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtBooking/internal/service/session"
	"github.com/m04kA/SMC-CourtBooking/internal/service/session/models"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
)

type fakeService struct{ err error }

func (f *fakeService) Quote(_ context.Context, _ string) (*models.QuoteResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.QuoteResponse{
		SlotCount:           2,
		BasePrice:           decimal.NewFromInt(250),
		TotalPrice:          decimal.NewFromInt(3250),
		TotalPriceFormatted: "R$ 3.250,00",
		Recurring:           true,
		OccurrenceCount:     13,
	}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "quoted", wantStatus: http.StatusOK},
		{name: "invalid id", err: session.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "expired", err: session.ErrSessionNotFound, wantStatus: http.StatusNotFound},
		{name: "store failure", err: session.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.HandleFunc("/sessions/{sessionId}/quote", NewHandler(&fakeService{err: tt.err}, logger.NewNop()).Handle)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/abc/quote", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"totalPriceFormatted":"R$ 3.250,00"`)
				assert.Contains(t, rec.Body.String(), `"occurrenceCount":13`)
			}
		})
	}
}
