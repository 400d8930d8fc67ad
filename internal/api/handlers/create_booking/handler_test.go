package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-CourtBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
	"github.com/m04kA/SMC-CourtBooking/pkg/ptr"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

type fakeUseCase struct {
	req *createBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &createBooking.Response{
		BookingID:       "bk-1",
		Status:          "CONFIRMADO",
		CourtID:         5,
		Date:            time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		Times:           []types.TimeString{"18:00", "19:00"},
		Label:           "18:00 às 20:00",
		Recurring:       true,
		Period:          ptr.Ptr(domain.FixedPeriodThreeMonths),
		OccurrenceCount: 13,
		LastOccurrence:  ptr.Ptr(time.Date(2025, time.November, 24, 0, 0, 0, 0, time.UTC)),
		TotalPrice:      decimal.NewFromInt(3250),
	}, nil
}

func serve(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/sessions/{sessionId}/booking", NewHandler(uc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sessions/abc/booking", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, `{"sport":"BEACH_TENNIS","players":4,"public":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, "abc", uc.req.SessionID)
	assert.Equal(t, "BEACH_TENNIS", uc.req.Sport)
	assert.Equal(t, 4, ptr.Value(uc.req.Players))
	assert.True(t, uc.req.Public)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "bk-1", body.BookingID)
	assert.Equal(t, "2025-09-01", body.Date)
	assert.Equal(t, []string{"18:00", "19:00"}, body.Times)
	assert.Equal(t, "TRES_MESES", ptr.Value(body.Period))
	assert.Equal(t, "2025-11-24", ptr.Value(body.LastOccurrence))
	assert.Equal(t, "R$ 3.250,00", body.TotalPriceFormatted)
}

func TestHandle_EmptyBodyUsesDefaults(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, ``)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, uc.req.Players)
	assert.Empty(t, uc.req.Sport)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "broken body", body: `{"players":`, wantStatus: http.StatusBadRequest},
		{name: "invalid input", err: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "session not found", err: createBooking.ErrSessionNotFound, wantStatus: http.StatusNotFound},
		{name: "court not found", err: createBooking.ErrCourtNotFound, wantStatus: http.StatusNotFound},
		{name: "slot taken", err: createBooking.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{name: "slot not listed", err: createBooking.ErrSlotNotListed, wantStatus: http.StatusConflict},
		{name: "empty selection", err: createBooking.ErrEmptySelection, wantStatus: http.StatusUnprocessableEntity},
		{name: "gap in selection", err: createBooking.ErrInvalidSelection, wantStatus: http.StatusUnprocessableEntity},
		{name: "slot without id", err: createBooking.ErrMissingSlotID, wantStatus: http.StatusUnprocessableEntity},
		{name: "upstream failure", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
