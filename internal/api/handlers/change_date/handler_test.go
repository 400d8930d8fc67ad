package change_date

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtBooking/internal/service/session"
	"github.com/m04kA/SMC-CourtBooking/internal/service/session/models"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
)

type fakeService struct{ err error }

func (f *fakeService) ChangeDate(_ context.Context, id string, req *models.ChangeDateRequest) (*models.SessionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.SessionResponse{ID: id, Date: req.Date}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "changed", body: `{"date":"2025-09-02"}`, wantStatus: http.StatusOK},
		{name: "unknown field", body: `{"dia":"2025-09-02"}`, wantStatus: http.StatusBadRequest},
		{name: "past date", body: `{"date":"2020-01-01"}`, err: session.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "invalid id", body: `{"date":"2025-09-02"}`, err: session.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "expired", body: `{"date":"2025-09-02"}`, err: session.ErrSessionNotFound, wantStatus: http.StatusNotFound},
		{name: "store failure", body: `{"date":"2025-09-02"}`, err: session.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.HandleFunc("/sessions/{sessionId}/date", NewHandler(&fakeService{err: tt.err}, logger.NewNop()).Handle)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/sessions/abc/date", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
