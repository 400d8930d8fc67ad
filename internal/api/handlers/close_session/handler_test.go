package close_session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtBooking/internal/service/session"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
)

type fakeService struct {
	closed string
	err    error
}

func (f *fakeService) Close(_ context.Context, id string) error {
	f.closed = id
	return f.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "closed", wantStatus: http.StatusNoContent},
		{name: "invalid id", err: session.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "expired", err: session.ErrSessionNotFound, wantStatus: http.StatusNotFound},
		{name: "store failure", err: session.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			r := mux.NewRouter()
			r.HandleFunc("/sessions/{sessionId}", NewHandler(svc, logger.NewNop()).Handle)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/sessions/abc", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "abc", svc.closed)
		})
	}
}
