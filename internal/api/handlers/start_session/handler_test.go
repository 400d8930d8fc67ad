package start_session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBooking/internal/service/session"
	"github.com/m04kA/SMC-CourtBooking/internal/service/session/models"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
)

type fakeService struct {
	req *models.StartRequest
	err error
}

func (f *fakeService) Start(_ context.Context, req *models.StartRequest) (*models.SessionResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.SessionResponse{ID: "s-1", ArenaID: req.ArenaID, Date: req.Date}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "created", body: `{"arenaId":1,"date":"2025-09-01","sport":"FUTEVOLEI"}`, wantStatus: http.StatusCreated},
		{name: "broken body", body: `{"arenaId":`, wantStatus: http.StatusBadRequest},
		{name: "invalid date", body: `{"arenaId":1,"date":"x"}`, err: session.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "invalid input", body: `{"arenaId":0}`, err: session.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "store failure", body: `{"arenaId":1}`, err: session.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			rec := httptest.NewRecorder()
			NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				require.NotNil(t, svc.req)
				assert.Equal(t, "FUTEVOLEI", svc.req.Sport)
				assert.Contains(t, rec.Body.String(), `"id":"s-1"`)
			}
		})
	}
}
