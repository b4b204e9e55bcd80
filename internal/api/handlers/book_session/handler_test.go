package book_session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FitClub-BookingService/internal/domain"
	bookSession "github.com/m04kA/FitClub-BookingService/internal/usecase/book_session"
	"github.com/m04kA/FitClub-BookingService/pkg/metrics"
)

type stubUseCase struct {
	resp *bookSession.Response
	err  error

	gotReq *bookSession.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *bookSession.Request) (*bookSession.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(body))
}

func TestHandler_Handle_Success(t *testing.T) {
	uc := &stubUseCase{
		resp: &bookSession.Response{
			ID:          "session-1",
			ClientID:    "client-1",
			Date:        time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			StartTime:   "08:00",
			EndTime:     "09:30",
			Status:      string(domain.StatusScheduled),
			BookedSpots: 1,
			TotalSpots:  6,
		},
	}
	h := NewHandler(uc, (*metrics.Metrics)(nil), nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(`{"clientId":"client-1","date":"2026-09-07","startTime":"08:00"}`))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "session-1", resp.ID)
	assert.Equal(t, "2026-09-07", resp.Date)
	assert.Equal(t, "scheduled", resp.Status)
	assert.Equal(t, 1, resp.BookedSpots)
	assert.Equal(t, 6, resp.TotalSpots)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "client-1", uc.gotReq.ClientID)
	assert.Equal(t, "08:00", uc.gotReq.StartTime.String())
}

func TestHandler_Handle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "slot full", err: bookSession.ErrSlotFull, wantStatus: http.StatusConflict},
		{name: "duplicate booking", err: bookSession.ErrDuplicateBooking, wantStatus: http.StatusConflict},
		{name: "client not found", err: bookSession.ErrClientNotFound, wantStatus: http.StatusNotFound},
		{name: "weekend", err: bookSession.ErrSlotUnavailable, wantStatus: http.StatusBadRequest},
		{name: "unknown slot", err: bookSession.ErrUnknownSlot, wantStatus: http.StatusBadRequest},
		{name: "past date", err: bookSession.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "invalid input", err: bookSession.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", err: bookSession.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, (*metrics.Metrics)(nil), nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(`{"clientId":"client-1","date":"2026-09-07","startTime":"08:00"}`))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Handle_BadRequestBody(t *testing.T) {
	h := NewHandler(&stubUseCase{}, (*metrics.Metrics)(nil), nopLogger{})

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `not json`},
		{name: "unknown field", body: `{"clientId":"c1","date":"2026-09-07","startTime":"08:00","seat":3}`},
		{name: "bad date format", body: `{"clientId":"c1","date":"07.09.2026","startTime":"08:00"}`},
		{name: "bad time format", body: `{"clientId":"c1","date":"2026-09-07","startTime":"8am"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
