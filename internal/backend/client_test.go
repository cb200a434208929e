package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zivo-app/business-hours/backend/internal/config"
	"github.com/zivo-app/business-hours/backend/internal/domain"
	"github.com/zivo-app/business-hours/backend/internal/hours"
)

// 确保客户端满足 hours 包需要的接口
var (
	_ hours.Backend = (*Client)(nil)
	_ hours.Creator = (*Client)(nil)
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = srv.URL + "/"
	cfg.Backend.RequestTimeout = 5
	return NewClient(cfg).WithToken("token-123")
}

func TestGetBusinessShifts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/business-shifts/business/biz-1", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"bs1","businessId":"biz-1","dayOfWeek":0,"isActive":false,"shiftTimeId":"st1","shiftTime":{"id":"st1","startTime":"2025-01-01T10:00:00Z","endTime":"2025-01-01T16:00:00Z"}}]`))
	})

	shifts, err := client.GetBusinessShifts(context.Background(), "biz-1")
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, "bs1", shifts[0].ID)
	require.NotNil(t, shifts[0].ShiftTime)
	assert.Equal(t, "2025-01-01T10:00:00Z", shifts[0].ShiftTime.StartTime)
}

func TestUpdateShiftTime(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v1/shift-times/st1", r.URL.Path)

		var body domain.ShiftTimeUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, domain.ShiftTimeUpdate{ID: "st1", StartTime: "2025-01-01T09:00:00.000Z", EndTime: "2025-01-01T18:00:00.000Z"}, body)

		_, _ = w.Write([]byte(`{"id":"st1"}`))
	})

	err := client.UpdateShiftTime(context.Background(), domain.ShiftTimeUpdate{
		ID:        "st1",
		StartTime: "2025-01-01T09:00:00.000Z",
		EndTime:   "2025-01-01T18:00:00.000Z",
	})
	assert.NoError(t, err)
}

func TestUpdateBusinessShift(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v1/business-shifts/bs1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "biz-1", body["businessId"])
		assert.Equal(t, float64(3), body["dayOfWeek"])
		assert.Equal(t, "st1", body["shiftTimeId"])
		assert.Equal(t, true, body["isActive"])

		w.WriteHeader(http.StatusNoContent)
	})

	err := client.UpdateBusinessShift(context.Background(), domain.BusinessShiftUpdate{
		ID:          "bs1",
		BusinessID:  "biz-1",
		DayOfWeek:   3,
		ShiftTimeID: "st1",
		IsActive:    true,
	})
	assert.NoError(t, err)
}

func TestCreateShiftTimeAndBusinessShift(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
		switch r.URL.Path {
		case "/v1/shift-times":
			_, _ = w.Write([]byte(`{"id":"st-new","startTime":"2025-01-01T09:00:00.000Z","endTime":"2025-01-01T18:00:00.000Z"}`))
		case "/v1/business-shifts":
			_, _ = w.Write([]byte(`{"id":"bs-new","businessId":"biz-1","dayOfWeek":1,"shiftTimeId":"st-new"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	st, err := client.CreateShiftTime(context.Background(), domain.ShiftTimeCreate{StartTime: "2025-01-01T09:00:00.000Z", EndTime: "2025-01-01T18:00:00.000Z"})
	require.NoError(t, err)
	assert.Equal(t, "st-new", st.ID)

	bs, err := client.CreateBusinessShift(context.Background(), domain.BusinessShiftCreate{BusinessID: "biz-1", DayOfWeek: 1, ShiftTimeID: st.ID})
	require.NoError(t, err)
	assert.Equal(t, "bs-new", bs.ID)
}

func TestErrorResponses(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"token expired"}`))
		})

		_, err := client.GetBusinessShifts(context.Background(), "biz-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnauthorized)

		var apiErr *Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "token expired", apiErr.Message)
	})

	t.Run("plain text body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "shift time not found", http.StatusNotFound)
		})

		err := client.DeleteShiftTime(context.Background(), "missing")
		var apiErr *Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "shift time not found", apiErr.Message)
		assert.NotErrorIs(t, err, ErrUnauthorized)
	})
}
