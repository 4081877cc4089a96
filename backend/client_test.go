package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"glowdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second, zap.NewNop())
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth, gotContentType string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		json.NewEncoder(w).Encode([]models.Booking{})
	})

	_, err := client.ListBookingsByStylist(context.Background(), "tok-123", "sty1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestClientOmitsAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(LoginResponse{Token: "t", ID: "sty1"})
	})

	_, err := client.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientMapsErrorStatuses(t *testing.T) {
	cases := []struct {
		status int
		body   string
		want   string
	}{
		{400, `{"message":"time slot not available"}`, "time slot not available"},
		{401, `{"error":"token expired"}`, "token expired"},
		{404, `{}`, ""},
		{500, `not json`, ""},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("status %d", tc.status), func(t *testing.T) {
			client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})

			_, err := client.GetBooking(context.Background(), "tok", "b1")
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.want, apiErr.Message)
		})
	}
}

func TestClientWrapsConnectionFailures(t *testing.T) {
	// Point at a server that is already closed.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := New(srv.URL, time.Second, zap.NewNop())

	_, err := client.GetBooking(context.Background(), "tok", "b1")
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestPingCountsAnyResponseAsReachable(t *testing.T) {
	// Reachability is about transport, not the backend's opinion of the
	// request. A 404 on /health still means the backend answered.
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	assert.NoError(t, client.Ping(context.Background()))
}

func TestPingReportsConnectionFailures(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := New(srv.URL, time.Second, zap.NewNop())

	assert.ErrorIs(t, client.Ping(context.Background()), ErrUnreachable)
}

func TestErrorClassifiers(t *testing.T) {
	assert.True(t, IsNotFound(&APIError{Status: 404}))
	assert.True(t, IsUnauthorized(&APIError{Status: 401}))
	assert.True(t, IsValidation(&APIError{Status: 400}))
	assert.True(t, IsMethodUnsupported(&APIError{Status: 404}))
	assert.True(t, IsMethodUnsupported(&APIError{Status: 405}))
	assert.False(t, IsMethodUnsupported(&APIError{Status: 500}))
	assert.False(t, IsNotFound(ErrUnreachable))
}

func TestUpdateBookingStatusRequestShape(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	})

	err := client.UpdateBookingStatus(context.Background(), "tok", "b1", models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/bookings/b1/status", gotPath)
	assert.Equal(t, map[string]string{"status": "CONFIRMED"}, gotBody)
}

func TestRescheduleBookingRequestShape(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	})

	err := client.RescheduleBooking(context.Background(), "tok", "b1", "sty1", "2025-09-20T14:30:00.000Z", models.StatusRescheduled)
	require.NoError(t, err)
	assert.Equal(t, "/bookings/b1/reschedule", gotPath)
	assert.Equal(t, map[string]string{
		"stylistId":    "sty1",
		"newStartTime": "2025-09-20T14:30:00.000Z",
		"status":       "RESCHEDULED",
	}, gotBody)
}

func TestGetBookingFeeTreatsNotFoundAsUnset(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	fee, err := client.GetBookingFee(context.Background(), "tok", "sty1")
	require.NoError(t, err)
	require.NotNil(t, fee)
	assert.Nil(t, fee.BookingFeePercent)
}

func TestBookingIDAcceptsNumericJSON(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":42,"serviceId":"s1","status":"PENDING"}]`))
	})

	bookings, err := client.ListBookingsByStylist(context.Background(), "tok", "sty1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, models.ID("42"), bookings[0].ID)
}
