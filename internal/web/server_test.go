package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/example/gowheels/internal/booking"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	err   error
	saved *booking.Booking
}

func (s *stubStore) Create(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	if s.err != nil {
		return booking.Booking{}, s.err
	}
	b.ID = uuid.New()
	b.CreatedAt = time.Now().UTC()
	s.saved = &b
	return b, nil
}

type stubNotifier struct {
	err   error
	calls int
}

func (n *stubNotifier) Send(ctx context.Context, b booking.Booking) error {
	n.calls++
	return n.err
}

func newTestServer(store booking.Store, notifier booking.Notifier) *Server {
	return &Server{
		Bookings:       booking.NewService(store, notifier, time.Second),
		AllowedOrigins: []string{"http://localhost:5500"},
	}
}

func postBook(t *testing.T, h http.Handler, body string, origin string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func validBody(t *testing.T) string {
	t.Helper()
	b, err := json.Marshal(booking.Request{
		Name:       "Alex",
		Email:      "a@b.com",
		CarModel:   "Sedan",
		Phone:      "555-0100",
		PickupDate: time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
	})
	require.NoError(t, err)
	return string(b)
}

func TestIndex(t *testing.T) {
	h := newTestServer(&stubStore{}, nil).Routes()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Go Wheels backend is running", rec.Body.String())
}

func TestHealthz(t *testing.T) {
	h := newTestServer(&stubStore{}, nil).Routes()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}

func TestBookConfirmed(t *testing.T) {
	store := &stubStore{}
	notifier := &stubNotifier{}
	h := newTestServer(store, notifier).Routes()

	rec := postBook(t, h, validBody(t), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string           `json:"message"`
		Booking *booking.Booking `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Booking confirmed", resp.Message)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, "Alex", resp.Booking.Name)
	assert.Equal(t, "Sedan", resp.Booking.CarModel)
	assert.NotEqual(t, uuid.Nil, resp.Booking.ID)
	assert.Equal(t, 1, notifier.calls)
}

func TestBookMissingFields(t *testing.T) {
	store := &stubStore{}
	h := newTestServer(store, nil).Routes()

	rec := postBook(t, h, `{"name":"Alex"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Name, email, car model, and phone are required.")
	assert.Nil(t, store.saved)
}

func TestBookPickupInPast(t *testing.T) {
	h := newTestServer(&stubStore{}, nil).Routes()

	body, err := json.Marshal(booking.Request{
		Name:       "Alex",
		Email:      "a@b.com",
		CarModel:   "Sedan",
		Phone:      "555-0100",
		PickupDate: time.Now().Add(-48 * time.Hour).UTC().Format(time.RFC3339),
	})
	require.NoError(t, err)

	rec := postBook(t, h, string(body), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pickup date cannot be in the past.")
}

func TestBookMalformedJSON(t *testing.T) {
	h := newTestServer(&stubStore{}, nil).Routes()

	rec := postBook(t, h, `{"name":`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookStoreFailure(t *testing.T) {
	notifier := &stubNotifier{}
	h := newTestServer(&stubStore{err: assert.AnError}, notifier).Routes()

	rec := postBook(t, h, validBody(t), "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
	// Store error detail stays out of the response body.
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	assert.Equal(t, 0, notifier.calls)
}

func TestBookNotifierFailureStillConfirmed(t *testing.T) {
	h := newTestServer(&stubStore{}, &stubNotifier{err: context.DeadlineExceeded}).Routes()

	rec := postBook(t, h, validBody(t), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Booking confirmed")
	assert.NotContains(t, rec.Body.String(), "deadline")
}

func TestBookMethodNotAllowed(t *testing.T) {
	h := newTestServer(&stubStore{}, nil).Routes()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/book", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestOriginAllowList(t *testing.T) {
	store := &stubStore{}
	h := newTestServer(store, nil).Routes()

	rec := postBook(t, h, validBody(t), "http://evil.example.com")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, store.saved, "rejected origins must not reach the service")

	rec = postBook(t, h, validBody(t), "http://localhost:5500")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5500", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestPreflight(t *testing.T) {
	h := newTestServer(&stubStore{}, nil).Routes()

	req := httptest.NewRequest(http.MethodOptions, "/api/book", bytes.NewReader(nil))
	req.Header.Set("Origin", "http://localhost:5500")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}
