package httptransport

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeshift/pkg/platform/middleware/mockdate"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(NewHandler(logger), logger, RouterConfig{MockDateEnabled: true})
}

func getNow(t *testing.T, router http.Handler, mockDate string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/now", nil)
	if mockDate != "" {
		req.Header.Set(mockdate.Header, mockDate)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func currentTime(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body NowResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.CurrentTime
}

func TestNow_WithoutMockHeader(t *testing.T) {
	w := getNow(t, newTestRouter(t), "")

	require.Equal(t, http.StatusOK, w.Code)
	observed, err := time.Parse(isoLayout, currentTime(t, w))
	require.NoError(t, err)
	assert.Less(t, time.Since(observed).Abs(), time.Second)
}

func TestNow_WithValidMockHeaderUTC(t *testing.T) {
	w := getNow(t, newTestRouter(t), "2023-10-05T12:00:00+00:00")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2023-10-05T12:00:00+00:00", currentTime(t, w))
}

func TestNow_WithNaiveMockHeaderConvertsToUTC(t *testing.T) {
	w := getNow(t, newTestRouter(t), "2023-10-05T12:00:00")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2023-10-05T12:00:00+00:00", currentTime(t, w))
}

func TestNow_WithInvalidMockHeader(t *testing.T) {
	w := getNow(t, newTestRouter(t), "invalid-date-format")

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body mockdate.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Detail, 1)
	assert.Equal(t, "value_error", body.Detail[0].Type)
	assert.Equal(t, []string{"header", "x-mock-date"}, body.Detail[0].Loc)
	assert.Equal(t, "invalid-date-format", body.Detail[0].Input)
}

func TestNow_MockAffectsOnlyItsOwnRequest(t *testing.T) {
	router := newTestRouter(t)

	w1 := getNow(t, router, "2023-10-05T12:00:00+00:00")
	require.Equal(t, "2023-10-05T12:00:00+00:00", currentTime(t, w1))

	w2 := getNow(t, router, "")
	observed, err := time.Parse(isoLayout, currentTime(t, w2))
	require.NoError(t, err)
	assert.Less(t, time.Since(observed).Abs(), time.Second)
}

func TestNow_MockDisabledHeaderIsIgnored(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(NewHandler(logger), logger, RouterConfig{MockDateEnabled: false})

	w := getNow(t, router, "2023-10-05T12:00:00+00:00")

	require.Equal(t, http.StatusOK, w.Code)
	observed, err := time.Parse(isoLayout, currentTime(t, w))
	require.NoError(t, err)
	assert.Less(t, time.Since(observed).Abs(), time.Second)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
