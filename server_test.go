package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires a Server against a stubbed upstream METAR source
func newTestServer(t *testing.T, upstream http.HandlerFunc) *Server {
	t.Helper()

	src := httptest.NewServer(upstream)
	t.Cleanup(src.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(NewGateway(src.URL), NewDecoder(), logger)
}

func metarUpstream(raw string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(raw + "\n"))
	}
}

func TestHandleIndex(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, metarUpstream(""))
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/get-weather"`)
	assert.Contains(t, rec.Body.String(), `name="airport_code"`)
}

func TestHandleGetWeather(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, metarUpstream("KJFK 041851Z 31008KT 10SM FEW250 M04/M17 A3034"))

	rec := postForm(t, srv, url.Values{"airport_code": {"kjfk"}})
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Weather for KJFK")
	assert.Contains(t, body, "Few clouds, 25°F, winds 9 mph from the northwest.")
	assert.Contains(t, body, "Pressure: 30.34 inHg (1027 mb)")
	assert.Contains(t, body, "KJFK 041851Z 31008KT 10SM FEW250 M04/M17 A3034")
}

func TestHandleGetWeather_validation(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, metarUpstream("KJFK 041851Z 31008KT A3034"))

	rec := postForm(t, srv, url.Values{})
	assert.Contains(t, rec.Body.String(), "Please enter an airport code")

	rec = postForm(t, srv, url.Values{"airport_code": {"JFK"}})
	assert.Contains(t, rec.Body.String(), "Airport code must be 4 characters")
}

func TestHandleGetWeather_noData(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, metarUpstream(""))

	rec := postForm(t, srv, url.Values{"airport_code": {"XXXX"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No METAR data found for airport code: XXXX")
}

func TestHandleAPIWeather(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, metarUpstream("KJFK 041851Z 31008KT 10SM FEW250 M04/M17 A3034"))

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/weather/kjfk", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp struct {
		AirportCode string `json:"airport_code"`
		RawMETAR    string `json:"raw_metar"`
		Decoded     Report `json:"decoded"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "KJFK", resp.AirportCode)
	assert.Equal(t, "KJFK 041851Z 31008KT 10SM FEW250 M04/M17 A3034", resp.RawMETAR)
	assert.Equal(t, "KJFK", resp.Decoded.Station)
	assert.Equal(t, "Few clouds, 25°F, winds 9 mph from the northwest.", resp.Decoded.Summary)
	assert.Len(t, resp.Decoded.Details, 6)
}

func TestHandleAPIWeather_noData(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, metarUpstream(""))

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/weather/XXXX", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "No METAR data found"}`, rec.Body.String())
}

func TestHandleAPIWeather_upstreamFailure(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/weather/KJFK", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "unexpected status code: 502")
}

func TestHandleHealthz(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, metarUpstream(""))

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func postForm(t *testing.T, srv *Server, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/get-weather", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}
