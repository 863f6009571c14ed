package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusBadRequest, "Malformed data")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error": "Malformed data"}`, rec.Body.String())
}

func TestWriteServerError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteServerError(rec, "upstream timeout")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"server error": "upstream timeout"}`, rec.Body.String())
}

func TestRequireJSONContentType(t *testing.T) {
	cases := []struct {
		contentType string
		ok          bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"text/plain", false},
		{"application/xml", false},
		{"", false},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/stocks", nil)
		if tc.contentType != "" {
			req.Header.Set("Content-Type", tc.contentType)
		}
		rec := httptest.NewRecorder()

		got := RequireJSONContentType(rec, req)
		assert.Equal(t, tc.ok, got, tc.contentType)
		if !tc.ok {
			assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code, tc.contentType)
		}
	}
}

func TestRequireMethod(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/portfolio-value", nil)
	rec := httptest.NewRecorder()

	require.False(t, RequireMethod(rec, req, http.MethodGet))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET", rec.Header().Get("Allow"))
}

func TestDecodeJSON_Malformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/stocks", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	var v map[string]interface{}
	require.False(t, DecodeJSON(rec, req, &v))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "Malformed data"}`, rec.Body.String())
}

func TestDecodeJSON_Valid(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/stocks", strings.NewReader(`{"symbol": "AAPL"}`))
	rec := httptest.NewRecorder()

	var v map[string]interface{}
	require.True(t, DecodeJSON(rec, req, &v))
	assert.Equal(t, "AAPL", v["symbol"])
}
