package common

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"
)

// Env points API workflow tests at a running stockfolio deployment.
type Env struct {
	BaseURL  string
	GainsURL string
	client   *http.Client
}

// NewEnv returns a test Env, or skips the test when no deployment is
// configured. STOCKFOLIO_TEST_BASE_URL must point at the stock records
// service; STOCKFOLIO_TEST_GAINS_URL optionally points at the capital
// gains service.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	baseURL := os.Getenv("STOCKFOLIO_TEST_BASE_URL")
	if baseURL == "" {
		t.Skip("API tests disabled (set STOCKFOLIO_TEST_BASE_URL to enable)")
		return nil
	}

	return &Env{
		BaseURL:  baseURL,
		GainsURL: os.Getenv("STOCKFOLIO_TEST_GAINS_URL"),
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// HTTPGet issues a GET against the stock records service.
func (e *Env) HTTPGet(path string) (*http.Response, error) {
	return e.client.Get(e.BaseURL + path)
}

// HTTPPost issues a JSON POST against the stock records service.
func (e *Env) HTTPPost(path string, payload interface{}) (*http.Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return e.client.Post(e.BaseURL+path, "application/json", bytes.NewReader(data))
}

// HTTPPut issues a JSON PUT against the stock records service.
func (e *Env) HTTPPut(path string, payload interface{}) (*http.Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPut, e.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return e.client.Do(req)
}

// HTTPDelete issues a DELETE against the stock records service.
func (e *Env) HTTPDelete(path string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, e.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return e.client.Do(req)
}

// GainsGet issues a GET against the capital gains service. Skips the test
// when the gains service is not configured.
func (e *Env) GainsGet(t *testing.T, path string) (*http.Response, error) {
	t.Helper()
	if e.GainsURL == "" {
		t.Skip("gains API tests disabled (set STOCKFOLIO_TEST_GAINS_URL to enable)")
		return nil, nil
	}
	return e.client.Get(e.GainsURL + path)
}
