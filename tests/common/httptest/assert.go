//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"casual-leasing/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status and, for 2xx replies, decodes into target when given.
func AssertSuccessResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, target any) {
	t.Helper()
	if !assert.Equal(t, status, rec.Code, "body: %s", rec.Body.String()) {
		return
	}
	if target == nil || status < 200 || status >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), target), "body: %s", rec.Body.String())
}

// AssertErrorResponse checks the status and that the error message contains msg.
// An empty msg only checks that the body has the error shape.
func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, msg string) httperr.Response {
	t.Helper()
	assert.Equal(t, status, rec.Code, "body: %s", rec.Body.String())

	var resp httperr.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	assert.NotEmpty(t, resp.Error.Code, "error code missing")
	if msg != "" {
		assert.Contains(t, resp.Error.Message, msg)
	}
	return resp
}

// AssertErrorCode checks the status and the machine-readable error code.
func AssertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code httperr.Code) {
	t.Helper()
	resp := AssertErrorResponse(t, rec, status, "")
	assert.Equal(t, code, resp.Error.Code)
}

func AssertHeaders(t *testing.T, rec *httptest.ResponseRecorder, want map[string]string) {
	t.Helper()
	for k, v := range want {
		assert.Equal(t, v, rec.Header().Get(k), "header %s", k)
	}
}
