package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicehp-backend/internal/apperr"
)

func TestFailStatusMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{apperr.Validation("bad input"), http.StatusBadRequest, "bad input"},
		{apperr.NotFound("missing"), http.StatusNotFound, "missing"},
		{apperr.Conflict("taken"), http.StatusConflict, "taken"},
		{apperr.Unauthorized("nope"), http.StatusUnauthorized, "nope"},
		{apperr.RateLimited("slow down"), http.StatusTooManyRequests, "slow down"},
		{errors.New("pq: connection refused"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		Fail(rec, tc.err)

		assert.Equal(t, tc.status, rec.Code)
		var env Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.False(t, env.Success)
		assert.Equal(t, tc.msg, env.Message)
	}
}

func TestJSONEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]string{"name": "Budi"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
}
