package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAPIError(t *testing.T, raw string) *APIError {
	t.Helper()
	var e APIError
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	return &e
}

func TestAPIErrorDetailPrefersCauseDataMessage(t *testing.T) {
	e := decodeAPIError(t, `{
		"message": "bad request",
		"cause": {"data": {"message": "invalid unit_price"}, "error": "other"}
	}`)

	assert.Equal(t, "invalid unit_price", e.Detail())
}

func TestAPIErrorDetailCauseErrorString(t *testing.T) {
	e := decodeAPIError(t, `{
		"message": "bad request",
		"cause": {"error": "items required"}
	}`)

	assert.Equal(t, "items required", e.Detail())
}

func TestAPIErrorDetailCauseErrorObjectFallsBackToRawJSON(t *testing.T) {
	e := decodeAPIError(t, `{
		"message": "bad request",
		"cause": {"error": {"code": 4020}}
	}`)

	assert.JSONEq(t, `{"code": 4020}`, e.Detail())
}

func TestAPIErrorDetailCauseArray(t *testing.T) {
	e := decodeAPIError(t, `{
		"message": "bad request",
		"cause": [{"data": {"message": "first cause wins"}}, {"error": "second"}]
	}`)

	assert.Equal(t, "first cause wins", e.Detail())
}

func TestAPIErrorDetailTopLevelMessage(t *testing.T) {
	e := decodeAPIError(t, `{"message": "invalid access token"}`)

	assert.Equal(t, "invalid access token", e.Detail())
}

func TestAPIErrorDetailUnknownShape(t *testing.T) {
	e := decodeAPIError(t, `{"status": 500}`)

	assert.Equal(t, "", e.Detail())
}
