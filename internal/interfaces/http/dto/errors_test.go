package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeInvalidName, http.StatusBadRequest},
		{ErrCodeInvalidBirthDate, http.StatusBadRequest},
		{ErrCodeInvalidCPF, http.StatusBadRequest},
		{ErrCodeInvalidEmail, http.StatusBadRequest},
		{ErrCodeInvalidPassword, http.StatusBadRequest},
		{ErrCodeInvalidGender, http.StatusBadRequest},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeInvalidJSON, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{ErrCodeTokenExpired, http.StatusUnauthorized},
		{ErrCodeTokenInvalid, http.StatusUnauthorized},
		{ErrCodeTokenRevoked, http.StatusUnauthorized},
		{ErrCodePersonNotFound, http.StatusNotFound},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeCPFAlreadyExists, http.StatusConflict},
		{ErrCodeEmailAlreadyExists, http.StatusConflict},
		{ErrCodeInternal, http.StatusInternalServerError},
		// Unknown code should return 500
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNewSuccessResponse(t *testing.T) {
	resp := NewSuccessResponse(map[string]string{"name": "Maria"})

	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrCodeInvalidCPF, "CPF is invalid")

	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidCPF, resp.Error.Code)
	assert.Equal(t, "CPF is invalid", resp.Error.Message)
}

func TestResponse_JSONShape(t *testing.T) {
	t.Run("success response omits error", func(t *testing.T) {
		raw, err := json.Marshal(NewSuccessResponse("ok"))
		require.NoError(t, err)

		assert.JSONEq(t, `{"success":true,"data":"ok"}`, string(raw))
	})

	t.Run("error response omits data", func(t *testing.T) {
		raw, err := json.Marshal(NewErrorResponse(ErrCodePersonNotFound, "Person not found"))
		require.NoError(t, err)

		assert.JSONEq(t, `{"success":false,"error":{"code":"PERSON_NOT_FOUND","message":"Person not found"}}`, string(raw))
	})
}
