package dto

import "net/http"

// Validation error codes -> 400 Bad Request
const (
	ErrCodeInvalidName      = "INVALID_NAME"
	ErrCodeInvalidBirthDate = "INVALID_BIRTH_DATE"
	ErrCodeInvalidCPF       = "INVALID_CPF"
	ErrCodeInvalidEmail     = "INVALID_EMAIL"
	ErrCodeInvalidPassword  = "INVALID_PASSWORD"
	ErrCodeInvalidGender    = "INVALID_GENDER"
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeInvalidJSON      = "INVALID_JSON"
)

// Authentication error codes -> 401 Unauthorized
const (
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeTokenExpired       = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid       = "TOKEN_INVALID"
	ErrCodeTokenRevoked       = "TOKEN_REVOKED"
)

// Resource error codes
const (
	ErrCodePersonNotFound     = "PERSON_NOT_FOUND"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeCPFAlreadyExists   = "CPF_ALREADY_EXISTS"
	ErrCodeEmailAlreadyExists = "EMAIL_ALREADY_EXISTS"
)

// General error codes
const (
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInvalidName:      http.StatusBadRequest,
	ErrCodeInvalidBirthDate: http.StatusBadRequest,
	ErrCodeInvalidCPF:       http.StatusBadRequest,
	ErrCodeInvalidEmail:     http.StatusBadRequest,
	ErrCodeInvalidPassword:  http.StatusBadRequest,
	ErrCodeInvalidGender:    http.StatusBadRequest,
	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeInvalidJSON:      http.StatusBadRequest,

	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeTokenExpired:       http.StatusUnauthorized,
	ErrCodeTokenInvalid:       http.StatusUnauthorized,
	ErrCodeTokenRevoked:       http.StatusUnauthorized,

	ErrCodePersonNotFound: http.StatusNotFound,
	ErrCodeNotFound:       http.StatusNotFound,

	ErrCodeCPFAlreadyExists:   http.StatusConflict,
	ErrCodeEmailAlreadyExists: http.StatusConflict,

	ErrCodeInternal: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
