package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUsuarioNotFound is returned when a usuario id does not exist.
	ErrUsuarioNotFound = errors.New("usuario not found")
	// ErrCargoNotFound is returned when a cargo id does not exist.
	ErrCargoNotFound = errors.New("cargo not found")
	// ErrCargoInvalido is returned when id_cargo is not a positive integer.
	ErrCargoInvalido = errors.New("id_cargo must be a positive integer")
	// ErrEmailDuplicado is returned when another usuario already uses the email.
	ErrEmailDuplicado = errors.New("email already registered")
	// ErrCargoDuplicado is returned when a cargo with the same name exists.
	ErrCargoDuplicado = errors.New("cargo already exists")
	// ErrFechaInvalida is returned when a date is not YYYY-MM-DD.
	ErrFechaInvalida = errors.New("date must use YYYY-MM-DD")
	// ErrHoraInvalida is returned when a time of day is not HH:MM or HH:MM:SS.
	ErrHoraInvalida = errors.New("time must use HH:MM or HH:MM:SS")
	// ErrMontoInvalido is returned when a salary amount is missing or negative.
	ErrMontoInvalido = errors.New("invalid amount")
	// ErrRangoInvalido is returned when min is greater than max.
	ErrRangoInvalido = errors.New("min must not be greater than max")
	// ErrAsistenciaDuplicada is returned when attendance for that day is already recorded.
	ErrAsistenciaDuplicada = errors.New("attendance already recorded for that date")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

var mappings = []struct {
	err    error
	status int
	code   string
}{
	{ErrUsuarioNotFound, http.StatusNotFound, "USUARIO_NOT_FOUND"},
	{ErrCargoNotFound, http.StatusNotFound, "CARGO_NOT_FOUND"},
	{ErrCargoInvalido, http.StatusBadRequest, "INVALID_CARGO"},
	{ErrEmailDuplicado, http.StatusConflict, "EMAIL_ALREADY_EXISTS"},
	{ErrCargoDuplicado, http.StatusConflict, "CARGO_ALREADY_EXISTS"},
	{ErrFechaInvalida, http.StatusBadRequest, "INVALID_DATE"},
	{ErrHoraInvalida, http.StatusBadRequest, "INVALID_TIME"},
	{ErrMontoInvalido, http.StatusBadRequest, "INVALID_AMOUNT"},
	{ErrRangoInvalido, http.StatusBadRequest, "INVALID_RANGE"},
	{ErrAsistenciaDuplicada, http.StatusConflict, "ATTENDANCE_ALREADY_EXISTS"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{ErrInvalidRefreshToken, http.StatusUnauthorized, "INVALID_REFRESH_TOKEN"},
}

// MapErrorToHTTP maps domain errors (possibly wrapped) to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			return NewHTTPError(m.status, m.err.Error(), m.code)
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}
