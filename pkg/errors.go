package pkg

import "net/http"

// ErrorKind classifies an AppError for callers that need to branch on the
// failure class rather than on individual error codes.
//
// The taxonomy mirrors how the pipeline treats each class:
//   - validation/authorization errors are never retried;
//   - provider errors are retryable (bounded) by the evaluation service;
//   - conflict errors mean an optimistic guard lost a race and the caller
//     should refresh state before retrying;
//   - repair_needed errors are only actionable through the operator repair path.

type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindAuthorization ErrorKind = "authorization"
	KindNotFound      ErrorKind = "not_found"
	KindProvider      ErrorKind = "provider"
	KindConflict      ErrorKind = "conflict"
	KindRepairNeeded  ErrorKind = "repair_needed"
	KindInternal      ErrorKind = "internal"
)

// AppError is the service-wide error envelope returned across the usecase
// boundary and rendered by the HTTP adapter.

type AppError struct {
	Code       string
	Message    string
	Kind       ErrorKind
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the JSON body sent to clients. The wrapped cause is never
// serialized.

type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

// NewDomainErrorSimple builds an AppError without a wrapped cause, inferring
// the kind from the HTTP status.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Kind: kindForStatus(httpStatus), HTTPStatus: httpStatus}
}

// NewDomainErrorWithKind builds an AppError with an explicit kind for codes
// whose HTTP status does not imply their class.
func NewDomainErrorWithKind(code, message string, kind ErrorKind, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Kind: kind, HTTPStatus: httpStatus}
}

// NewDomainError builds an AppError wrapping an underlying cause.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Kind: kindForStatus(httpStatus), HTTPStatus: httpStatus, Err: err}
}

func NewValidationError(code, message string) *AppError {
	return &AppError{Code: code, Message: message, Kind: KindValidation, HTTPStatus: http.StatusBadRequest}
}

func NewAuthorizationError(code, message string) *AppError {
	return &AppError{Code: code, Message: message, Kind: KindAuthorization, HTTPStatus: http.StatusForbidden}
}

func NewNotFoundError(code, message string) *AppError {
	return &AppError{Code: code, Message: message, Kind: KindNotFound, HTTPStatus: http.StatusNotFound}
}

func NewProviderError(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Kind: KindProvider, HTTPStatus: http.StatusBadGateway, Err: err}
}

func NewConflictError(code, message string) *AppError {
	return &AppError{Code: code, Message: message, Kind: KindConflict, HTTPStatus: http.StatusConflict}
}

func NewRepairNeededError(code, message string) *AppError {
	return &AppError{Code: code, Message: message, Kind: KindRepairNeeded, HTTPStatus: http.StatusUnprocessableEntity}
}

func kindForStatus(status int) ErrorKind {
	switch status {
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAuthorization
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusBadGateway, http.StatusGatewayTimeout:
		return KindProvider
	case http.StatusUnprocessableEntity:
		return KindRepairNeeded
	default:
		return KindInternal
	}
}
