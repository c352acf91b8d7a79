package api

import (
	"errors"
	"net/http"

	"wealthdesk/pkg/wealthdesk"
)

// ErrorResponse is the structured error payload.
type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	ErrorCode string `json:"error_code,omitempty"`
}

// writeErrorResponse maps a business error to an HTTP status and writes
// the structured payload.
func writeErrorResponse(w http.ResponseWriter, httpStatus int, err error) {
	response := ErrorResponse{
		Code:    httpStatus,
		Message: err.Error(),
	}

	var wdErr *wealthdesk.Error
	if errors.As(err, &wdErr) {
		response.ErrorCode = string(wdErr.Code)
		httpStatus = mapErrorCodeToHTTPStatus(wdErr.Code)
		response.Code = httpStatus
	}

	writeJSON(w, httpStatus, response)
}

func mapErrorCodeToHTTPStatus(code wealthdesk.ErrorCode) int {
	switch code {
	case wealthdesk.ErrCodeInvalidInput, wealthdesk.ErrCodeValidation:
		return http.StatusBadRequest
	case wealthdesk.ErrCodeNotFound, wealthdesk.ErrCodeProfileUnavailable:
		return http.StatusNotFound
	case wealthdesk.ErrCodeDuplicate:
		return http.StatusConflict
	case wealthdesk.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case wealthdesk.ErrCodeDatabase, wealthdesk.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
