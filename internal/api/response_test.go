package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wealthdesk/pkg/wealthdesk"
)

func TestMapErrorCodeToHTTPStatus(t *testing.T) {
	cases := []struct {
		code wealthdesk.ErrorCode
		want int
	}{
		{wealthdesk.ErrCodeInvalidInput, http.StatusBadRequest},
		{wealthdesk.ErrCodeValidation, http.StatusBadRequest},
		{wealthdesk.ErrCodeNotFound, http.StatusNotFound},
		{wealthdesk.ErrCodeProfileUnavailable, http.StatusNotFound},
		{wealthdesk.ErrCodeDuplicate, http.StatusConflict},
		{wealthdesk.ErrCodeUnauthorized, http.StatusUnauthorized},
		{wealthdesk.ErrCodeDatabase, http.StatusInternalServerError},
		{wealthdesk.ErrCodeInternal, http.StatusInternalServerError},
		{wealthdesk.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapErrorCodeToHTTPStatus(tc.code); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.code, tc.want, got)
		}
	}
}

func TestWriteErrorResponseStructured(t *testing.T) {
	rr := httptest.NewRecorder()
	writeErrorResponse(rr, http.StatusInternalServerError,
		wealthdesk.NewError(wealthdesk.ErrCodeNotFound, "missing"))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected mapped 404, got %d", rr.Code)
	}
	body := parseJSON(t, rr)
	if body["error_code"] != string(wealthdesk.ErrCodeNotFound) {
		t.Fatalf("expected error code in payload, got %v", body)
	}
}

func TestWriteErrorResponsePlainError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeErrorResponse(rr, http.StatusBadGateway, errors.New("plain failure"))

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected status preserved for plain errors, got %d", rr.Code)
	}
}
