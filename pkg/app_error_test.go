package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if appErr.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected message: %s", appErr.Error())
	}

	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Status != http.StatusInternalServerError {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	if simple.Err != nil || simple.Error() != "ESTIMATE_NOT_FOUND: Estimate not found" {
		t.Fatalf("unexpected simple error: %+v", simple)
	}

	if got := NewDomainError("X", "x", nil, 0); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected default 500, got %d", got.HTTPStatus)
	}
}
