package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"bad request", BadRequest(KeyBadObjectStructure), http.StatusBadRequest},
		{"unauthenticated", Unauthenticated(KeyInvalidAuthentication), http.StatusUnauthorized},
		{"forbidden", Forbidden(KeyNoActionAllowed), http.StatusForbidden},
		{"not found", NotFound(KeyClinicNotFound), http.StatusNotFound},
		{"not acceptable", NotAcceptable(KeyRefreshTokenExpired), http.StatusNotAcceptable},
		{"internal", Internal(KeySomethingWentWrong), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.StatusCode(); got != tt.want {
				t.Errorf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWithDetailKeepsIdentity(t *testing.T) {
	base := NotFound(KeyDoctorNotFound)
	detailed := base.WithDetail("42")

	if detailed.Error() != "errors.DOCTOR_NOT_FOUND 42" {
		t.Errorf("Error() = %q", detailed.Error())
	}
	if !errors.Is(detailed, base) {
		t.Error("expected detailed error to match its sentinel")
	}
	if base.Detail != "" {
		t.Error("WithDetail must not mutate the sentinel")
	}
}

func TestAsUnwrapsChain(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", Forbidden(KeyNoActionAllowed))

	appErr, ok := As(wrapped)
	if !ok {
		t.Fatal("expected *Error in chain")
	}
	if appErr.Key != KeyNoActionAllowed {
		t.Errorf("Key = %q", appErr.Key)
	}

	if _, ok := As(errors.New("plain")); ok {
		t.Error("plain error must not match")
	}
}
