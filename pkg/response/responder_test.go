package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"patients-care-api/pkg/apperror"
	"patients-care-api/pkg/i18n"
	"patients-care-api/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

func newTestResponder(t *testing.T) *Responder {
	t.Helper()
	tr, err := i18n.New("en")
	if err != nil {
		t.Fatalf("i18n.New() error = %v", err)
	}
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewResponder(log, tr, validator.NewValidator())
}

func TestResponderError(t *testing.T) {
	rs := newTestResponder(t)

	type payload struct {
		Email string `json:"email" validate:"required,email"`
	}
	validationErr := validator.NewValidator().Validate(&payload{})

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"app error", apperror.NotFound(apperror.KeyClinicNotFound), http.StatusNotFound},
		{"app error with detail", apperror.NotFound(apperror.KeyNoItemFoundWithID).WithDetail("abc"), http.StatusNotFound},
		{"validation", validationErr, http.StatusBadRequest},
		{"duplicate", &pgconn.PgError{Code: "23505", Detail: "Key (email)=(a@b.c) already exists."}, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rs.Error(rec, req, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body MessageResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if body.Message == "" {
				t.Error("empty message")
			}
		})
	}
}

func TestResponderDuplicateNamesColumns(t *testing.T) {
	rs := newTestResponder(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	rs.Error(rec, req, &pgconn.PgError{Code: "23505", Detail: "Key (doctor_id, clinic_id)=(1, 2) already exists."})

	var body MessageResponse
	json.Unmarshal(rec.Body.Bytes(), &body)
	want := rs.Translate(req, apperror.KeyDuplicateValue) + " doctor_id,clinic_id"
	if body.Message != want {
		t.Errorf("message = %q, want %q", body.Message, want)
	}
}

func TestResponderUsesRequestLocale(t *testing.T) {
	rs := newTestResponder(t)

	en := httptest.NewRequest(http.MethodGet, "/", nil)
	pl := httptest.NewRequest(http.MethodGet, "/?lng=pl", nil)

	if rs.Translate(en, apperror.KeyClinicNotFound) == rs.Translate(pl, apperror.KeyClinicNotFound) {
		t.Error("pl and en messages are identical")
	}
}
