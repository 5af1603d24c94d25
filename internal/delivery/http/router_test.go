package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"patients-care-api/config"
	"patients-care-api/internal/delivery/http/handler"
	"patients-care-api/internal/delivery/http/middleware"
	"patients-care-api/internal/domain/entity"
	"patients-care-api/pkg/i18n"
	"patients-care-api/pkg/jwt"
	"patients-care-api/pkg/response"
	"patients-care-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type allowAllTokens struct{}

func (allowAllTokens) Store(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return nil
}

func (allowAllTokens) Exists(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error) {
	return true, nil
}

func (allowAllTokens) Revoke(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) error {
	return nil
}

func (allowAllTokens) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	return nil
}

// newTestRouter wires handlers without use cases; only requests stopped by
// routing or middleware are safe to send.
func newTestRouter(t *testing.T, demoID uuid.UUID) (http.Handler, *jwt.JWTService) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	tr, err := i18n.New("en")
	if err != nil {
		t.Fatalf("i18n.New() error = %v", err)
	}
	v := validator.NewValidator()
	responder := response.NewResponder(log, tr, v)
	jwtService := jwt.NewJWTService(config.JWTConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})

	handlers := Handlers{
		Auth:                 handler.NewAuthHandler(nil, v, responder),
		Doctor:               handler.NewDoctorHandler(nil, responder),
		Patient:              handler.NewPatientHandler(nil, responder),
		Specialization:       handler.NewSpecializationHandler(nil, v, responder),
		DoctorSpecialization: handler.NewDoctorSpecializationHandler(nil, v, responder),
		ClinicAffiliation:    handler.NewClinicAffiliationHandler(nil, v, responder),
		Clinic:               handler.NewClinicHandler(nil, v, responder),
		Appointment:          handler.NewAppointmentHandler(nil, v, responder),
		AuditLog:             handler.NewAuditLogHandler(nil, responder),
	}
	router := NewRouter(
		handlers,
		middleware.NewAuthMiddleware(log, jwtService, allowAllTokens{}, responder),
		middleware.NewDemoGuard(demoID, responder),
		middleware.NewCORSMiddleware(),
		responder,
		tr,
		log,
		t.TempDir(),
	)
	return router.Setup(), jwtService
}

func bearer(t *testing.T, s *jwt.JWTService, id uuid.UUID, role entity.Role) string {
	t.Helper()
	token, _, err := s.GenerateAccessToken(entity.Identity{UserID: id, Name: "Test", Surname: "User", Role: role})
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	return "Bearer " + token
}

func TestRouterGuards(t *testing.T) {
	demoID := uuid.New()
	router, jwtService := newTestRouter(t, demoID)

	patientToken := bearer(t, jwtService, uuid.New(), entity.RolePatient)
	demoToken := bearer(t, jwtService, demoID, entity.RoleDoctor)
	clinicURL := "/api/v1/clinics/" + uuid.NewString()

	tests := []struct {
		name       string
		method     string
		path       string
		auth       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/api/v1/health", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/v1/nothing-here", "", http.StatusNotFound},
		{"clinics need a token", http.MethodGet, "/api/v1/clinics", "", http.StatusUnauthorized},
		{"malformed token", http.MethodGet, "/api/v1/clinics", "Bearer nope", http.StatusUnauthorized},
		{"patient cannot create clinics", http.MethodPost, "/api/v1/clinics", patientToken, http.StatusForbidden},
		{"patient cannot list patients", http.MethodGet, "/api/v1/patients", patientToken, http.StatusForbidden},
		{"demo doctor cannot edit clinics", http.MethodPut, clinicURL, demoToken, http.StatusBadRequest},
		{"demo doctor cannot affiliate", http.MethodPost, "/api/v1/clinicAffiliations", demoToken, http.StatusBadRequest},
		{"doctor cannot book", http.MethodPost, "/api/v1/appointments", demoToken, http.StatusForbidden},
		{"preflight", http.MethodOptions, "/api/v1/clinics", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestRouterLocalizesErrors(t *testing.T) {
	router, _ := newTestRouter(t, uuid.Nil)

	messageFor := func(lang string) string {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/clinics", nil)
		req.Header.Set("Accept-Language", lang)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var body response.MessageResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body %q: %v", rec.Body.String(), err)
		}
		return body.Message
	}

	en, pl := messageFor("en-US"), messageFor("pl-PL")
	if en == "" || pl == "" || en == pl {
		t.Errorf("messages en=%q pl=%q, want two different translations", en, pl)
	}
}
