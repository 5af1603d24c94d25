package http

import (
	"net/http"

	"patients-care-api/internal/delivery/http/handler"
	"patients-care-api/internal/delivery/http/middleware"
	"patients-care-api/internal/domain/entity"
	"patients-care-api/internal/infrastructure/metrics"
	"patients-care-api/pkg/apperror"
	"patients-care-api/pkg/i18n"
	"patients-care-api/pkg/response"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Handlers struct {
	Auth                 *handler.AuthHandler
	Doctor               *handler.DoctorHandler
	Patient              *handler.PatientHandler
	Specialization       *handler.SpecializationHandler
	DoctorSpecialization *handler.DoctorSpecializationHandler
	ClinicAffiliation    *handler.ClinicAffiliationHandler
	Clinic               *handler.ClinicHandler
	Appointment          *handler.AppointmentHandler
	AuditLog             *handler.AuditLogHandler
}

type Router struct {
	router         *mux.Router
	handlers       Handlers
	authMiddleware *middleware.AuthMiddleware
	demoGuard      *middleware.DemoGuard
	corsMiddleware *middleware.CORSMiddleware
	responder      *response.Responder
	translator     *i18n.Translator
	log            *logrus.Logger
	uploadDir      string
}

func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	demoGuard *middleware.DemoGuard,
	corsMiddleware *middleware.CORSMiddleware,
	responder *response.Responder,
	translator *i18n.Translator,
	log *logrus.Logger,
	uploadDir string,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		handlers:       handlers,
		authMiddleware: authMiddleware,
		demoGuard:      demoGuard,
		corsMiddleware: corsMiddleware,
		responder:      responder,
		translator:     translator,
		log:            log,
		uploadDir:      uploadDir,
	}
}

// chain wraps h with mws, the first one outermost
func chain(h http.HandlerFunc, mws ...func(http.Handler) http.Handler) http.Handler {
	var out http.Handler = h
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}

func (r *Router) Setup() http.Handler {
	h := r.handlers
	authn := r.authMiddleware.Authenticate
	doctor := r.authMiddleware.RequireDoctor
	patient := r.authMiddleware.RequirePatient
	anyRole := r.authMiddleware.RequireRole(entity.RoleDoctor, entity.RolePatient)
	demo := r.demoGuard.Block

	r.router.Use(metrics.Middleware)
	r.router.Use(middleware.AccessLog(r.log))
	r.router.Use(middleware.Locale(r.translator))

	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	api.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/api/v1/uploads/", http.FileServer(http.Dir(r.uploadDir))),
	).Methods(http.MethodGet)

	// Auth routes
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", h.Auth.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refreshToken", h.Auth.RefreshToken).Methods(http.MethodPost)
	auth.Handle("/logout", chain(h.Auth.Logout, authn)).Methods(http.MethodPost)
	auth.Handle("/me", chain(h.Auth.GetCurrentUser, authn)).Methods(http.MethodGet)
	auth.Handle("/me", chain(h.Auth.UpdateCurrentUser, authn)).Methods(http.MethodPut)
	auth.Handle("/me", chain(h.Auth.DeleteCurrentUser, authn)).Methods(http.MethodDelete)
	auth.Handle("/me/updatePassword", chain(h.Auth.UpdatePassword, authn)).Methods(http.MethodPut)
	auth.Handle("/me/uploadPhoto", chain(h.Auth.UploadPhoto, authn)).Methods(http.MethodPut)
	auth.Handle("/me/deletePhoto", chain(h.Auth.RemovePhoto, authn)).Methods(http.MethodPut)
	auth.Handle("/me/activity", chain(h.AuditLog.GetMyActivity, authn)).Methods(http.MethodGet)
	auth.Handle("/me/activity/{id}", chain(h.AuditLog.GetMyActivityEntry, authn)).Methods(http.MethodGet)

	// Doctors
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.HandleFunc("/register", h.Auth.RegisterAs(entity.RoleDoctor)).Methods(http.MethodPost)
	doctors.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	doctors.HandleFunc("/refreshToken", h.Auth.RefreshToken).Methods(http.MethodPost)
	doctors.HandleFunc("", h.Doctor.GetAllDoctors).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}", h.Doctor.GetDoctor).Methods(http.MethodGet)

	// Patients
	patients := api.PathPrefix("/patients").Subrouter()
	patients.HandleFunc("/register", h.Auth.RegisterAs(entity.RolePatient)).Methods(http.MethodPost)
	patients.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	patients.HandleFunc("/refreshToken", h.Auth.RefreshToken).Methods(http.MethodPost)
	patients.Handle("", chain(h.Patient.GetAllPatients, authn, doctor)).Methods(http.MethodGet)
	patients.Handle("/{id}", chain(h.Patient.GetPatient, authn)).Methods(http.MethodGet)

	// Specializations
	specializations := api.PathPrefix("/specializations").Subrouter()
	specializations.HandleFunc("", h.Specialization.GetAllSpecializations).Methods(http.MethodGet)
	specializations.HandleFunc("/{id}", h.Specialization.GetSpecialization).Methods(http.MethodGet)
	specializations.Handle("", chain(h.Specialization.CreateSpecialization, authn, doctor)).Methods(http.MethodPost)
	specializations.Handle("/{id}", chain(h.Specialization.UpdateSpecialization, authn, doctor)).Methods(http.MethodPatch)
	specializations.Handle("/{id}", chain(h.Specialization.DeleteSpecialization, authn, doctor)).Methods(http.MethodDelete)

	// Doctor specializations
	doctorSpecs := api.PathPrefix("/doctorSpecializations").Subrouter()
	doctorSpecs.HandleFunc("", h.DoctorSpecialization.GetAll).Methods(http.MethodGet)
	doctorSpecs.Handle("/me", chain(h.DoctorSpecialization.GetMine, authn, doctor)).Methods(http.MethodGet)
	doctorSpecs.Handle("/me", chain(h.DoctorSpecialization.Create, authn, doctor)).Methods(http.MethodPost)
	doctorSpecs.HandleFunc("/{id}", h.DoctorSpecialization.GetByDoctor).Methods(http.MethodGet)
	doctorSpecs.Handle("/{id}", chain(h.DoctorSpecialization.Delete, authn, doctor)).Methods(http.MethodDelete)

	// Clinic affiliations
	affiliations := api.PathPrefix("/clinicAffiliations").Subrouter()
	affiliations.HandleFunc("", h.ClinicAffiliation.GetAllAffiliations).Methods(http.MethodGet)
	affiliations.Handle("", chain(h.ClinicAffiliation.CreateAffiliation, authn, doctor, demo)).Methods(http.MethodPost)
	affiliations.Handle("/userClinicAffiliations", chain(h.ClinicAffiliation.GetMyAffiliations, authn, doctor)).Methods(http.MethodGet)
	affiliations.HandleFunc("/doctorClinicAffiliations/{id}", h.ClinicAffiliation.GetDoctorAffiliations).Methods(http.MethodGet)
	affiliations.HandleFunc("/{id}", h.ClinicAffiliation.GetAffiliation).Methods(http.MethodGet)
	affiliations.Handle("/{id}", chain(h.ClinicAffiliation.UpdateAffiliation, authn, doctor, demo)).Methods(http.MethodPut)
	affiliations.Handle("/{id}", chain(h.ClinicAffiliation.DeleteAffiliation, authn, doctor, demo)).Methods(http.MethodDelete)

	// Clinics
	clinics := api.PathPrefix("/clinics").Subrouter()
	clinics.Handle("", chain(h.Clinic.GetAllClinics, authn)).Methods(http.MethodGet)
	clinics.Handle("", chain(h.Clinic.CreateClinic, authn, doctor, demo)).Methods(http.MethodPost)
	clinics.Handle("/uploadPhoto/{id}", chain(h.Clinic.UploadPhoto, authn, doctor, demo)).Methods(http.MethodPut)
	clinics.Handle("/uploadPhoto/{id}", chain(h.Clinic.RemovePhoto, authn, doctor, demo)).Methods(http.MethodDelete)
	clinics.Handle("/{id}", chain(h.Clinic.GetClinic, authn)).Methods(http.MethodGet)
	clinics.Handle("/{id}", chain(h.Clinic.UpdateClinic, authn, doctor, demo)).Methods(http.MethodPut)
	clinics.Handle("/{id}", chain(h.Clinic.DeleteClinic, authn, doctor, demo)).Methods(http.MethodDelete)

	// Appointments
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Handle("", chain(h.Appointment.CreateAppointment, authn, patient)).Methods(http.MethodPost)
	appointments.Handle("/myAppointments", chain(h.Appointment.GetMyAppointments, authn, anyRole)).Methods(http.MethodGet)
	appointments.Handle("/myAppointments/{id}", chain(h.Appointment.CancelAppointment, authn, anyRole)).Methods(http.MethodDelete)
	appointments.Handle("/{id}", chain(h.Appointment.GetDoctorAppointments, authn, patient)).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.responder.Error(w, req, apperror.NotFound(apperror.KeyRouteDoesNotExist))
	})

	// CORS wraps the router so preflight requests never reach route matching
	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
