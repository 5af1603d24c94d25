package handler

import (
	"net/http"

	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/usecase"
	"patients-care-api/pkg/paginate"
	"patients-care-api/pkg/response"
	"patients-care-api/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
	responder          *response.Responder
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator, responder *response.Responder) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
		responder:          responder,
	}
}

// CreateAppointment books a slot for the calling patient
// @Summary Create appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Appointment"
// @Success 201 {object} response.MessageResponse
// @Failure 400 {object} response.MessageResponse
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	var req dto.CreateAppointmentRequest
	if err := decodeJSON(r, h.validator, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if _, err := h.appointmentUsecase.Create(r.Context(), identity, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusCreated, msgAppointmentCreated)
}

// GetMyAppointments lists the caller's appointments
// @Summary List own appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param search query string false "Prefix search"
// @Param appointmentFilter query string false "Status or all"
// @Param sortBy query string false "appointmentDate or clinicName"
// @Param sortDirection query string false "asc or desc"
// @Param pageSize query int false "Page size"
// @Param currentPage query int false "Page number"
// @Success 200 {object} response.ListResponse
// @Router /appointments/myAppointments [get]
func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	result, err := h.appointmentUsecase.ListMine(r.Context(), identity, paginate.ParseQuery(r.URL.Query()))
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	response.Paginated(w, result.Data, result.TotalItems, result.NumOfPages)
}

// GetDoctorAppointments lists a doctor's booked slots
func (h *AppointmentHandler) GetDoctorAppointments(w http.ResponseWriter, r *http.Request) {
	doctorID, err := pathID(r, "id")
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	list, err := h.appointmentUsecase.ListByDoctor(r.Context(), doctorID)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	response.List(w, list, len(list))
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	appointmentID, err := pathID(r, "id")
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := h.appointmentUsecase.Cancel(r.Context(), identity, appointmentID); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusOK, msgAppointmentCanceled)
}
