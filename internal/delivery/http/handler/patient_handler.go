package handler

import (
	"net/http"

	"patients-care-api/internal/usecase"
	"patients-care-api/pkg/paginate"
	"patients-care-api/pkg/response"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	responder      *response.Responder
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, responder *response.Responder) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		responder:      responder,
	}
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	result, err := h.patientUsecase.List(r.Context(), paginate.ParseQuery(r.URL.Query()))
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	response.Paginated(w, result.Data, result.TotalItems, result.NumOfPages)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathID(r, "id")
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	patient, err := h.patientUsecase.Get(r.Context(), patientID)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, patient)
}
