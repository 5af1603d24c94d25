package handler

import (
	"net/http"

	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/usecase"
	"patients-care-api/pkg/response"
	"patients-care-api/pkg/validator"
)

type ClinicAffiliationHandler struct {
	affiliationUsecase usecase.ClinicAffiliationUsecase
	validator          *validator.CustomValidator
	responder          *response.Responder
}

func NewClinicAffiliationHandler(affiliationUsecase usecase.ClinicAffiliationUsecase, validator *validator.CustomValidator, responder *response.Responder) *ClinicAffiliationHandler {
	return &ClinicAffiliationHandler{
		affiliationUsecase: affiliationUsecase,
		validator:          validator,
		responder:          responder,
	}
}

func (h *ClinicAffiliationHandler) GetAllAffiliations(w http.ResponseWriter, r *http.Request) {
	list, err := h.affiliationUsecase.List(r.Context())
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	response.List(w, list, len(list))
}

// GetMyAffiliations lists the calling doctor's affiliations with clinic info
func (h *ClinicAffiliationHandler) GetMyAffiliations(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	list, err := h.affiliationUsecase.ListMine(r.Context(), identity)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	response.List(w, list, len(list))
}

func (h *ClinicAffiliationHandler) GetDoctorAffiliations(w http.ResponseWriter, r *http.Request) {
	doctorID, err := pathID(r, "id")
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	list, err := h.affiliationUsecase.ListByDoctor(r.Context(), doctorID)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	response.List(w, list, len(list))
}

func (h *ClinicAffiliationHandler) GetAffiliation(w http.ResponseWriter, r *http.Request) {
	affiliationID, err := pathID(r, "id")
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	affiliation, err := h.affiliationUsecase.Get(r.Context(), affiliationID)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, affiliation)
}

func (h *ClinicAffiliationHandler) CreateAffiliation(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	var req dto.ClinicAffiliationRequest
	if err := decodeJSON(r, h.validator, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if _, err := h.affiliationUsecase.Create(r.Context(), identity, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusCreated, msgAffiliationCreated)
}

func (h *ClinicAffiliationHandler) UpdateAffiliation(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	affiliationID, err := pathID(r, "id")
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	var req dto.ClinicAffiliationRequest
	if err := decodeJSON(r, h.validator, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := h.affiliationUsecase.Update(r.Context(), identity, affiliationID, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusOK, msgAffiliationUpdated)
}

func (h *ClinicAffiliationHandler) DeleteAffiliation(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	affiliationID, err := pathID(r, "id")
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := h.affiliationUsecase.Delete(r.Context(), identity, affiliationID); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusOK, msgAffiliationDeleted)
}
