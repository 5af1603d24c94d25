package handler

import (
	"net/http"

	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/usecase"
	"patients-care-api/pkg/response"
	"patients-care-api/pkg/validator"
)

type SpecializationHandler struct {
	specializationUsecase usecase.SpecializationUsecase
	validator             *validator.CustomValidator
	responder             *response.Responder
}

func NewSpecializationHandler(specializationUsecase usecase.SpecializationUsecase, validator *validator.CustomValidator, responder *response.Responder) *SpecializationHandler {
	return &SpecializationHandler{
		specializationUsecase: specializationUsecase,
		validator:             validator,
		responder:             responder,
	}
}

func (h *SpecializationHandler) GetAllSpecializations(w http.ResponseWriter, r *http.Request) {
	list, err := h.specializationUsecase.List(r.Context())
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	response.List(w, list, len(list))
}

func (h *SpecializationHandler) GetSpecialization(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	specialization, err := h.specializationUsecase.Get(r.Context(), id)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, specialization)
}

func (h *SpecializationHandler) CreateSpecialization(w http.ResponseWriter, r *http.Request) {
	var req dto.SpecializationRequest
	if err := decodeJSON(r, h.validator, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if _, err := h.specializationUsecase.Create(r.Context(), &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusCreated, msgSpecializationCreated)
}

func (h *SpecializationHandler) UpdateSpecialization(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	var req dto.SpecializationRequest
	if err := decodeJSON(r, h.validator, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := h.specializationUsecase.Update(r.Context(), id, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusOK, msgSpecializationUpdated)
}

func (h *SpecializationHandler) DeleteSpecialization(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := h.specializationUsecase.Delete(r.Context(), id); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusOK, msgSpecializationDeleted)
}
