package handler

import (
	"net/http"

	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/usecase"
	"patients-care-api/pkg/response"
	"patients-care-api/pkg/validator"
)

type DoctorSpecializationHandler struct {
	doctorSpecializationUsecase usecase.DoctorSpecializationUsecase
	validator                   *validator.CustomValidator
	responder                   *response.Responder
}

func NewDoctorSpecializationHandler(doctorSpecializationUsecase usecase.DoctorSpecializationUsecase, validator *validator.CustomValidator, responder *response.Responder) *DoctorSpecializationHandler {
	return &DoctorSpecializationHandler{
		doctorSpecializationUsecase: doctorSpecializationUsecase,
		validator:                   validator,
		responder:                   responder,
	}
}

func (h *DoctorSpecializationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.doctorSpecializationUsecase.List(r.Context())
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	response.List(w, list, len(list))
}

func (h *DoctorSpecializationHandler) GetByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := pathID(r, "id")
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	list, err := h.doctorSpecializationUsecase.ListByDoctor(r.Context(), doctorID)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	response.List(w, list, len(list))
}

func (h *DoctorSpecializationHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	list, err := h.doctorSpecializationUsecase.ListByDoctor(r.Context(), identity.UserID)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	response.List(w, list, len(list))
}

func (h *DoctorSpecializationHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	var req dto.DoctorSpecializationRequest
	if err := decodeJSON(r, h.validator, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if _, err := h.doctorSpecializationUsecase.Create(r.Context(), identity, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusCreated, msgDoctorSpecCreated)
}

func (h *DoctorSpecializationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := h.doctorSpecializationUsecase.Delete(r.Context(), identity, id); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusOK, msgDoctorSpecDeleted)
}
