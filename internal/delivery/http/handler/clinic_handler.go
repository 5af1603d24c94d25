package handler

import (
	"net/http"

	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/usecase"
	"patients-care-api/pkg/paginate"
	"patients-care-api/pkg/response"
	"patients-care-api/pkg/validator"
)

type ClinicHandler struct {
	clinicUsecase usecase.ClinicUsecase
	validator     *validator.CustomValidator
	responder     *response.Responder
}

func NewClinicHandler(clinicUsecase usecase.ClinicUsecase, validator *validator.CustomValidator, responder *response.Responder) *ClinicHandler {
	return &ClinicHandler{
		clinicUsecase: clinicUsecase,
		validator:     validator,
		responder:     responder,
	}
}

// GetAllClinics lists clinics
// @Summary List clinics
// @Tags Clinics
// @Security BearerAuth
// @Produce json
// @Param search query string false "Name or address prefix"
// @Param sortBy query string false "clinicName or city"
// @Param sortDirection query string false "asc or desc"
// @Param pageSize query int false "Page size"
// @Param currentPage query int false "Page number"
// @Success 200 {object} response.ListResponse
// @Router /clinics [get]
func (h *ClinicHandler) GetAllClinics(w http.ResponseWriter, r *http.Request) {
	result, err := h.clinicUsecase.List(r.Context(), paginate.ParseQuery(r.URL.Query()))
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	response.Paginated(w, result.Data, result.TotalItems, result.NumOfPages)
}

func (h *ClinicHandler) GetClinic(w http.ResponseWriter, r *http.Request) {
	clinicID, err := pathID(r, "id")
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	clinic, err := h.clinicUsecase.Get(r.Context(), clinicID)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, clinic)
}

func (h *ClinicHandler) CreateClinic(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	var req dto.ClinicRequest
	if err := decodeJSON(r, h.validator, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if _, err := h.clinicUsecase.Create(r.Context(), identity, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusCreated, msgClinicCreated)
}

func (h *ClinicHandler) UpdateClinic(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	clinicID, err := pathID(r, "id")
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	var req dto.ClinicRequest
	if err := decodeJSON(r, h.validator, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := h.clinicUsecase.Update(r.Context(), identity, clinicID, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusOK, msgClinicUpdated)
}

func (h *ClinicHandler) DeleteClinic(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	clinicID, err := pathID(r, "id")
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := h.clinicUsecase.Delete(r.Context(), identity, clinicID); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusOK, msgClinicDeleted)
}

func (h *ClinicHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	clinicID, err := pathID(r, "id")
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	file, err := photoFile(w, r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	defer file.Close()

	if err := h.clinicUsecase.UploadPhoto(r.Context(), identity, clinicID, file); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusOK, msgPhotoUpdated)
}

func (h *ClinicHandler) RemovePhoto(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	clinicID, err := pathID(r, "id")
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := h.clinicUsecase.RemovePhoto(r.Context(), identity, clinicID); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusOK, msgPhotoRemoved)
}
