package handler

import (
	"net/http"

	"patients-care-api/internal/usecase"
	"patients-care-api/pkg/paginate"
	"patients-care-api/pkg/response"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	responder     *response.Responder
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, responder *response.Responder) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		responder:     responder,
	}
}

// GetAllDoctors lists doctors
// @Summary List doctors
// @Tags Doctors
// @Produce json
// @Param search query string false "Name or surname prefix"
// @Param querySpecializations query string false "Underscore-separated specialization ids"
// @Success 200 {object} response.ListResponse
// @Router /doctors [get]
func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	specializationIDs, err := usecase.ParseSpecializationIDs(r.URL.Query().Get("querySpecializations"))
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	result, err := h.doctorUsecase.List(r.Context(), paginate.ParseQuery(r.URL.Query()), specializationIDs)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	response.Paginated(w, result.Data, result.TotalItems, result.NumOfPages)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := pathID(r, "id")
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	doctor, err := h.doctorUsecase.Get(r.Context(), doctorID)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, doctor)
}
