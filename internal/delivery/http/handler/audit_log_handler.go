package handler

import (
	"net/http"
	"strconv"

	"patients-care-api/internal/usecase"
	"patients-care-api/pkg/apperror"
	"patients-care-api/pkg/paginate"
	"patients-care-api/pkg/response"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
	responder       *response.Responder
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase, responder *response.Responder) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
		responder:       responder,
	}
}

// GetMyActivity godoc
// @Summary Activity trail of the current account
// @Tags auth
// @Produce json
// @Param search query string false "action prefix"
// @Param pageSize query int false "page size"
// @Param currentPage query int false "page"
// @Router /auth/me/activity [get]
func (h *AuditLogHandler) GetMyActivity(w http.ResponseWriter, r *http.Request) {
	actor, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	result, err := h.auditLogUsecase.ListMine(r.Context(), actor, paginate.ParseQuery(r.URL.Query()))
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	response.Paginated(w, result.Data, result.TotalItems, result.NumOfPages)
}

func (h *AuditLogHandler) GetMyActivityEntry(w http.ResponseWriter, r *http.Request) {
	actor, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.responder.Error(w, r, apperror.NotFound(apperror.KeyNoItemFoundWithID).WithDetail(raw))
		return
	}

	entry, err := h.auditLogUsecase.GetMine(r.Context(), actor, id)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, entry)
}
