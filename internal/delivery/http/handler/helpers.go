package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"patients-care-api/internal/delivery/http/middleware"
	"patients-care-api/internal/domain/entity"
	"patients-care-api/internal/infrastructure/storage"
	"patients-care-api/pkg/apperror"
	"patients-care-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Localized success messages
const (
	msgUserCreated            = "success.USER_CREATED"
	msgUserLogin              = "success.USER_LOGIN"
	msgUserLogout             = "success.USER_LOGOUT"
	msgUserUpdated            = "success.USER_UPDATED"
	msgUserDeleted            = "success.USER_DELETED"
	msgPhotoUpdated           = "success.PHOTO_UPDATED"
	msgPhotoRemoved           = "success.PHOTO_REMOVED"
	msgClinicCreated          = "success.CLINIC_CREATED"
	msgClinicUpdated          = "success.CLINIC_UPDATED"
	msgClinicDeleted          = "success.CLINIC_DELETED"
	msgSpecializationCreated  = "success.SPECIALIZATION_CREATED"
	msgSpecializationUpdated  = "success.SPECIALIZATION_UPDATED"
	msgSpecializationDeleted  = "success.SPECIALIZATION_DELETED"
	msgDoctorSpecCreated      = "success.DOCTOR_SPECIALIZATION_CREATED"
	msgDoctorSpecDeleted      = "success.DOCTOR_SPECIALIZATION_DELETED"
	msgAffiliationCreated     = "success.DOCTOR_CLINIC_AFFILIATION_CREATED"
	msgAffiliationUpdated     = "success.DOCTOR_CLINIC_AFFILIATION_UPDATED"
	msgAffiliationDeleted     = "success.DOCTOR_CLINIC_AFFILIATION_DELETED"
	msgAppointmentCreated     = "success.APPOINTMENT_CREATED"
	msgAppointmentCanceled    = "success.APPOINTMENT_CANCELED"
	photoFormField            = "file"
	maxMultipartRequestLength = 4 * storage.MaxPhotoSize
)

var (
	errBadObjectStructure    = apperror.BadRequest(apperror.KeyBadObjectStructure)
	errInvalidAuthentication = apperror.Unauthenticated(apperror.KeyInvalidAuthentication)
	errNoFileUploaded        = apperror.BadRequest(apperror.KeyNoFileUploaded)
	errImageTooLarge         = apperror.BadRequest(apperror.KeyImageTooLarge)
)

// decodeJSON reads the request body into dst and validates it
func decodeJSON(r *http.Request, v *validator.CustomValidator, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errBadObjectStructure
	}
	return v.Validate(dst)
}

// pathID parses a uuid path variable; malformed ids are reported as not found
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	raw := mux.Vars(r)[name]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.NotFound(apperror.KeyNoItemFoundWithID).WithDetail(raw)
	}
	return id, nil
}

func identityFrom(r *http.Request) (entity.Identity, error) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		return entity.Identity{}, errInvalidAuthentication
	}
	return identity, nil
}

// photoFile opens the multipart "file" field; the caller closes it
func photoFile(w http.ResponseWriter, r *http.Request) (multipart.File, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxMultipartRequestLength)
	if err := r.ParseMultipartForm(storage.MaxPhotoSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errImageTooLarge
		}
		return nil, errNoFileUploaded
	}

	file, _, err := r.FormFile(photoFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, io.EOF) {
			return nil, errNoFileUploaded
		}
		return nil, err
	}
	return file, nil
}
