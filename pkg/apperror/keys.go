package apperror

// Localization keys shared by the error catalog
const (
	KeyBadObjectStructure      = "errors.BAD_OBJECT_STRUCTURE"
	KeyInvalidAuthentication   = "errors.INVALID_AUTHENTICATION"
	KeyInvalidAuthorization    = "errors.INVALID_AUTHORIZATION"
	KeyInvalidCredentials      = "errors.INVALID_CREDENTIALS"
	KeyRefreshTokenExpired     = "errors.REFRESH_TOKEN_EXP"
	KeyEmailExist              = "errors.EMAIL_EXIST"
	KeyPasswordsMustMatch      = "errors.PASSWORDS_MUST_MATCH"
	KeyNoFileUploaded          = "errors.NO_FILE_UPLOADED"
	KeyNotAnImage              = "errors.NOT_AN_IMAGE"
	KeyImageTooLarge           = "errors.IMAGE_TOO_LARGE"
	KeyNoPhoto                 = "errors.NO_PHOTO"
	KeyDemoAccount             = "errors.DEMO_ACCOUNT_ERROR"
	KeyNoActionAllowed         = "errors.NO_ACTION_ALLOWED"
	KeyDoctorNotFound          = "errors.DOCTOR_NOT_FOUND"
	KeyPatientNotFound         = "errors.PATIENT_NOT_FOUND"
	KeyUserNotFound            = "errors.USER_NOT_FOUND"
	KeyAuditLogNotFound        = "errors.AUDIT_LOG_NOT_FOUND"
	KeyClinicNotFound          = "errors.CLINIC_NOT_FOUND"
	KeyAffiliationNotFound     = "errors.CLINIC_AFFILIATION_NOT_FOUND"
	KeyAffiliationExists       = "errors.CLINIC_AFFILIATION_ALREADY_EXISTS"
	KeySpecializationNotFound  = "errors.SPECIALIZATION_NOT_FOUND"
	KeySpecializationsNotFound = "errors.SPECIALIZATIONS_NOT_FOUND"
	KeySpecializationExist     = "errors.SPECIALIZATION_EXIST"
	KeyDoctorSpecExist         = "errors.DOCTOR_SPECIALIZATION_EXIST"
	KeyAppointmentNotFound     = "errors.NO_APPOINTMENT_FOUND"
	KeyNoAppointmentPossible   = "errors.NO_APPOINTMENT_POSSIBLE"
	KeyAppointmentCanceled     = "errors.APPOINTMENT_ALREADY_CANCELED"
	KeyAppointmentCompleted    = "errors.APPOINTMENT_ALREADY_COMPLETED"
	KeyInvalidDate             = "errors.INVALID_DATE"
	KeyDuplicateValue          = "errors.DUPLICATE_VALUE"
	KeyNoItemFoundWithID       = "errors.NO_ITEM_FOUND_WITH_ID"
	KeyRouteDoesNotExist       = "errors.ROUTE_DOES_NOT_EXIST"
	KeySomethingWentWrong      = "errors.SOMETHING_WENT_WRONG"
)
