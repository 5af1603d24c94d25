package response

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"patients-care-api/pkg/apperror"
	"patients-care-api/pkg/i18n"
	"patients-care-api/pkg/validator"

	playground "github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

// duplicate key details look like `Key (email)=(a@b.c) already exists.`
var duplicateColumns = regexp.MustCompile(`^Key \(([^)]+)\)=`)

// Responder writes localized message envelopes. It is the single place where
// errors are turned into status codes.
type Responder struct {
	log        *logrus.Logger
	translator *i18n.Translator
	validator  *validator.CustomValidator
}

func NewResponder(log *logrus.Logger, translator *i18n.Translator, validator *validator.CustomValidator) *Responder {
	return &Responder{
		log:        log,
		translator: translator,
		validator:  validator,
	}
}

// Message writes {message} with key translated into the request locale
func (rs *Responder) Message(w http.ResponseWriter, r *http.Request, statusCode int, key string) {
	Message(w, statusCode, rs.Translate(r, key))
}

// Translate resolves key in the request locale
func (rs *Responder) Translate(r *http.Request, key string) string {
	locale := i18n.LocaleFrom(r.Context())
	if locale == "" {
		locale = rs.translator.FromRequest(r)
	}
	return rs.translator.Translate(locale, key)
}

// Error maps err to a status code and a localized message
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	if appErr, ok := apperror.As(err); ok {
		msg := rs.Translate(r, appErr.Key)
		if appErr.Detail != "" {
			msg += " " + appErr.Detail
		}
		Message(w, appErr.StatusCode(), msg)
		return
	}

	var validationErrs playground.ValidationErrors
	if errors.As(err, &validationErrs) {
		Message(w, http.StatusBadRequest, rs.validator.FormatValidationErrors(validationErrs))
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		msg := rs.Translate(r, apperror.KeyDuplicateValue)
		if m := duplicateColumns.FindStringSubmatch(pgErr.Detail); m != nil {
			msg += " " + strings.ReplaceAll(m[1], " ", "")
		}
		Message(w, http.StatusBadRequest, msg)
		return
	}

	rs.log.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}).Errorf("Unhandled error: %+v", err)
	Message(w, http.StatusInternalServerError, rs.Translate(r, apperror.KeySomethingWentWrong))
}
