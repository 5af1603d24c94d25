package middleware

import (
	"net/http"

	"patients-care-api/pkg/i18n"
)

// Locale resolves the request language from ?lng= or Accept-Language
func Locale(translator *i18n.Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := i18n.WithLocale(r.Context(), translator.FromRequest(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
