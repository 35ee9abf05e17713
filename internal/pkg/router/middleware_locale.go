package router

import (
	"net/http"

	"github.com/shandysiswandi/godo/internal/pkg/i18n"
)

// middlewareLocale resolves the request locale from Accept-Language
// and stores it in the context for message resolution downstream.
func middlewareLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc := i18n.FromAcceptLanguage(r.Header.Get("Accept-Language"))
		next.ServeHTTP(w, r.WithContext(i18n.WithLocale(r.Context(), loc)))
	})
}
