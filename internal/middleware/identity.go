package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
)

type ctxKey int

const originKey ctxKey = iota

// Identity resolves the caller's origin from headers. X-User-ID carries an
// authenticated user id, X-Anonymous-ID a device-scoped token; exactly one
// must be present. Anonymous callers are first-class for alerting, so this
// never rejects by itself beyond malformed or missing identity.
func Identity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var origin domain.Origin

			switch {
			case r.Header.Get("X-User-ID") != "":
				id, err := uuid.Parse(r.Header.Get("X-User-ID"))
				if err != nil {
					http.Error(w, "invalid X-User-ID", http.StatusUnauthorized)
					return
				}
				origin = domain.UserOrigin(id)
			case r.Header.Get("X-Anonymous-ID") != "":
				origin = domain.AnonymousOrigin(r.Header.Get("X-Anonymous-ID"))
			default:
				http.Error(w, "missing identity", http.StatusUnauthorized)
				return
			}

			if err := origin.Validate(); err != nil {
				http.Error(w, "invalid identity", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), originKey, origin)))
		})
	}
}

// OriginFrom returns the caller origin placed by Identity.
func OriginFrom(ctx context.Context) (domain.Origin, bool) {
	origin, ok := ctx.Value(originKey).(domain.Origin)
	return origin, ok
}
