package router

import (
	"net/http"
	"strings"

	"github.com/anshy0304/veggiefinder/internal/pkg/jwt"
)

// middlewareAuthentication rejects requests without a valid bearer token
// unless the matched route is listed in public. Verified claims ride the
// request context for handlers to read through jwt.GetAuth.
func middlewareAuthentication(verifier jwt.JWT, public map[string]map[string]struct{}) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if routes, ok := public[r.Method]; ok {
				if _, open := routes[matchedRoutePath(r)]; open {
					next.ServeHTTP(w, r)
					return
				}
			}

			parts := strings.Fields(r.Header.Get("Authorization"))
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeJSON(w, errorResponse{Message: "Authentication required"}, http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				writeJSON(w, errorResponse{Message: "Invalid or expired token"}, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.SetAuth(r.Context(), claims)))
		})
	}
}
