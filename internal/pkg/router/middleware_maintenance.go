package router

import (
	"net/http"
	"strings"

	"github.com/anshy0304/veggiefinder/internal/pkg/config"
)

// middlewareMaintenance returns 503 for route patterns listed under
// app.maintenance.endpoints, so individual routes can be taken down without
// a deploy.
func middlewareMaintenance(cfg config.Config) Middleware {
	blocked := make(map[string]struct{})
	if cfg != nil {
		for _, route := range cfg.GetArray("app.maintenance.endpoints") {
			if route = strings.TrimSpace(route); route != "" {
				blocked[route] = struct{}{}
			}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, down := blocked[matchedRoutePath(r)]; down {
				writeJSON(w, errorResponse{Message: "service is under maintenance"}, http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
