package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Middleware wraps an http.Handler. Middlewares compose through Chain.
type Middleware func(next http.Handler) http.Handler

// Chain wraps h so that the first middleware in mws is the outermost one,
// matching the order they are listed in NewRouter.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// matchedRoutePath returns the registered route pattern for the request,
// falling back to the raw path for unmatched requests. Middlewares key off
// the pattern so parameterized routes group together.
func matchedRoutePath(r *http.Request) string {
	if pattern := httprouter.ParamsFromContext(r.Context()).MatchedRoutePath(); pattern != "" {
		return pattern
	}
	return r.URL.Path
}
