package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router assembles the service routes behind the request-ID, logging and
// recovery middleware.
func (a *API) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger(a.log))
	r.Use(Recoverer(a.log))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	r.Get("/healthz", a.handleHealth)
	r.Route("/v1", func(v1 chi.Router) {
		v1.Get("/schemes", a.handleSchemes)
		v1.Get("/identifiers/{scheme}", a.handleIdentifiers)
	})

	return r
}
