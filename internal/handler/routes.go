package handler

import (
	"github.com/go-chi/chi/v5"

	"github.com/pkordes/hotel-reservations/backend/internal/handler/gen"
)

var _ gen.StrictServerInterface = (*Server)(nil)

// NewRouter mounts every endpoint of s on a chi router. Cross-cutting
// middleware (request id, logging, CORS, body limits) is applied by the
// caller so tests can exercise handlers without it.
func NewRouter(s *Server) chi.Router {
	r := chi.NewRouter()
	r.Get("/openapi.yaml", s.GetOpenAPI)

	strict := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.paramError,
	})
	return r
}
