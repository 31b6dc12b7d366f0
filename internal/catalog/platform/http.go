package platform

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/readtrace/readtrace/internal/platform/respond"
)

// Handler exposes the read-only platform registry to clients.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listPlatforms)
	return router
}

func (handler *Handler) listPlatforms(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, All())
}
