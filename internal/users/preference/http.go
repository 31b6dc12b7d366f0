package preference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/readtrace/readtrace/internal/platform/request"
	"github.com/readtrace/readtrace/internal/platform/respond"
	"github.com/readtrace/readtrace/internal/platform/validate"
)

// Handler implements the HTTP layer for platform preferences. All routes
// require authentication (enforced by the parent router).
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.getPreferences)
	router.Put("/", handler.updatePreferences)
	router.Put("/last-selected", handler.recordSelection)
	return router
}

func (handler *Handler) getPreferences(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	prefs, err := handler.service.Get(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, prefs)
}

type updateRequest struct {
	PreferredPlatforms []string `json:"preferred_platforms"`
}

func (handler *Handler) updatePreferences(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}
	if input.PreferredPlatforms == nil {
		input.PreferredPlatforms = []string{}
	}

	prefs, err := handler.service.Update(request.Context(), userID, input.PreferredPlatforms)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, prefs)
}

type selectionRequest struct {
	Platform string `json:"platform"`
}

func (handler *Handler) recordSelection(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input selectionRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("platform", input.Platform)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	prefs, err := handler.service.RecordSelection(request.Context(), userID, input.Platform)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, prefs)
}
