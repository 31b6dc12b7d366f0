package progress

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/readtrace/readtrace/internal/platform/request"
	"github.com/readtrace/readtrace/internal/platform/respond"
	"github.com/readtrace/readtrace/internal/platform/validate"
)

// Handler implements the HTTP layer for progress recording and resume
// resolution. All routes are mounted under a single series and require
// authentication (enforced by the parent router).
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the progress endpoints onto a series-scoped router.
// The parent router provides the {seriesID} URL parameter.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/progress", handler.getUnified)
	router.Put("/progress", handler.recordProgress)
	router.Get("/continue", handler.continueReading)
}

type recordRequest struct {
	Platform       string  `json:"platform"`
	CurrentChapter float64 `json:"current_chapter"`
	TotalChapters  float64 `json:"total_chapters"`
	ScrollPosition float64 `json:"scroll_position"`
	ResumeURL      string  `json:"resume_url"`
}

func (handler *Handler) recordProgress(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input recordRequest
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

	row, err := handler.service.Record(request.Context(), userID, requestutil.ID(request, "seriesID"), RecordInput{
		Platform:       input.Platform,
		CurrentChapter: input.CurrentChapter,
		TotalChapters:  input.TotalChapters,
		ScrollPosition: input.ScrollPosition,
		ResumeURL:      input.ResumeURL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, row)
}

func (handler *Handler) getUnified(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	unified, err := handler.service.Unified(request.Context(), userID, requestutil.ID(request, "seriesID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// nil marshals to JSON null: "no progress anywhere" is a valid answer.
	respond.OK(writer, unified)
}

func (handler *Handler) continueReading(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	override := request.URL.Query().Get("platform")

	link, err := handler.service.ContinueReading(request.Context(), userID, requestutil.ID(request, "seriesID"), override)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, link)
}
