// Copyright (c) 2026 ReadTrace. All rights reserved.

package series

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/readtrace/readtrace/internal/library/progress"
	requestutil "github.com/readtrace/readtrace/internal/platform/request"
	"github.com/readtrace/readtrace/internal/platform/respond"
	"github.com/readtrace/readtrace/internal/platform/validate"
	"github.com/readtrace/readtrace/pkg/pagination"
	"github.com/readtrace/readtrace/pkg/query"
	"github.com/readtrace/readtrace/pkg/slice"
)

// Handler implements the HTTP layer for the series library. All routes
// require authentication (enforced by the parent router).
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the library router. Progress endpoints are nested under
// each series so they share the {seriesID} parameter.
func (handler *Handler) Routes(progressHandler *progress.Handler) chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listSeries)
	router.Post("/", handler.createSeries)

	router.Route("/{seriesID}", func(item chi.Router) {
		item.Get("/", handler.getSeries)
		item.Patch("/", handler.updateSeries)
		item.Delete("/", handler.deleteSeries)
		progressHandler.RegisterRoutes(item)
	})

	return router
}

/*
listSeries returns the user's library, filtered and paginated.

GET /api/v1/series?q=&platforms=a,b&statuses=x,y&page=&limit=
*/
func (handler *Handler) listSeries(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := request.URL.Query()
	filters := Filters{
		Query:     params.Get("q"),
		Platforms: query.StringSlice(params.Get("platforms")),
		Statuses: slice.Map(query.StringSlice(params.Get("statuses")), func(s string) ReadingStatus {
			return ReadingStatus(s)
		}),
	}

	filtered, err := handler.service.List(request.Context(), userID, filters)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Paginate the filtered list in memory, mirroring the filter model.
	page := pagination.FromRequest(request)
	start := page.Offset()
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + page.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	respond.Paginated(writer, filtered[start:end], pagination.NewMeta(page.Page, page.Limit, len(filtered)))
}

type createRequest struct {
	Title         string        `json:"title"`
	Platform      string        `json:"platform"`
	Status        ReadingStatus `json:"status"`
	Genres        []string      `json:"genres"`
	TotalChapters float64       `json:"total_chapters"`
}

func (handler *Handler) createSeries(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("title", input.Title).MaxLen("title", input.Title, 500)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), userID, CreateInput{
		Title:         input.Title,
		Platform:      input.Platform,
		Status:        input.Status,
		Genres:        input.Genres,
		TotalChapters: input.TotalChapters,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

func (handler *Handler) getSeries(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.service.Get(request.Context(), userID, requestutil.ID(request, "seriesID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

type updateRequest struct {
	Title         *string        `json:"title"`
	Status        *ReadingStatus `json:"status"`
	Genres        []string       `json:"genres"`
	TotalChapters *float64       `json:"total_chapters"`
}

func (handler *Handler) updateSeries(writer http.ResponseWriter, request *http.Request) {
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

	updated, err := handler.service.Update(request.Context(), userID, requestutil.ID(request, "seriesID"), UpdateInput{
		Title:         input.Title,
		Status:        input.Status,
		Genres:        input.Genres,
		TotalChapters: input.TotalChapters,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

func (handler *Handler) deleteSeries(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), userID, requestutil.ID(request, "seriesID")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
