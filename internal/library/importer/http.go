// Copyright (c) 2026 ReadTrace. All rights reserved.

package importer

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/readtrace/readtrace/internal/platform/apperr"
	"github.com/readtrace/readtrace/internal/platform/constants"
	requestutil "github.com/readtrace/readtrace/internal/platform/request"
	"github.com/readtrace/readtrace/internal/platform/respond"
	"github.com/readtrace/readtrace/internal/platform/validate"
)

// Library is the persistence collaborator the confirm step hands selected
// entries to. Implemented by the series service.
type Library interface {
	// ConfirmImport persists the given entries as library series and
	// reports per-row outcomes. Rows rejected by the storage unique
	// constraint count as skipped, not as failures.
	ConfirmImport(context context.Context, userID string, entries []Entry) (*ConfirmResult, error)
}

// ConfirmResult summarizes a confirm step's per-row outcomes.
type ConfirmResult struct {
	CreatedItems int `json:"created_items"`
	// SkippedItems counts rows the library already tracked.
	SkippedItems int `json:"skipped_items"`
	FailedItems  int `json:"failed_items"`
}

// Handler implements the HTTP layer for the import pipeline. All routes
// require authentication (enforced by the parent router).
type Handler struct {
	library Library
}

func NewHandler(library Library) *Handler {
	return &Handler{library: library}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/browser-history", handler.importBrowserHistory)
	router.Post("/upload", handler.importUpload)
	router.Post("/confirm", handler.confirmImport)
	return router
}

// # Response Envelopes

// jobResponse is the wire shape of a built import job. ImportID is a
// pointer so "nothing importable found" can answer with an explicit null.
type jobResponse struct {
	ImportID     *string `json:"import_id"`
	Source       Source  `json:"source"`
	TotalItems   int     `json:"total_items"`
	ValidItems   int     `json:"valid_items"`
	ErrorItems   int     `json:"error_items"`
	SkippedItems int     `json:"skipped_items"`
	Entries      []Entry `json:"entries"`
	Message      string  `json:"message,omitempty"`
}

func toJobResponse(job *Job) jobResponse {
	return jobResponse{
		ImportID:     &job.ImportID,
		Source:       job.Source,
		TotalItems:   job.TotalItems,
		ValidItems:   job.ValidItems,
		ErrorItems:   job.ErrorItems,
		SkippedItems: job.SkippedItems,
		Entries:      job.Entries,
	}
}

// # Browser History

type browserHistoryRequest struct {
	HistoryItems []HistoryItem `json:"historyItems"`
}

/*
importBrowserHistory builds an import job from exported browser history.

POST /api/v1/import/browser-history

Response:
  - 200: jobResponse; ImportID is null when no supported URLs were found
  - 400: historyItems missing or not an array
*/
func (handler *Handler) importBrowserHistory(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input browserHistoryRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}
	if input.HistoryItems == nil {
		respond.Error(writer, request, apperr.ValidationError("historyItems is required and must be an array"))
		return
	}

	rawEntries := ExtractFromHistory(input.HistoryItems)
	if len(rawEntries) == 0 {
		respond.OK(writer, jobResponse{
			Source:  SourceBrowserHistory,
			Entries: []Entry{},
			Message: "0 supported URLs found in the provided history",
		})
		return
	}

	job := BuildJob(userID, SourceBrowserHistory, rawEntries)
	respond.OK(writer, toJobResponse(job))
}

// # CSV Upload

/*
importUpload builds an import job from an uploaded CSV file.

POST /api/v1/import/upload (multipart, field "file")

Response:
  - 200: jobResponse
  - 400: wrong file type or zero parsed rows
  - 413: file larger than 5 MB
*/
func (handler *Handler) importUpload(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// MaxBytesReader makes oversized uploads fail during form parsing
	// instead of buffering the whole body first.
	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxImportUploadBytes)
	if err := request.ParseMultipartForm(constants.MaxImportUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(writer, request, &apperr.AppError{
				Code:       "PAYLOAD_TOO_LARGE",
				Message:    "File exceeds the 5 MB import limit",
				HTTPStatus: http.StatusRequestEntityTooLarge,
			})
			return
		}
		respond.Error(writer, request, apperr.ValidationError("Invalid multipart upload"))
		return
	}

	file, header, err := request.FormFile(constants.ImportUploadField)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Missing file field"))
		return
	}
	defer file.Close()

	if !isCSVUpload(header) {
		respond.Error(writer, request, apperr.ValidationError("Only .csv files are supported"))
		return
	}

	csvText, err := io.ReadAll(file)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	rawEntries, err := ParseCSV(string(csvText))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("CSV file contains no importable rows"))
		return
	}

	job := BuildJob(userID, SourceCSV, rawEntries)
	respond.OK(writer, toJobResponse(job))
}

// isCSVUpload accepts a .csv extension or a text/csv content type.
func isCSVUpload(header *multipart.FileHeader) bool {
	if strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		return true
	}
	contentType := header.Header.Get("Content-Type")
	return strings.HasPrefix(strings.ToLower(contentType), "text/csv")
}

// # Confirmation

type confirmRequest struct {
	Entries []Entry `json:"entries"`
}

/*
confirmImport persists the entries the user kept after review.

POST /api/v1/import/confirm

Response:
  - 200: ConfirmResult with created/skipped/failed counts
  - 400: empty or missing entries
*/
func (handler *Handler) confirmImport(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input confirmRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}
	if len(input.Entries) == 0 {
		respond.Error(writer, request, apperr.ValidationError("No entries to confirm"))
		return
	}

	result, err := handler.library.ConfirmImport(request.Context(), userID, input.Entries)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}
