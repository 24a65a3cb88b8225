package handlers

import (
	"net/http"

	"linkvault/application/queries"
	querybus "linkvault/application/queries/bus"
	"linkvault/application/services"
	"linkvault/pkg/auth"
	"linkvault/pkg/common"
	pkgerrors "linkvault/pkg/errors"
	"linkvault/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DirectoryHandler serves the public bookmark directory: open reads plus
// admin-gated curation. The admin gate is the RequireAdmin middleware; the
// handler only assumes an authenticated caller on the write paths.
type DirectoryHandler struct {
	directory    *services.DirectoryService
	queryBus     *querybus.QueryBus
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directory *services.DirectoryService, queryBus *querybus.QueryBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		directory:    directory,
		queryBus:     queryBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

type publishEntryRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	URL         string `json:"url" validate:"required"`
	Description string `json:"description" validate:"max=2000"`
	Icon        string `json:"icon"`
	Category    string `json:"category" validate:"max=100"`
}

type updateEntryRequest struct {
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Category    *string `json:"category"`
}

// ListDirectory handles GET /public/bookmarks, no authentication required
func (h *DirectoryHandler) ListDirectory(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.ListDirectoryQuery{})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// PublishEntry handles POST /admin/directory
func (h *DirectoryHandler) PublishEntry(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
		return
	}

	var req publishEntryRequest
	if err := common.ParseJSONBody(r, &req, maxBookmarkBodyBytes); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("invalid request body").WithCause(err))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	view, err := h.directory.Publish(r.Context(), services.PublishEntryRequest{
		PublisherID:  user.UserID,
		Title:        req.Title,
		URL:          req.URL,
		Description:  req.Description,
		Icon:         req.Icon,
		CategoryName: req.Category,
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, view)
}

// UpdateEntry handles PUT /admin/directory/{entryID}
func (h *DirectoryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	var req updateEntryRequest
	if err := common.ParseJSONBody(r, &req, maxBookmarkBodyBytes); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("invalid request body").WithCause(err))
		return
	}

	view, err := h.directory.Update(r.Context(), services.UpdateEntryRequest{
		EntryID:      chi.URLParam(r, "entryID"),
		Title:        req.Title,
		URL:          req.URL,
		Description:  req.Description,
		Icon:         req.Icon,
		CategoryName: req.Category,
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, view)
}

// RemoveEntry handles DELETE /admin/directory/{entryID}
func (h *DirectoryHandler) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.directory.Remove(r.Context(), chi.URLParam(r, "entryID")); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
