package handlers

import (
	"net/http"

	"linkvault/application/commands"
	"linkvault/application/commands/bus"
	"linkvault/application/queries"
	querybus "linkvault/application/queries/bus"
	"linkvault/pkg/auth"
	"linkvault/pkg/common"
	pkgerrors "linkvault/pkg/errors"
	"linkvault/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxBookmarkBodyBytes = 64 * 1024

// BookmarkHandler serves the bookmark CRUD endpoints
type BookmarkHandler struct {
	commandBus   *bus.CommandBus
	queryBus     *querybus.QueryBus
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewBookmarkHandler creates a new bookmark handler
func NewBookmarkHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *BookmarkHandler {
	return &BookmarkHandler{
		commandBus:   commandBus,
		queryBus:     queryBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

type createBookmarkRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	URL         string `json:"url" validate:"required"`
	Description string `json:"description" validate:"max=2000"`
	Icon        string `json:"icon"`
	CategoryID  string `json:"category_id" validate:"omitempty,uuid"`
}

type updateBookmarkRequest struct {
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	CategoryID  *string `json:"category_id"`
}

// ListBookmarks handles GET /bookmarks with an optional category_id filter
func (h *BookmarkHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
		return
	}

	query := queries.ListBookmarksQuery{
		OwnerID:    user.UserID,
		CategoryID: r.URL.Query().Get("category_id"),
	}
	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// GetBookmark handles GET /bookmarks/{bookmarkID}
func (h *BookmarkHandler) GetBookmark(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
		return
	}

	query := queries.GetBookmarkQuery{
		OwnerID:    user.UserID,
		BookmarkID: chi.URLParam(r, "bookmarkID"),
	}
	view, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, view)
}

// CreateBookmark handles POST /bookmarks
func (h *BookmarkHandler) CreateBookmark(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
		return
	}

	var req createBookmarkRequest
	if err := common.ParseJSONBody(r, &req, maxBookmarkBodyBytes); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("invalid request body").WithCause(err))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	cmd := commands.CreateBookmarkCommand{
		BookmarkID:  uuid.New().String(),
		OwnerID:     user.UserID,
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Icon:        req.Icon,
		CategoryID:  req.CategoryID,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	view, err := h.queryBus.Ask(r.Context(), queries.GetBookmarkQuery{OwnerID: user.UserID, BookmarkID: cmd.BookmarkID})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, view)
}

// UpdateBookmark handles PUT /bookmarks/{bookmarkID}. Absent fields stay
// untouched; an explicit empty category_id detaches the bookmark.
func (h *BookmarkHandler) UpdateBookmark(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
		return
	}

	var req updateBookmarkRequest
	if err := common.ParseJSONBody(r, &req, maxBookmarkBodyBytes); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("invalid request body").WithCause(err))
		return
	}

	cmd := commands.UpdateBookmarkCommand{
		BookmarkID:  chi.URLParam(r, "bookmarkID"),
		OwnerID:     user.UserID,
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Icon:        req.Icon,
		CategoryID:  req.CategoryID,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	view, err := h.queryBus.Ask(r.Context(), queries.GetBookmarkQuery{OwnerID: user.UserID, BookmarkID: cmd.BookmarkID})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, view)
}

// DeleteBookmark handles DELETE /bookmarks/{bookmarkID}
func (h *BookmarkHandler) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
		return
	}

	cmd := commands.DeleteBookmarkCommand{
		BookmarkID: chi.URLParam(r, "bookmarkID"),
		OwnerID:    user.UserID,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
