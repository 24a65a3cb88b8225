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

const maxCategoryBodyBytes = 16 * 1024

// CategoryHandler serves the category lifecycle endpoints
type CategoryHandler struct {
	commandBus   *bus.CommandBus
	queryBus     *querybus.QueryBus
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		commandBus:   commandBus,
		queryBus:     queryBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type renameCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type reorderCategoriesRequest struct {
	OrderedIDs []string `json:"ordered_ids" validate:"required,min=1,dive,uuid"`
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListCategoriesQuery{OwnerID: user.UserID})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// CreateCategory handles POST /categories. The id is assigned here so the
// response can carry it without a read-back.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
		return
	}

	var req createCategoryRequest
	if err := common.ParseJSONBody(r, &req, maxCategoryBodyBytes); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("invalid request body").WithCause(err))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	cmd := commands.CreateCategoryCommand{
		CategoryID: uuid.New().String(),
		OwnerID:    user.UserID,
		Name:       req.Name,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	view, err := h.queryBus.Ask(r.Context(), queries.GetCategoryQuery{OwnerID: user.UserID, CategoryID: cmd.CategoryID})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, view)
}

// RenameCategory handles PUT /categories/{categoryID}
func (h *CategoryHandler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
		return
	}

	var req renameCategoryRequest
	if err := common.ParseJSONBody(r, &req, maxCategoryBodyBytes); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("invalid request body").WithCause(err))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	cmd := commands.RenameCategoryCommand{
		CategoryID: chi.URLParam(r, "categoryID"),
		OwnerID:    user.UserID,
		Name:       req.Name,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	view, err := h.queryBus.Ask(r.Context(), queries.GetCategoryQuery{OwnerID: user.UserID, CategoryID: cmd.CategoryID})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, view)
}

// ReorderCategories handles PUT /categories/order. The body carries the
// desired final display order; positions are assigned from list position.
func (h *CategoryHandler) ReorderCategories(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
		return
	}

	var req reorderCategoriesRequest
	if err := common.ParseJSONBody(r, &req, maxCategoryBodyBytes); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("invalid request body").WithCause(err))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	cmd := commands.ReorderCategoriesCommand{
		OwnerID:    user.UserID,
		OrderedIDs: req.OrderedIDs,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListCategoriesQuery{OwnerID: user.UserID})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// DeleteCategory handles DELETE /categories/{categoryID}. The optional
// detach query parameter keeps dependent bookmarks and only unfiles them.
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
		return
	}

	cmd := commands.DeleteCategoryCommand{
		CategoryID: chi.URLParam(r, "categoryID"),
		OwnerID:    user.UserID,
		Detach:     r.URL.Query().Get("detach") == "true",
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
