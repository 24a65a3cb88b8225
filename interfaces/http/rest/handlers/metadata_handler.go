package handlers

import (
	"net/http"

	"linkvault/application/ports"
	"linkvault/pkg/common"
	pkgerrors "linkvault/pkg/errors"
	"linkvault/pkg/utils"

	"go.uber.org/zap"
)

// MetadataHandler serves the page metadata scrape used to pre-fill the
// bookmark form
type MetadataHandler struct {
	fetcher      ports.MetadataFetcher
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewMetadataHandler creates a new metadata handler
func NewMetadataHandler(fetcher ports.MetadataFetcher, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *MetadataHandler {
	return &MetadataHandler{
		fetcher:      fetcher,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

type fetchMetadataRequest struct {
	URL string `json:"url" validate:"required"`
}

// FetchMetadata handles POST /metadata. The scrape is soft-fail: an
// unreachable page still yields 200 with whatever was recovered, because a
// failed pre-fill must never block saving the bookmark.
func (h *MetadataHandler) FetchMetadata(w http.ResponseWriter, r *http.Request) {
	var req fetchMetadataRequest
	if err := common.ParseJSONBody(r, &req, 4*1024); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("invalid request body").WithCause(err))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	meta, err := h.fetcher.Fetch(r.Context(), req.URL)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, meta)
}
