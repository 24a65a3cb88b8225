package handlers

import (
	"net/http"

	"linkvault/application/ports"
	"linkvault/pkg/auth"
	"linkvault/pkg/common"
	pkgerrors "linkvault/pkg/errors"

	"go.uber.org/zap"
)

// MeHandler serves the authenticated caller's own identity
type MeHandler struct {
	profiles     ports.ProfileRepository
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewMeHandler creates a new me handler
func NewMeHandler(profiles ports.ProfileRepository, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *MeHandler {
	return &MeHandler{
		profiles:     profiles,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

type meResponse struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email,omitempty"`
	Role    string `json:"role,omitempty"`
	IsAdmin bool   `json:"is_admin"`
}

// GetMe handles GET /me
func (h *MeHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError(""))
		return
	}

	isAdmin, err := h.profiles.IsAdmin(r.Context(), user.UserID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, meResponse{
		UserID:  user.UserID,
		Email:   user.Email,
		Role:    user.Role,
		IsAdmin: isAdmin,
	})
}
