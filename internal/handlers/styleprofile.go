package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitfi/style-engine/internal/logger"
	"github.com/fitfi/style-engine/internal/services"
	"github.com/fitfi/style-engine/internal/types"
)

type StyleProfileHandler struct {
	log        *logger.Logger
	profileSvc services.StyleProfileService
}

func NewStyleProfileHandler(log *logger.Logger, profileSvc services.StyleProfileService) *StyleProfileHandler {
	return &StyleProfileHandler{
		log:        log.With("handler", "StyleProfileHandler"),
		profileSvc: profileSvc,
	}
}

type computeProfileRequest struct {
	Answers types.AnswerMap `json:"answers"`
}

// POST /api/style-profile
// Compute a full style profile from quiz answers.
func (h *StyleProfileHandler) ComputeStyleProfile(c *gin.Context) {
	var req computeProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Answers == nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("missing answers"))
		return
	}

	result, err := h.profileSvc.ComputeStyleProfile(c.Request.Context(), req.Answers)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "profile_failed", err)
		return
	}
	RespondOK(c, result)
}
