package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fitfi/style-engine/internal/engine"
	"github.com/fitfi/style-engine/internal/logger"
	"github.com/fitfi/style-engine/internal/services"
	"github.com/fitfi/style-engine/internal/types"
)

type OutfitHandler struct {
	log      *logger.Logger
	scorer   *engine.Scorer
	remixSvc services.RemixService
}

func NewOutfitHandler(log *logger.Logger, scorer *engine.Scorer, remixSvc services.RemixService) *OutfitHandler {
	return &OutfitHandler{
		log:      log.With("handler", "OutfitHandler"),
		scorer:   scorer,
		remixSvc: remixSvc,
	}
}

type scoreRequest struct {
	Products []types.Product `json:"products"`
}

// POST /api/outfits/score
// Score a complete outfit.
func (h *OutfitHandler) ScoreOutfit(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	score, err := h.scorer.Score(req.Products)
	if err != nil {
		if errors.Is(err, engine.ErrIncompleteOutfit) {
			RespondError(c, http.StatusUnprocessableEntity, "incomplete_outfit", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "score_failed", err)
		return
	}
	RespondOK(c, score)
}

type swapRequest struct {
	Outfit     types.Outfit  `json:"outfit"`
	Category   string        `json:"category"`
	NewProduct types.Product `json:"new_product"`
	UserID     *uuid.UUID    `json:"user_id,omitempty"`
	SessionID  *uuid.UUID    `json:"session_id,omitempty"`
}

// POST /api/outfits/swap
// Swap one slot in an outfit and rescore.
func (h *OutfitHandler) SwapItem(c *gin.Context) {
	var req swapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	remixed, err := h.remixSvc.SwapItem(c.Request.Context(), nil, req.Outfit, req.Category, req.NewProduct, req.UserID, req.SessionID)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			RespondError(c, http.StatusNotFound, "category_not_found", err)
			return
		}
		if errors.Is(err, engine.ErrIncompleteOutfit) {
			RespondError(c, http.StatusUnprocessableEntity, "incomplete_outfit", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "swap_failed", err)
		return
	}
	RespondOK(c, remixed)
}

type suggestionsRequest struct {
	Outfit         types.Outfit `json:"outfit"`
	MaxSuggestions int          `json:"max_suggestions"`
}

// POST /api/outfits/suggestions
// Propose the best swaps for an outfit.
func (h *OutfitHandler) GetSuggestedSwaps(c *gin.Context) {
	var req suggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	suggestions, err := h.remixSvc.GetSuggestedSwaps(c.Request.Context(), nil, req.Outfit, req.MaxSuggestions)
	if err != nil {
		if errors.Is(err, engine.ErrIncompleteOutfit) {
			RespondError(c, http.StatusUnprocessableEntity, "incomplete_outfit", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "suggestions_failed", err)
		return
	}
	RespondOK(c, gin.H{"suggestions": suggestions})
}

type optimizeRequest struct {
	Outfit   types.Outfit `json:"outfit"`
	MaxSwaps int          `json:"max_swaps"`
}

// POST /api/outfits/optimize
// Greedily apply the best swaps until improvement flattens out.
func (h *OutfitHandler) OptimizeOutfit(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	remixed, err := h.remixSvc.OptimizeOutfit(c.Request.Context(), nil, req.Outfit, req.MaxSwaps)
	if err != nil {
		if errors.Is(err, engine.ErrIncompleteOutfit) {
			RespondError(c, http.StatusUnprocessableEntity, "incomplete_outfit", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "optimize_failed", err)
		return
	}
	RespondOK(c, remixed)
}

// GET /api/swap-patterns?user_id=...&session_id=...
// Summarize a user's swap history.
func (h *OutfitHandler) GetSwapPatterns(c *gin.Context) {
	var userID, sessionID *uuid.UUID
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		userID = &id
	}
	if raw := c.Query("session_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		sessionID = &id
	}

	patterns, err := h.remixSvc.AnalyzeSwapPatterns(c.Request.Context(), nil, userID, sessionID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "patterns_failed", err)
		return
	}
	RespondOK(c, patterns)
}
