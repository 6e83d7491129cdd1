// Package suggest exposes the AI suggestion route. It is a thin binding over
// the llm client: one field, one current text, one suggested replacement.
package suggest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/llm"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/telemetry"
)

// SuggestionRequest is the POST /ai/suggest body. Field and currentText must
// be present (empty strings pass); context is an optional steering
// instruction.
type SuggestionRequest struct {
	Field       *string `json:"field"`
	CurrentText *string `json:"currentText"`
	Context     string  `json:"context"`
}

// SuggestionResponse wraps the single suggested replacement string.
type SuggestionResponse struct {
	Suggestion string `json:"suggestion"`
}

// Handler wires the suggestion route to the llm client.
type Handler struct {
	LLM llm.Client
}

// NewHandler constructs a Handler.
func NewHandler(client llm.Client) *Handler {
	return &Handler{LLM: client}
}

// RegisterRoutes attaches the suggestion route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ai/suggest", h.suggest)
}

func (h *Handler) suggest(c *gin.Context) {
	var req SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body", "")
		return
	}
	if req.Field == nil {
		respond.Error(c, http.StatusBadRequest, "field is required", "field")
		return
	}
	if req.CurrentText == nil {
		respond.Error(c, http.StatusBadRequest, "currentText is required", "currentText")
		return
	}

	suggestion, err := h.LLM.Suggest(c.Request.Context(), llm.SuggestInput{
		Field:       *req.Field,
		CurrentText: *req.CurrentText,
		Context:     req.Context,
	})
	if err != nil {
		telemetry.Error("ai.suggest.failed", map[string]any{
			"field": *req.Field,
			"error": err.Error(),
		})
		if errors.Is(err, llm.ErrNotConfigured) {
			respond.Error(c, http.StatusInternalServerError, "OpenAI API Key not configured", "")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to generate suggestion", "")
		return
	}

	respond.OK(c, SuggestionResponse{Suggestion: suggestion})
}
