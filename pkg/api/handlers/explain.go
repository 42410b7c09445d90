package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/door-configurator/price-engine/pkg/engine"
	"github.com/door-configurator/price-engine/pkg/types"
)

// ExplainHandler exposes the relaxation ladder diagnostics
type ExplainHandler struct {
	service *engine.Service
}

// NewExplainHandler creates a new explain handler
func NewExplainHandler(service *engine.Service) *ExplainHandler {
	return &ExplainHandler{service: service}
}

// ExplainRequest is the request body for ladder diagnostics
type ExplainRequest struct {
	Selection types.Selection `json:"selection"`
}

// ExplainResponse reports per-step match counts
type ExplainResponse struct {
	Steps []engine.FilterStep `json:"steps"`
}

// Handle processes the explain request
func (h *ExplainHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ExplainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Failed to parse request body: %v", err))
		return
	}

	steps, err := h.service.ExplainSelection(r.Context(), req.Selection)
	if err != nil {
		WriteInternalError(w, fmt.Sprintf("Explain failed: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, ExplainResponse{Steps: steps})
}
