package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/door-configurator/price-engine/pkg/engine"
	"github.com/door-configurator/price-engine/pkg/types"
)

// DiffHandler prices two selections and reports the delta
type DiffHandler struct {
	service *engine.Service
}

// NewDiffHandler creates a new diff handler
func NewDiffHandler(service *engine.Service) *DiffHandler {
	return &DiffHandler{service: service}
}

// DiffRequest carries the two selections to compare
type DiffRequest struct {
	Before types.Selection `json:"before"`
	After  types.Selection `json:"after"`
}

// DiffResponse wraps the delta plus both priced results
type DiffResponse struct {
	Diff   *engine.DiffResult `json:"diff"`
	Before *types.PriceResult `json:"before"`
	After  *types.PriceResult `json:"after"`
}

// Handle processes the diff request
func (h *DiffHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DiffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Failed to parse request body: %v", err))
		return
	}

	before, err := h.service.Price(r.Context(), req.Before, "api")
	if err != nil {
		writeDiffError(w, "before", err)
		return
	}
	after, err := h.service.Price(r.Context(), req.After, "api")
	if err != nil {
		writeDiffError(w, "after", err)
		return
	}

	WriteJSON(w, http.StatusOK, DiffResponse{
		Diff:   engine.Diff(before, after),
		Before: before,
		After:  after,
	})
}

func writeDiffError(w http.ResponseWriter, side string, err error) {
	var notFound *types.VariantNotFoundError
	if errors.As(err, &notFound) {
		WriteVariantNotFound(w, notFound.Error(), map[string]interface{}{
			"side":      side,
			"selection": notFound.Selection,
		})
		return
	}
	WriteInternalError(w, fmt.Sprintf("Price computation failed for %s selection: %v", side, err))
}
