package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/door-configurator/price-engine/pkg/engine"
	"github.com/door-configurator/price-engine/pkg/types"
)

// PriceHandler handles price computation requests
type PriceHandler struct {
	service *engine.Service
}

// NewPriceHandler creates a new price handler
func NewPriceHandler(service *engine.Service) *PriceHandler {
	return &PriceHandler{service: service}
}

// PriceRequest is the request body for price computation
type PriceRequest struct {
	Selection types.Selection `json:"selection"`
}

// PriceResponse wraps the priced result
type PriceResponse struct {
	Result *types.PriceResult `json:"result"`
}

// Handle processes the price request
func (h *PriceHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Failed to parse request body: %v", err))
		return
	}

	result, err := h.service.Price(r.Context(), req.Selection, "api")
	if err != nil {
		var notFound *types.VariantNotFoundError
		if errors.As(err, &notFound) {
			WriteVariantNotFound(w, notFound.Error(), map[string]interface{}{
				"selection": notFound.Selection,
			})
			return
		}
		WriteInternalError(w, fmt.Sprintf("Price computation failed: %v", err))
		return
	}

	log.WithFields(log.Fields{
		"quote_id": result.QuoteID,
		"total":    result.Total,
		"lines":    len(result.Breakdown),
	}).Info("Price request completed")

	WriteJSON(w, http.StatusOK, PriceResponse{Result: result})
}
