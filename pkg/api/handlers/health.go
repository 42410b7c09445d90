package handlers

import (
	"net/http"

	"github.com/door-configurator/price-engine/pkg/engine"
)

// HealthHandler reports service and catalog store health
type HealthHandler struct {
	service *engine.Service
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service *engine.Service) *HealthHandler {
	return &HealthHandler{service: service}
}

// Handle processes health check requests
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Ping(r.Context()); err != nil {
		WriteJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "door-price-engine",
	})
}
