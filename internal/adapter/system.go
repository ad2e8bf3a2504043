package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-campus-assistant/models"
)

// Health implements [ServerAdapter] via GET /api/health.
func (h *httpServerAdapter) Health(ctx context.Context) (models.Health, error) {
	data, err := h.Do(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return models.Health{}, err
	}
	return decodeData[models.Health](data)
}

// ServiceInfo implements [ServerAdapter] via GET /.
func (h *httpServerAdapter) ServiceInfo(ctx context.Context) (models.ServiceInfo, error) {
	data, err := h.Do(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return models.ServiceInfo{}, err
	}
	return decodeData[models.ServiceInfo](data)
}
