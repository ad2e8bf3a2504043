package adapter

import (
	"context"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-campus-assistant/models"
)

// Ask implements [ServerAdapter] via POST /api/chat/ask.
func (h *httpServerAdapter) Ask(ctx context.Context, query models.ChatQuery) (models.ChatAnswer, error) {
	data, err := h.Do(ctx, http.MethodPost, "/api/chat/ask", query)
	if err != nil {
		return models.ChatAnswer{}, err
	}
	return decodeData[models.ChatAnswer](data)
}

// History implements [ServerAdapter] via GET /api/chat/history.
func (h *httpServerAdapter) History(ctx context.Context) (models.History, error) {
	data, err := h.Do(ctx, http.MethodGet, "/api/chat/history", nil)
	if err != nil {
		return models.History{}, err
	}
	return decodeData[models.History](data)
}

// DeleteHistory implements [ServerAdapter] via DELETE /api/chat/history/{id}.
func (h *httpServerAdapter) DeleteHistory(ctx context.Context, id models.ID) error {
	_, err := h.Do(ctx, http.MethodDelete, "/api/chat/history/"+url.PathEscape(id.String()), nil)
	return err
}
