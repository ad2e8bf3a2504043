package adapter

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-campus-assistant/models"
)

// Default page sizes of the email endpoints.
const (
	DefaultRecentEmails = 50
	DefaultSearchEmails = 10
)

// EmailStatus implements [ServerAdapter] via GET /api/email/status.
func (h *httpServerAdapter) EmailStatus(ctx context.Context) (models.EmailStatus, error) {
	data, err := h.Do(ctx, http.MethodGet, "/api/email/status", nil)
	if err != nil {
		return models.EmailStatus{}, err
	}
	return decodeData[models.EmailStatus](data)
}

// RecentEmails implements [ServerAdapter] via GET /api/email/recent?top=N.
func (h *httpServerAdapter) RecentEmails(ctx context.Context, top int) (models.EmailList, error) {
	if top <= 0 {
		top = DefaultRecentEmails
	}

	data, err := h.Do(ctx, http.MethodGet, "/api/email/recent", nil, WithQuery("top", strconv.Itoa(top)))
	if err != nil {
		return models.EmailList{}, err
	}
	return decodeData[models.EmailList](data)
}

// SearchEmails implements [ServerAdapter] via POST /api/email/search.
func (h *httpServerAdapter) SearchEmails(ctx context.Context, req models.EmailSearchRequest) (models.EmailList, error) {
	if req.Top <= 0 {
		req.Top = DefaultSearchEmails
	}

	data, err := h.Do(ctx, http.MethodPost, "/api/email/search", req)
	if err != nil {
		return models.EmailList{}, err
	}
	return decodeData[models.EmailList](data)
}
