package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/MKhiriev/go-campus-assistant/models"
)

// DefaultSearchTopK is the number of hits requested when none is given.
const DefaultSearchTopK = 5

// UploadDocument implements [ServerAdapter] via a multipart
// POST /api/knowledge/upload with the content in the "file" part.
func (h *httpServerAdapter) UploadDocument(ctx context.Context, filename string, r io.Reader) (models.Document, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return models.Document{}, fmt.Errorf("read upload %q: %w", filename, err)
	}

	data, err := h.Do(ctx, http.MethodPost, "/api/knowledge/upload", nil,
		WithFile("file", filepath.Base(filename), content))
	if err != nil {
		return models.Document{}, err
	}
	return decodeData[models.Document](data)
}

// Documents implements [ServerAdapter] via GET /api/knowledge/documents.
func (h *httpServerAdapter) Documents(ctx context.Context) (models.DocumentList, error) {
	data, err := h.Do(ctx, http.MethodGet, "/api/knowledge/documents", nil)
	if err != nil {
		return models.DocumentList{}, err
	}

	list, err := decodeData[models.DocumentList](data)
	if err != nil {
		return models.DocumentList{}, err
	}
	if list.Documents == nil {
		list.Documents = []models.Document{}
	}
	return list, nil
}

// DeleteDocument implements [ServerAdapter] via
// DELETE /api/knowledge/documents/{id}.
func (h *httpServerAdapter) DeleteDocument(ctx context.Context, id models.ID) error {
	_, err := h.Do(ctx, http.MethodDelete, "/api/knowledge/documents/"+url.PathEscape(id.String()), nil)
	return err
}

// SearchDocuments implements [ServerAdapter] via POST /api/knowledge/search.
// A non-positive TopK is replaced by [DefaultSearchTopK].
func (h *httpServerAdapter) SearchDocuments(ctx context.Context, req models.SearchRequest) (models.SearchResults, error) {
	if req.TopK <= 0 {
		req.TopK = DefaultSearchTopK
	}

	data, err := h.Do(ctx, http.MethodPost, "/api/knowledge/search", req)
	if err != nil {
		return models.SearchResults{}, err
	}
	return decodeData[models.SearchResults](data)
}

// KnowledgeStats implements [ServerAdapter] via GET /api/knowledge/stats.
func (h *httpServerAdapter) KnowledgeStats(ctx context.Context) (models.KnowledgeStats, error) {
	data, err := h.Do(ctx, http.MethodGet, "/api/knowledge/stats", nil)
	if err != nil {
		return models.KnowledgeStats{}, err
	}
	return decodeData[models.KnowledgeStats](data)
}
