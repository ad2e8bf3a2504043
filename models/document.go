package models

import (
	"encoding/json"
	"fmt"
)

// DocumentStatus is the server-side processing stage of an uploaded file.
type DocumentStatus string

const (
	DocumentPending    DocumentStatus = "pending"
	DocumentProcessing DocumentStatus = "processing"
	DocumentCompleted  DocumentStatus = "completed"
	DocumentFailed     DocumentStatus = "failed"
)

// Terminal reports whether the status will not change any more.
func (s DocumentStatus) Terminal() bool {
	return s == DocumentCompleted || s == DocumentFailed
}

// Document is a file of the knowledge base. Its lifecycle is driven by the
// backend; the client only reflects fetched snapshots.
type Document struct {
	ID           ID             `json:"id"`
	Filename     string         `json:"filename"`
	FileType     string         `json:"file_type"`
	FileSize     int64          `json:"file_size"`
	Status       DocumentStatus `json:"status"`
	ChunkCount   int            `json:"chunk_count"`
	ErrorMessage string         `json:"error_message,omitempty"`
	CreatedAt    Timestamp      `json:"created_at"`
	UpdatedAt    Timestamp      `json:"updated_at"`
	ProcessedAt  *Timestamp     `json:"processed_at,omitempty"`
}

type documentAlias Document

// documentCompatDTO carries the older field names some backend versions
// still send (processed flag, chunks_count, uploaded_at).
type documentCompatDTO struct {
	Processed   *bool      `json:"processed"`
	ChunksCount *int       `json:"chunks_count"`
	UploadedAt  *Timestamp `json:"uploaded_at"`
}

// UnmarshalJSON implements [json.Unmarshaler].
func (d *Document) UnmarshalJSON(data []byte) error {
	var a documentAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}

	var compat documentCompatDTO
	if err := json.Unmarshal(data, &compat); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}

	if a.Status == "" {
		a.Status = DocumentPending
		if compat.Processed != nil && *compat.Processed {
			a.Status = DocumentCompleted
		}
	}
	if a.ChunkCount == 0 && compat.ChunksCount != nil {
		a.ChunkCount = *compat.ChunksCount
	}
	if a.CreatedAt.IsZero() && compat.UploadedAt != nil {
		a.CreatedAt = *compat.UploadedAt
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = a.CreatedAt
	}

	*d = Document(a)
	return nil
}

// DocumentList is the payload of GET /api/knowledge/documents.
type DocumentList struct {
	Documents []Document `json:"documents"`
	Total     int        `json:"total"`
}

// DocumentUpload describes a local file about to be uploaded.
type DocumentUpload struct {
	Filename string
	Size     int64
}

// SearchRequest is the body of POST /api/knowledge/search.
type SearchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

// SearchHit is a knowledge base chunk matching a search query.
type SearchHit struct {
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Distance float64        `json:"distance"`
}

// Title returns the best available label for the hit.
func (h SearchHit) Title() string {
	if h.Metadata != nil {
		if name, ok := h.Metadata["filename"].(string); ok && name != "" {
			return name
		}
	}
	return "unknown"
}

// SearchResults is the payload of POST /api/knowledge/search.
type SearchResults struct {
	Results []SearchHit `json:"results"`
	Count   int         `json:"count"`
}

// KnowledgeStats is the payload of GET /api/knowledge/stats.
type KnowledgeStats struct {
	DocumentsCount int `json:"documents_count"`
	VectorsCount   int `json:"vectors_count"`
}
