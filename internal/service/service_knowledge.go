package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/patrickmn/go-cache"

	"github.com/MKhiriev/go-campus-assistant/internal/adapter"
	"github.com/MKhiriev/go-campus-assistant/internal/state"
	"github.com/MKhiriev/go-campus-assistant/internal/validators"
	"github.com/MKhiriev/go-campus-assistant/models"
)

type knowledgeService struct {
	adapter   adapter.ServerAdapter
	store     *state.Store
	cache     *cache.Cache
	validator validators.Validator
}

// NewKnowledgeService creates a KnowledgeService. Cached statistics in
// readCache are dropped whenever the document set changes; readCache may be
// nil.
func NewKnowledgeService(serverAdapter adapter.ServerAdapter, store *state.Store, readCache *cache.Cache) KnowledgeService {
	return &knowledgeService{
		adapter:   serverAdapter,
		store:     store,
		cache:     readCache,
		validator: validators.NewInputValidator(),
	}
}

func (k *knowledgeService) Upload(ctx context.Context, path string) (models.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %v", ErrOpenDocument, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %v", ErrOpenDocument, err)
	}

	name := filepath.Base(path)
	if err = k.validator.Validate(ctx, models.DocumentUpload{Filename: name, Size: info.Size()}); err != nil {
		return models.Document{}, err
	}

	doc, err := k.adapter.UploadDocument(ctx, name, f)
	if err != nil {
		return models.Document{}, fmt.Errorf("upload %s: %w", name, err)
	}
	k.invalidate()

	return doc, k.Reload(ctx)
}

func (k *knowledgeService) Reload(ctx context.Context) error {
	list, err := k.adapter.Documents(ctx)
	if err != nil {
		return fmt.Errorf("load documents: %w", err)
	}
	k.store.SetDocuments(list.Documents)
	return nil
}

func (k *knowledgeService) Delete(ctx context.Context, id models.ID) error {
	if err := k.adapter.DeleteDocument(ctx, id); err != nil {
		return fmt.Errorf("delete document %s: %w", id, err)
	}
	k.invalidate()

	return k.Reload(ctx)
}

func (k *knowledgeService) Search(ctx context.Context, query string, topK int) (models.SearchResults, error) {
	req := models.SearchRequest{Query: strings.TrimSpace(query), TopK: topK}
	if err := k.validator.Validate(ctx, req); err != nil {
		return models.SearchResults{}, err
	}
	if req.TopK == 0 {
		req.TopK = adapter.DefaultSearchTopK
	}

	results, err := k.adapter.SearchDocuments(ctx, req)
	if err != nil {
		return models.SearchResults{}, fmt.Errorf("search documents: %w", err)
	}
	return results, nil
}

func (k *knowledgeService) Stats(ctx context.Context) (models.KnowledgeStats, error) {
	stats, err := k.adapter.KnowledgeStats(ctx)
	if err != nil {
		return models.KnowledgeStats{}, fmt.Errorf("load knowledge stats: %w", err)
	}
	if k.cache != nil {
		k.cache.SetDefault(cacheKeyStats, stats)
	}
	return stats, nil
}

func (k *knowledgeService) HasPending() bool {
	return slices.ContainsFunc(k.store.Snapshot().Documents, func(d models.Document) bool {
		return !d.Status.Terminal()
	})
}

func (k *knowledgeService) invalidate() {
	if k.cache != nil {
		k.cache.Delete(cacheKeyStats)
	}
}
