package service

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/MKhiriev/go-campus-assistant/internal/adapter"
	"github.com/MKhiriev/go-campus-assistant/internal/config"
	"github.com/MKhiriev/go-campus-assistant/internal/logger"
	"github.com/MKhiriev/go-campus-assistant/internal/state"
	"github.com/MKhiriev/go-campus-assistant/internal/utils"
)

// IDGenerator produces identifiers for client-side messages.
type IDGenerator interface {
	Generate() string
}

type ClientServices struct {
	AuthService      AuthService
	ChatService      ChatService
	KnowledgeService KnowledgeService
	EmailService     EmailService
	SystemService    SystemService
	DocumentPollJob  DocumentPollJob
}

func NewClientServices(cfg *config.ClientConfig, serverAdapter adapter.ServerAdapter, store *state.Store, log *logger.Logger) *ClientServices {
	ttl := cfg.Cache.TTL
	if ttl <= 0 {
		ttl = config.DefaultCacheTTL
	}
	readCache := cache.New(ttl, 2*ttl)

	knowledgeSvc := NewKnowledgeService(serverAdapter, store, readCache)

	return &ClientServices{
		AuthService:      NewAuthService(serverAdapter, store, cfg.Callback.RedirectURL(), log),
		ChatService:      NewChatService(serverAdapter, store, utils.NewMessageIDs(), time.Now),
		KnowledgeService: knowledgeSvc,
		EmailService:     NewEmailService(serverAdapter),
		SystemService:    NewSystemService(serverAdapter, readCache),
		DocumentPollJob:  NewDocumentPollJob(knowledgeSvc, log),
	}
}
