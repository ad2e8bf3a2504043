package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-campus-assistant/internal/config"
	"github.com/MKhiriev/go-campus-assistant/internal/logger"
)

type documentPollJob struct {
	knowledge KnowledgeService
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDocumentPollJob creates a job that reloads the document list on a
// ticker while knowledge reports pending documents. The job is idle until
// Start is called.
func NewDocumentPollJob(knowledge KnowledgeService, log *logger.Logger) DocumentPollJob {
	if log == nil {
		log = logger.Nop()
	}
	return &documentPollJob{knowledge: knowledge, logger: log.WithComponent("document_poll")}
}

// Start implements DocumentPollJob. A non-positive interval falls back to
// config.DefaultDocumentPollInterval.
func (j *documentPollJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultDocumentPollInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.poll(jobCtx)
			}
		}
	}()
}

func (j *documentPollJob) poll(ctx context.Context) {
	if !j.knowledge.HasPending() {
		return
	}
	if err := j.knowledge.Reload(ctx); err != nil && ctx.Err() == nil {
		j.logger.Warn().Err(err).Msg("document poll failed")
	}
}

// Stop implements DocumentPollJob. Safe to call when the job is not running.
func (j *documentPollJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
