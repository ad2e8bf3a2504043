package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-campus-assistant/internal/service"
)

type documentPoller struct {
	ctx      context.Context
	job      service.DocumentPollJob
	interval time.Duration
}

// NewDocumentPoller wraps the document poll job as a worker. The job runs
// until ctx is cancelled or the worker is stopped.
func NewDocumentPoller(ctx context.Context, job service.DocumentPollJob, interval time.Duration) Worker {
	return &documentPoller{ctx: ctx, job: job, interval: interval}
}

func (p *documentPoller) Run() {
	p.job.Start(p.ctx, p.interval)
}

func (p *documentPoller) Stop() {
	p.job.Stop()
}
