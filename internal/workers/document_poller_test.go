package workers

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-campus-assistant/internal/mock"
)

func TestDocumentPoller_StartsAndStopsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockDocumentPollJob(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		job.EXPECT().Start(ctx, 10*time.Second),
		job.EXPECT().Stop(),
	)

	ws := NewWorkers(NewDocumentPoller(ctx, job, 10*time.Second))
	ws.Run()
	ws.Stop()
}
