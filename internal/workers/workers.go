package workers

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in registration order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops, in reverse registration order, every worker that implements
// [Stopper].
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if s, ok := w.workers[i].(Stopper); ok {
			s.Stop()
		}
	}
}
