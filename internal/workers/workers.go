package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-square/internal/config"
	"github.com/MKhiriev/go-square/internal/logger"
	"github.com/MKhiriev/go-square/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background jobs enabled in cfg. The result may hold
// no workers, in which case Run returns at once.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.PendingSweepInterval > 0 && services.ReconciliationService != nil {
		ws.workers = append(ws.workers, NewPendingSweeper(services.ReconciliationService, cfg.PendingSweepInterval, logger))
	}

	logger.Info().Int("count", len(ws.workers)).Msg("workers created")
	return ws
}

// Len reports how many workers are registered.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and waits until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
