package analyticssrv

import (
	"context"
	"fmt"
	"time"

	"github.com/Abraxas-365/careers/pkg/logx"
	"github.com/robfig/cron/v3"
)

// DefaultFlushSpec is used when no schedule is configured
const DefaultFlushSpec = "@every 15m"

const flushTimeout = 2 * time.Minute

// Flusher periodically moves live counters into Postgres
type Flusher struct {
	cron    *cron.Cron
	service *AnalyticsService
	spec    string
}

// NewFlusher creates a flusher running on the given cron spec
func NewFlusher(service *AnalyticsService, spec string) *Flusher {
	if spec == "" {
		spec = DefaultFlushSpec
	}
	return &Flusher{
		cron:    cron.New(),
		service: service,
		spec:    spec,
	}
}

// Start registers the flush job and starts the scheduler
func (f *Flusher) Start(ctx context.Context) error {
	if _, err := f.cron.AddFunc(f.spec, func() { f.run(ctx) }); err != nil {
		return fmt.Errorf("schedule analytics flush %q: %w", f.spec, err)
	}

	f.cron.Start()
	logx.Infof("Analytics flusher started (%s)", f.spec)
	return nil
}

// Stop waits for a running flush, then runs a final one
func (f *Flusher) Stop(ctx context.Context) {
	<-f.cron.Stop().Done()
	f.run(ctx)
	logx.Info("Analytics flusher stopped")
}

func (f *Flusher) run(parent context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), flushTimeout)
	defer cancel()

	n, err := f.service.Flush(ctx)
	if err != nil {
		logx.Errorf("Analytics flush failed after %d rows: %v", n, err)
		return
	}
	if n > 0 {
		logx.Debugf("Flushed analytics for %d company days", n)
	}
}
