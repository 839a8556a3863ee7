package jobs

import (
	"context"
	"log/slog"
	"time"

	"littlelemon/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const (
	DefaultRelaySchedule  = "*/2 * * * * *"
	DefaultRelayBatchSize = 100
	relayRunTimeout       = 30 * time.Second
)

type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxEventsCommand) (int, error)
}

// OutboxRelayJob publishes stored order events on a schedule. A run that is
// still in progress when the next tick fires causes that tick to be skipped.
type OutboxRelayJob struct {
	handler   outboxRelayer
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob falls back to DefaultRelaySchedule and
// DefaultRelayBatchSize for empty values.
func NewOutboxRelayJob(handler outboxRelayer, schedule string, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultRelaySchedule
	}
	if batchSize < 1 {
		batchSize = DefaultRelayBatchSize
	}
	return &OutboxRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start registers the relay with the scheduler and starts it.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started",
		"schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

// Stop waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

func (j *OutboxRelayJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), relayRunTimeout)
	defer cancel()

	cmd, err := commands.NewRelayOutboxEventsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job misconfigured", "error", err)
		return
	}

	published, err := j.handler.Handle(ctx, cmd)
	if published > 0 {
		j.logger.DebugContext(ctx, "Outbox events published", "count", published)
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err, "published", published)
	}
}
