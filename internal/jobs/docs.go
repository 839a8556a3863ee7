// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, with a seconds field).
//
// # Available Jobs
//
// OutboxRelayJob runs RelayOutboxEvents on OUTBOX_RELAY_SCHEDULE (every two
// seconds by default) and pushes stored order events to Kafka. It is only
// registered when a Kafka host is configured.
//
// # Usage
//
//	jobManager := jobs.NewJobManager()
//	jobManager.Register("outbox relay", jobs.NewOutboxRelayJob(relayHandler, schedule, batch, logger))
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Relay failures are logged and retried on the next tick; messages already
// published in a failed run are marked and not sent again. A failed start
// stops the jobs already running.
package jobs
