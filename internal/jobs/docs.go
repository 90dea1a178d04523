// Package jobs contains scheduled background work. The only job today is the
// stale-order monitor, which reports orders stuck in Pending for operator
// visibility. Jobs run on robfig/cron schedules and log through slog.
package jobs
