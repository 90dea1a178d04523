package jobs

import (
	"context"
	"log/slog"
	"time"

	"fastorder/internal/core/application/usecases/queries"
	"fastorder/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// staleThreshold is how long an order may sit in Pending before the monitor
// reports it.
const staleThreshold = 30 * time.Minute

// StaleOrdersJob periodically scans for orders stuck in Pending and logs
// them. It only reports; no transition or cleanup is performed.
type StaleOrdersJob struct {
	handler queries.GetAllOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrdersJob creates a monitor that runs every five minutes.
func NewStaleOrdersJob(handler queries.GetAllOrdersQueryHandler, logger *slog.Logger) *StaleOrdersJob {
	return &StaleOrdersJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_orders_job"),
	}
}

// Start schedules the monitor.
func (j *StaleOrdersJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()

		rows, err := j.handler.Handle(ctx, queries.NewGetAllOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order scan failed", "error", err)
			return
		}

		cutoff := time.Now().Add(-staleThreshold)
		for _, row := range rows {
			if row.Status == order.Pending.String() && row.CreatedAt.Before(cutoff) {
				j.logger.WarnContext(ctx, "Order stuck in Pending",
					"order_id", row.ID.String(),
					"created_at", row.CreatedAt,
					"total_amount", row.TotalAmount,
				)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order monitor started (running every five minutes)")
	return nil
}

// Stop stops the monitor.
func (j *StaleOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order monitor stopped")
}
