package jobs

import (
	"context"
	"log/slog"

	"orderapi/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderReportJob periodically logs a snapshot of the order store: how many
// orders exist and how they split across statuses. Runs every minute.
type OrderReportJob struct {
	handler queries.GetAllOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderReportJob creates a new job for periodic order reporting.
// Uses GetAllOrdersQueryHandler to read the store once per run.
func NewOrderReportJob(handler queries.GetAllOrdersQueryHandler, logger *slog.Logger) *OrderReportJob {
	return &OrderReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_report_job"),
	}
}

// Start begins the order report job to run every minute.
func (j *OrderReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetAllOrdersQuery()

		views, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order report job failed", "error", err)
			return
		}

		byStatus := make(map[string]int)
		for _, view := range views {
			byStatus[view.Status]++
		}

		j.logger.InfoContext(ctx, "Order store snapshot",
			"total", len(views),
			"by_status", byStatus,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order report job started (running every minute)")
	return nil
}

// Stop stops the order report job.
func (j *OrderReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order report job stopped")
}
