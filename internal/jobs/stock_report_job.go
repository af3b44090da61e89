package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"coffeeshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// SnapshotReader reads the shop state. queries.GetShopSnapshotQueryHandler implements it.
type SnapshotReader interface {
	Handle(ctx context.Context, query queries.GetShopSnapshotQuery) (queries.GetShopSnapshotQueryResponse, error)
}

// StockReportJob logs the register state on a schedule.
type StockReportJob struct {
	reader   SnapshotReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewStockReportJob(reader SnapshotReader, schedule string, logger *slog.Logger) *StockReportJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &StockReportJob{
		reader:   reader,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stock_report_job"),
	}
}

// Report logs one snapshot.
func (j *StockReportJob) Report(ctx context.Context) error {
	snapshot, err := j.reader.Handle(ctx, queries.NewGetShopSnapshotQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Stock report failed", "error", err)
		return err
	}

	level := slog.LevelInfo
	if snapshot.StockRemaining == 0 {
		level = slog.LevelWarn
	}
	j.logger.Log(ctx, level, "Stock report",
		"stock_remaining", snapshot.StockRemaining,
		"initial_stock", snapshot.InitialStock,
		"sold", snapshot.Sold,
		"revenue", snapshot.TotalRevenue,
	)
	return nil
}

func (j *StockReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.Report(context.Background())
	})
	if err != nil {
		return fmt.Errorf("stock report schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stock report job started", "schedule", j.schedule)
	return nil
}

func (j *StockReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stock report job stopped")
}
