package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/menu"

	"github.com/robfig/cron/v3"
)

// BatchSubmitter processes one batch. commands.SubmitBatchCommandHandler implements it.
type BatchSubmitter interface {
	Handle(ctx context.Context, cmd commands.SubmitBatchCommand) (commands.BatchReport, error)
}

// RushConfig describes the batches a RushJob submits.
type RushConfig struct {
	Schedule  string
	BatchSize int
	Deadline  *time.Duration
	Items     []menu.Item
}

// RushJob periodically submits a generated batch of orders ("a morning rush").
type RushJob struct {
	handler BatchSubmitter
	config  RushConfig
	cron    *cron.Cron
	rushes  atomic.Int64
	onDone  func(commands.BatchReport)
	logger  *slog.Logger
}

// NewRushJob creates the job. onDone, if set, receives every finished report.
func NewRushJob(
	handler BatchSubmitter,
	config RushConfig,
	onDone func(commands.BatchReport),
	logger *slog.Logger,
) (*RushJob, error) {
	if handler == nil {
		return nil, errors.New("batch submitter is required")
	}
	if config.BatchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive: %d", config.BatchSize)
	}
	if len(config.Items) == 0 {
		return nil, errors.New("rush needs at least one menu item")
	}
	if logger == nil {
		logger = slog.Default()
	}
	config.Items = slices.Clone(config.Items)

	return &RushJob{
		handler: handler,
		config:  config,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		onDone:  onDone,
		logger:  logger.With("component", "rush_job"),
	}, nil
}

// Lines builds a batch by walking the menu round-robin. Each line gets a fresh
// identifier and a "<item> #<n>" label.
func (j *RushJob) Lines() []commands.OrderLine {
	lines := make([]commands.OrderLine, j.config.BatchSize)
	for i := range lines {
		item := j.config.Items[i%len(j.config.Items)]
		lines[i] = commands.OrderLine{
			ID:      kernel.NewUUID().String(),
			Product: fmt.Sprintf("%s #%d", item.Name(), i+1),
			Price:   item.Price().Amount(),
		}
	}
	return lines
}

// RunOnce submits one rush synchronously.
func (j *RushJob) RunOnce(ctx context.Context) (commands.BatchReport, error) {
	rush := j.rushes.Add(1)

	cmd, err := commands.NewSubmitBatchCommand(j.Lines(), j.config.Deadline)
	if err != nil {
		return commands.BatchReport{}, err
	}

	report, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Rush failed", "rush", rush, "error", err)
		return commands.BatchReport{}, err
	}

	j.logger.InfoContext(ctx, "Rush finished",
		"rush", rush,
		"batch_id", report.BatchID.String(),
		"summary", report.Summary.String(),
		"stock_remaining", report.Snapshot.StockRemaining,
	)
	if j.onDone != nil {
		j.onDone(report)
	}
	return report, nil
}

// Start schedules the rush.
func (j *RushJob) Start() error {
	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		_, _ = j.RunOnce(context.Background())
	})
	if err != nil {
		return fmt.Errorf("rush schedule %q: %w", j.config.Schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rush job started", "schedule", j.config.Schedule)
	return nil
}

// Stop unschedules the rush and waits for a running one to finish.
func (j *RushJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Rush job stopped")
}
