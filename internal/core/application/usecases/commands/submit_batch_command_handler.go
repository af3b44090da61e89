package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/domain/model/shop"
	"coffeeshop/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// ErrWorkerPanicked marks a Failed result produced by a recovered panic.
var ErrWorkerPanicked = errors.New("worker panicked")

// BatchReport is the answer to one SubmitBatchCommand.
type BatchReport struct {
	BatchID  kernel.UUID
	Results  []order.Result
	Summary  order.Summary
	Snapshot shop.Snapshot
	Elapsed  time.Duration
}

// SubmitBatchCommandHandler is the order processor. It validates every line, starts one
// worker per valid request and waits for all of them. With a deadline, workers still
// brewing when it expires are cancelled; workers already at the register finish.
//
// Example:
//
//	handler, _ := NewSubmitBatchCommandHandler(barista, coffeeShop, dispatcher, 0, logger)
//	report, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Summary)
type SubmitBatchCommandHandler struct {
	barista     Preparer
	register    *shop.Shop
	publisher   ports.ProgressPublisher
	concurrency int
	logger      *slog.Logger
}

// NewSubmitBatchCommandHandler creates the handler. concurrency bounds the number of
// workers running at once; zero starts every worker immediately. barista must be
// non-nil, including typed nil pointers; a nil publisher disables outcome events.
func NewSubmitBatchCommandHandler(
	barista Preparer,
	register *shop.Shop,
	publisher ports.ProgressPublisher,
	concurrency int,
	logger *slog.Logger,
) (*SubmitBatchCommandHandler, error) {
	if isNil(barista) {
		return nil, errors.New("barista is required")
	}
	if err := register.Validate(); err != nil {
		return nil, err
	}
	if concurrency < 0 {
		return nil, fmt.Errorf("concurrency must not be negative: %d", concurrency)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if isNil(publisher) {
		publisher = nil
	}

	return &SubmitBatchCommandHandler{
		barista:     barista,
		register:    register,
		publisher:   publisher,
		concurrency: concurrency,
		logger:      logger.With("component", "SubmitBatchCommandHandler"),
	}, nil
}

// Handle processes the batch. The only error it returns is for an unconstructed command;
// every per-request problem is reported in the results.
func (h *SubmitBatchCommandHandler) Handle(ctx context.Context, cmd SubmitBatchCommand) (BatchReport, error) {
	if err := cmd.Validate(); err != nil {
		return BatchReport{}, err
	}

	started := time.Now()
	batchID := kernel.NewUUID()
	logger := h.logger.With("batch_id", batchID.String())
	lines := cmd.Lines()

	workCtx := ctx
	if deadline, ok := cmd.Deadline(); ok {
		var cancel context.CancelFunc
		workCtx, cancel = context.WithTimeout(ctx, deadline)
		defer cancel()
	}

	logger.InfoContext(ctx, "batch started", "size", len(lines))

	results := make([]order.Result, len(lines))
	tickets := make(map[int]*order.Ticket, len(lines))
	for i, line := range lines {
		ticket, err := h.open(line)
		if err != nil {
			logger.WarnContext(ctx, "request rejected", "position", i, "request_id", line.ID, "error", err)
			results[i] = order.NewInvalidResult(i, line.ID, line.Product, err)
			h.publish(ctx, results[i])
			continue
		}
		tickets[i] = ticket
	}

	g := new(errgroup.Group)
	if h.concurrency > 0 {
		g.SetLimit(h.concurrency)
	}
	for i := range lines {
		ticket, ok := tickets[i]
		if !ok {
			continue
		}
		g.Go(func() error {
			results[i] = h.work(workCtx, logger, i, ticket)
			return nil
		})
	}
	_ = g.Wait()

	report := BatchReport{
		BatchID:  batchID,
		Results:  results,
		Summary:  order.Summarize(results),
		Snapshot: h.register.Snapshot(),
		Elapsed:  time.Since(started),
	}

	logger.InfoContext(ctx, "batch finished",
		"served", report.Summary.Served,
		"out_of_stock", report.Summary.OutOfStock,
		"cancelled", report.Summary.Cancelled,
		"invalid", report.Summary.InvalidRequest,
		"failed", report.Summary.Failed,
		"revenue", report.Snapshot.TotalRevenue.String(),
		"stock_remaining", report.Snapshot.StockRemaining,
		"elapsed", report.Elapsed,
	)

	return report, nil
}

func (h *SubmitBatchCommandHandler) open(line OrderLine) (*order.Ticket, error) {
	request, err := line.Request()
	if err != nil {
		return nil, err
	}
	return order.NewTicket(request)
}

func (h *SubmitBatchCommandHandler) work(
	ctx context.Context,
	logger *slog.Logger,
	position int,
	ticket *order.Ticket,
) (result order.Result) {
	defer func() {
		if r := recover(); r != nil {
			result = h.fail(ctx, logger, position, ticket, fmt.Errorf("%w: %v", ErrWorkerPanicked, r))
		}
	}()

	outcome, err := h.barista.Prepare(ctx, ticket, h.register)
	if err != nil {
		return h.fail(ctx, logger, position, ticket, err)
	}

	logger.DebugContext(ctx, "worker finished", "position", position,
		"request_id", ticket.Request().ID(), "outcome", outcome.String())
	return order.NewTicketResult(position, ticket)
}

// fail turns an abnormal worker termination into a result. Once the register has
// settled the ticket its decision stands, since stock and revenue already reflect it.
func (h *SubmitBatchCommandHandler) fail(
	ctx context.Context,
	logger *slog.Logger,
	position int,
	ticket *order.Ticket,
	err error,
) order.Result {
	logger = logger.With("position", position, "request_id", ticket.Request().ID(), "error", err)

	if ticket.Stage() == order.StageSettled {
		logger.ErrorContext(ctx, "worker failed after settlement", "outcome", ticket.Outcome().String())
		return order.NewTicketResult(position, ticket)
	}

	logger.ErrorContext(ctx, "worker failed")
	result := order.NewFailedResult(position, ticket.Request(), err)
	h.publish(ctx, result)
	return result
}

// publish reports outcomes that never went through a barista.
func (h *SubmitBatchCommandHandler) publish(ctx context.Context, r order.Result) {
	if h.publisher == nil {
		return
	}
	h.publisher.Publish(context.WithoutCancel(ctx), order.ProgressEvent{
		RequestID: r.RequestID,
		Product:   r.Product,
		Price:     r.Price,
		Stage:     order.StageUnknown,
		Outcome:   r.Outcome,
		At:        time.Now(),
	})
}

// isNil also catches typed nil pointers stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
