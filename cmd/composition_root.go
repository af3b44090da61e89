package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"coffeeshop/internal/adapters/out/progress"
	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/domain/model/shop"
	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/jobs"
)

// CompositionRoot owns the single Shop of a run and builds everything that works on it.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	shop       *shop.Shop
	menu       *menu.Menu
	dispatcher *progress.Dispatcher
	barista    *services.Barista
}

// NewCompositionRoot wires the shop. Progress lines go to report; nil disables them.
func NewCompositionRoot(config Config, logger *slog.Logger, report io.Writer) (*CompositionRoot, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	coffeeShop, err := shop.NewShop(config.InitialStock)
	if err != nil {
		return nil, err
	}

	m, err := menu.Default()
	if err != nil {
		return nil, err
	}

	dispatcher := progress.NewDispatcher(logger)
	if err = dispatcher.Subscribe("log", progress.NewLogSubscriber(logger)); err != nil {
		return nil, err
	}
	if report != nil {
		if err = dispatcher.Subscribe("report", progress.NewReportSubscriber(report)); err != nil {
			return nil, err
		}
	}

	timer, err := services.NewRandomBrewTimer(config.BrewMin, config.BrewMax)
	if err != nil {
		return nil, err
	}

	barista, err := services.NewBarista(timer, dispatcher)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:     config,
		logger:     logger,
		shop:       coffeeShop,
		menu:       m,
		dispatcher: dispatcher,
		barista:    barista,
	}, nil
}

func (c *CompositionRoot) CreateSubmitBatchCommandHandler() (*commands.SubmitBatchCommandHandler, error) {
	return commands.NewSubmitBatchCommandHandler(c.barista, c.shop, c.dispatcher, c.config.Concurrency, c.logger)
}

func (c *CompositionRoot) CreateGetShopSnapshotQueryHandler() (queries.GetShopSnapshotQueryHandler, error) {
	return queries.NewGetShopSnapshotQueryHandler(c.shop)
}

// CreateRushJob builds the rush from the menu items of the configured kind.
func (c *CompositionRoot) CreateRushJob(onDone func(commands.BatchReport)) (*jobs.RushJob, error) {
	handler, err := c.CreateSubmitBatchCommandHandler()
	if err != nil {
		return nil, err
	}

	items := c.menu.Items()
	if c.config.RushKind != menu.UnknownKind {
		items = c.menu.OfKind(c.config.RushKind)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("menu has no %s items", c.config.RushKind)
	}

	return jobs.NewRushJob(handler, jobs.RushConfig{
		Schedule:  c.config.RushSchedule,
		BatchSize: c.config.BatchSize,
		Deadline:  c.config.Deadline,
		Items:     items,
	}, onDone, c.logger)
}

func (c *CompositionRoot) CreateJobManager(onDone func(commands.BatchReport)) (*jobs.JobManager, error) {
	rush, err := c.CreateRushJob(onDone)
	if err != nil {
		return nil, err
	}

	reader, err := c.CreateGetShopSnapshotQueryHandler()
	if err != nil {
		return nil, err
	}

	var stockReport *jobs.StockReportJob
	if c.config.ReportSchedule != "" {
		stockReport = jobs.NewStockReportJob(reader, c.config.ReportSchedule, c.logger)
	}

	return jobs.NewJobManager(rush, stockReport), nil
}

// Menu returns the menu the rush is built from.
func (c *CompositionRoot) Menu() *menu.Menu {
	return c.menu
}
