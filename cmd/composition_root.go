package cmd

import (
	"log/slog"
	"time"

	"tanker/internal/adapters/in/http"
	"tanker/internal/adapters/out/notifier"
	"tanker/internal/adapters/out/postgres"
	"tanker/internal/core/application/usecases/commands"
	"tanker/internal/core/application/usecases/queries"
	"tanker/internal/core/domain/services"
	"tanker/internal/core/ports"
	"tanker/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	priceList  *services.PriceList
	notifier   ports.ChangeNotifier
	clock      commands.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		priceList:  services.NewPriceList(),
		notifier:   notifier.NewLogChangeNotifier(logger),
		clock:      time.Now,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderBidUoWFactory = FuncOrderBidUoWFactory(func() commands.OrderBidUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.priceList, c.notifier, c.clock)
}

func (c *CompositionRoot) CreatePlaceBidCommandHandler() commands.PlaceBidCommandHandler {
	var f commands.OrderBidUoWFactory = FuncOrderBidUoWFactory(func() commands.OrderBidUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceBidCommandHandler(f, c.notifier, c.clock)
}

func (c *CompositionRoot) CreateAcceptBidCommandHandler() commands.AcceptBidCommandHandler {
	var f commands.OrderBidUoWFactory = FuncOrderBidUoWFactory(func() commands.OrderBidUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptBidCommandHandler(f, c.notifier, c.clock)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.notifier, c.clock)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f, c.notifier, c.clock)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectOrderCommandHandler(f, c.notifier, c.clock)
}

func (c *CompositionRoot) CreateStartRideCommandHandler() commands.StartRideCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartRideCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateMarkReachedCommandHandler() commands.MarkReachedCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkReachedCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateFinishOrderCommandHandler() commands.FinishOrderCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinishOrderCommandHandler(f, c.notifier, c.clock)
}

func (c *CompositionRoot) CreateSubmitRatingCommandHandler() commands.SubmitRatingCommandHandler {
	var f commands.RatingUoWFactory = FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitRatingCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.notifier, c.clock)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSupplierOrdersQueryHandler() queries.GetSupplierOrdersQueryHandler {
	return queries.NewGetSupplierOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverOfferStatusesQueryHandler() queries.GetDriverOfferStatusesQueryHandler {
	return queries.NewGetDriverOfferStatusesQueryHandler(c.gormDB, queries.Clock(c.clock))
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreatePlaceBidCommandHandler(),
		c.CreateAcceptBidCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreateConfirmOrderCommandHandler(),
		c.CreateRejectOrderCommandHandler(),
		c.CreateStartRideCommandHandler(),
		c.CreateMarkReachedCommandHandler(),
		c.CreateFinishOrderCommandHandler(),
		c.CreateSubmitRatingCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetOpenOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetSupplierOrdersQueryHandler(),
		c.CreateGetDriverOfferStatusesQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return jobs.NewJobManager(f, c.clock, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderBidUoWFactory func() commands.OrderBidUoW

func (f FuncOrderBidUoWFactory) Create() commands.OrderBidUoW {
	return f()
}

type FuncOfferUoWFactory func() commands.OfferUoW

func (f FuncOfferUoWFactory) Create() commands.OfferUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
