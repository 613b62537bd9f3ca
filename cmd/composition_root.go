package cmd

import (
	"log/slog"

	"orderdelivery/internal/adapters/in/http"
	"orderdelivery/internal/adapters/out/filestore"
	"orderdelivery/internal/adapters/out/postgres"
	"orderdelivery/internal/core/application/usecases/commands"
	"orderdelivery/internal/core/application/usecases/queries"
	"orderdelivery/internal/core/ports"
	"orderdelivery/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	imageStore ports.ProofImageStore
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	imageStore, err := filestore.NewDiskProofImageStore(config.ProofUploadDir)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		imageStore: imageStore,
	}, nil
}

func (c *CompositionRoot) CreateAssignDelivererCommandHandler() commands.AssignDelivererCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDelivererCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUploadDeliveryProofCommandHandler() commands.UploadDeliveryProofCommandHandler {
	var f commands.ProofUoWFactory = FuncProofUoWFactory(func() commands.ProofUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUploadDeliveryProofCommandHandler(f, c.imageStore)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveOrphanedProofImagesCommandHandler() commands.RemoveOrphanedProofImagesCommandHandler {
	var f commands.ProofUoWFactory = FuncProofUoWFactory(func() commands.ProofUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrphanedProofImagesCommandHandler(f, c.imageStore, c.config.ProofCleanupGracePeriod)
}

func (c *CompositionRoot) CreateGetDeliverersQueryHandler() queries.GetDeliverersQueryHandler {
	return queries.NewGetDeliverersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDelivererOrdersQueryHandler() queries.GetDelivererOrdersQueryHandler {
	return queries.NewGetDelivererOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStalePendingOrdersQueryHandler() queries.GetStalePendingOrdersQueryHandler {
	return queries.NewGetStalePendingOrdersQueryHandler(c.gormDB)
}

// CreateServer assembles the HTTP adapter over the command and query
// handlers.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateAssignDelivererCommandHandler(),
		c.CreateUpdateDeliveryStatusCommandHandler(),
		c.CreateUploadDeliveryProofCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetDeliverersQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetOrderByIDQueryHandler(),
		c.CreateGetUserOrdersQueryHandler(),
		c.CreateGetOrderDetailsQueryHandler(),
		c.CreateGetDelivererOrdersQueryHandler(),
		http.NewDelivererIdentity(c.config.JWTSecret, c.config.AllowBodyDelivererID),
		c.config.StrictOwnership,
	)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewProofCleanupJob(
			c.CreateRemoveOrphanedProofImagesCommandHandler(),
			c.config.ProofCleanupSchedule,
			logger,
		),
		jobs.NewStaleOrderReportJob(
			c.CreateGetStalePendingOrdersQueryHandler(),
			c.config.StaleOrderSchedule,
			c.config.StaleOrderMaxAge,
			logger,
		),
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProofUoWFactory func() commands.ProofUoW

func (f FuncProofUoWFactory) Create() commands.ProofUoW {
	return f()
}
