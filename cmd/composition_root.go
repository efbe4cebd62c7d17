package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"coldstore/internal/adapters/out/memory"
	"coldstore/internal/adapters/out/postgres"
	"coldstore/internal/adapters/out/postgres/seqrepo"
	"coldstore/internal/adapters/out/postgres/staterepo"
	"coldstore/internal/core/application/usecases/commands"
	"coldstore/internal/core/application/usecases/queries"
	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/core/domain/services"
	"coldstore/internal/core/ports"
)

// CompositionRoot wires adapters into use cases. Handlers are created per
// call; the shared pieces (connection, policy, alert board) live here.
type CompositionRoot struct {
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory

	policy    role.Policy
	board     *memory.AlertBoard
	users     *memory.UserDirectory
	allocator services.PositionAllocator
	placer    services.OrderPlacer
	executor  services.OrderExecutor
	deriver   services.AlertDeriver
	sequences ports.SequenceGenerator

	config Config
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	allocator := services.NewPositionAllocator()

	return CompositionRoot{
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		policy:     role.NewPolicy(config.SupervisorEnabled, config.AllowCancel),
		board:      memory.NewAlertBoard(),
		users:      memory.NewUserDirectory(seedAccounts(config.SupervisorEnabled)),
		allocator:  allocator,
		placer:     services.NewOrderPlacer(allocator, config.SupervisorEnabled),
		executor:   services.NewOrderExecutor(),
		deriver:    services.NewAlertDeriver(),
		sequences:  seqrepo.NewGormSequenceRepository(gormDB),
		config:     config,
	}
}

// seedAccounts is the fixed staff roster. The supervisor account only
// exists in the four-role setup.
func seedAccounts(supervisorEnabled bool) []memory.Account {
	accounts := []memory.Account{
		{Username: "custodian", Password: "custodian", Role: role.Custodian},
		{Username: "admin", Password: "admin", Role: role.Admin},
		{Username: "operator", Password: "operator", Role: role.Operator},
	}
	if supervisorEnabled {
		accounts = append(accounts, memory.Account{
			Username: "supervisor", Password: "supervisor", Role: role.Supervisor,
		})
	}
	return accounts
}

func (c *CompositionRoot) UserDirectory() ports.UserDirectory {
	return c.users
}

func (c *CompositionRoot) AlertBoard() ports.AlertBoard {
	return c.board
}

func (c *CompositionRoot) CreateRegisterInboundBoxCommandHandler() commands.RegisterInboundBoxCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterInboundBoxCommandHandler(f, c.policy, c.allocator, c.sequences)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.policy, c.placer)
}

func (c *CompositionRoot) CreateExecuteOrderCommandHandler() commands.ExecuteOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewExecuteOrderCommandHandler(f, c.policy, c.executor)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateDispatchBoxCommandHandler() commands.DispatchBoxCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchBoxCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateReportFailureCommandHandler() commands.ReportFailureCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportFailureCommandHandler(f, c.policy, c.board)
}

func (c *CompositionRoot) CreateAnnotateAlertCommandHandler() commands.AnnotateAlertCommandHandler {
	return commands.NewAnnotateAlertCommandHandler(c.policy, c.board)
}

func (c *CompositionRoot) CreateResolveAlertCommandHandler() commands.ResolveAlertCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveAlertCommandHandler(f, c.policy, c.board)
}

func (c *CompositionRoot) CreateFixTemperatureCommandHandler() commands.FixTemperatureCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFixTemperatureCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateRenameWarehouseCommandHandler() commands.RenameWarehouseCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRenameWarehouseCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateRecomputeAlertsCommandHandler() commands.RecomputeAlertsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecomputeAlertsCommandHandler(f, c.deriver, c.board, c.config.OrderTTL)
}

func (c *CompositionRoot) CreateGetZonesQueryHandler() (queries.GetZonesQueryHandler, error) {
	return queries.NewGetZonesQueryHandler(c.warehouseReader(), c.policy)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() (queries.GetPendingOrdersQueryHandler, error) {
	return queries.NewGetPendingOrdersQueryHandler(c.workOrderReader(), c.policy)
}

func (c *CompositionRoot) CreateGetAlertsQueryHandler() (queries.GetAlertsQueryHandler, error) {
	return queries.NewGetAlertsQueryHandler(c.board, c.policy)
}

func (c *CompositionRoot) CreateGetStatsQueryHandler() (queries.GetStatsQueryHandler, error) {
	return queries.NewGetStatsQueryHandler(c.warehouseReader(), c.workOrderReader(), c.policy)
}

func (c *CompositionRoot) CreateFindBoxQueryHandler() (queries.FindBoxQueryHandler, error) {
	return queries.NewFindBoxQueryHandler(c.warehouseReader(), c.policy)
}

// The read side goes through the same repositories as the write side, just
// without a transaction, so persisted-state normalization happens in
// exactly one place.
func (c *CompositionRoot) warehouseReader() queries.WarehouseReader {
	return staterepo.NewGormWarehouseRepository(c.gormDB, c.logger)
}

func (c *CompositionRoot) workOrderReader() queries.WorkOrderReader {
	return staterepo.NewGormWorkOrderRepository(c.gormDB, c.logger)
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
