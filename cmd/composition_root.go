package cmd

import (
	"log/slog"

	"bistro/internal/adapters/out/memstore"
	"bistro/internal/adapters/out/metrics"
	"bistro/internal/core/application/usecases/commands"
	"bistro/internal/core/application/usecases/queries"
	"bistro/internal/core/domain/model/recipe"
	"bistro/internal/core/domain/services"
)

type CompositionRoot struct {
	store      *memstore.Store
	uowFactory memstore.UnitOfWorkFactory
	recorder   services.Recorder
}

func NewCompositionRoot(_ Config, logger *slog.Logger) CompositionRoot {
	store := memstore.NewStore()

	return CompositionRoot{
		store:      store,
		uowFactory: *memstore.NewUnitOfWorkFactory(store),
		recorder: services.Recorders(
			services.NewSlogRecorder(logger),
			metrics.NewRecorder(),
		),
	}
}

func (c *CompositionRoot) CreateRegisterStationCommandHandler() commands.RegisterStationCommandHandler {
	var f commands.StationsUoWFactory = FuncStationsUoWFactory(func() commands.StationsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterStationCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveStationCommandHandler() commands.RemoveStationCommandHandler {
	var f commands.StationsUoWFactory = FuncStationsUoWFactory(func() commands.StationsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveStationCommandHandler(f)
}

func (c *CompositionRoot) CreatePromoteStationCommandHandler() commands.PromoteStationCommandHandler {
	var f commands.StationsUoWFactory = FuncStationsUoWFactory(func() commands.StationsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPromoteStationCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignRecipeCommandHandler() commands.AssignRecipeCommandHandler {
	var f commands.StationsUoWFactory = FuncStationsUoWFactory(func() commands.StationsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRecipeCommandHandler(f)
}

func (c *CompositionRoot) CreateRestockStationCommandHandler() commands.RestockStationCommandHandler {
	var f commands.StationsUoWFactory = FuncStationsUoWFactory(func() commands.StationsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestockStationCommandHandler(f)
}

func (c *CompositionRoot) CreateMergeStationsCommandHandler() commands.MergeStationsCommandHandler {
	var f commands.StationsUoWFactory = FuncStationsUoWFactory(func() commands.StationsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMergeStationsCommandHandler(f)
}

func (c *CompositionRoot) CreateRestockBackupCommandHandler() commands.RestockBackupCommandHandler {
	var f commands.BackupUoWFactory = FuncBackupUoWFactory(func() commands.BackupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestockBackupCommandHandler(f)
}

func (c *CompositionRoot) CreateReplaceBackupCommandHandler() commands.ReplaceBackupCommandHandler {
	var f commands.BackupUoWFactory = FuncBackupUoWFactory(func() commands.BackupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReplaceBackupCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrdersUoWFactory = FuncOrdersUoWFactory(func() commands.OrdersUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, recipe.DefaultAccommodator{})
}

func (c *CompositionRoot) CreatePrepareNextOrderCommandHandler() commands.PrepareNextOrderCommandHandler {
	var f commands.OrdersUoWFactory = FuncOrdersUoWFactory(func() commands.OrdersUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPrepareNextOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessOrdersCommandHandler() commands.ProcessOrdersCommandHandler {
	var f commands.KitchenUoWFactory = FuncKitchenUoWFactory(func() commands.KitchenUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessOrdersCommandHandler(f, c.recorder)
}

func (c *CompositionRoot) CreateGetStationsQueryHandler() queries.GetStationsQueryHandler {
	return queries.NewGetStationsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetStationQueryHandler() queries.GetStationQueryHandler {
	return queries.NewGetStationQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetBackupStockQueryHandler() queries.GetBackupStockQueryHandler {
	return queries.NewGetBackupStockQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.store)
}

type FuncStationsUoWFactory func() commands.StationsUoW

func (f FuncStationsUoWFactory) Create() commands.StationsUoW {
	return f()
}

type FuncBackupUoWFactory func() commands.BackupUoW

func (f FuncBackupUoWFactory) Create() commands.BackupUoW {
	return f()
}

type FuncOrdersUoWFactory func() commands.OrdersUoW

func (f FuncOrdersUoWFactory) Create() commands.OrdersUoW {
	return f()
}

type FuncKitchenUoWFactory func() commands.KitchenUoW

func (f FuncKitchenUoWFactory) Create() commands.KitchenUoW {
	return f()
}
