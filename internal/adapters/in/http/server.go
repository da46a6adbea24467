package http

import (
	"errors"
	"net/http"

	"bistro/internal/core/application/usecases/commands"
	"bistro/internal/core/application/usecases/queries"
	"bistro/internal/core/domain/model/ingredient"
	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/order"
	"bistro/internal/core/domain/model/recipe"
	"bistro/internal/core/domain/model/station"
	"bistro/internal/core/domain/services"
	"bistro/internal/generated/servers"
	"bistro/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerStationHandler  commands.RegisterStationCommandHandler
	removeStationHandler    commands.RemoveStationCommandHandler
	promoteStationHandler   commands.PromoteStationCommandHandler
	assignRecipeHandler     commands.AssignRecipeCommandHandler
	restockStationHandler   commands.RestockStationCommandHandler
	mergeStationsHandler    commands.MergeStationsCommandHandler
	restockBackupHandler    commands.RestockBackupCommandHandler
	replaceBackupHandler    commands.ReplaceBackupCommandHandler
	placeOrderHandler       commands.PlaceOrderCommandHandler
	prepareNextOrderHandler commands.PrepareNextOrderCommandHandler
	processOrdersHandler    commands.ProcessOrdersCommandHandler

	// Query handlers
	getStationsHandler      queries.GetStationsQueryHandler
	getStationHandler       queries.GetStationQueryHandler
	getBackupStockHandler   queries.GetBackupStockQueryHandler
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerStationHandler commands.RegisterStationCommandHandler,
	removeStationHandler commands.RemoveStationCommandHandler,
	promoteStationHandler commands.PromoteStationCommandHandler,
	assignRecipeHandler commands.AssignRecipeCommandHandler,
	restockStationHandler commands.RestockStationCommandHandler,
	mergeStationsHandler commands.MergeStationsCommandHandler,
	restockBackupHandler commands.RestockBackupCommandHandler,
	replaceBackupHandler commands.ReplaceBackupCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	prepareNextOrderHandler commands.PrepareNextOrderCommandHandler,
	processOrdersHandler commands.ProcessOrdersCommandHandler,
	getStationsHandler queries.GetStationsQueryHandler,
	getStationHandler queries.GetStationQueryHandler,
	getBackupStockHandler queries.GetBackupStockQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
) *Server {
	return &Server{
		registerStationHandler:  registerStationHandler,
		removeStationHandler:    removeStationHandler,
		promoteStationHandler:   promoteStationHandler,
		assignRecipeHandler:     assignRecipeHandler,
		restockStationHandler:   restockStationHandler,
		mergeStationsHandler:    mergeStationsHandler,
		restockBackupHandler:    restockBackupHandler,
		replaceBackupHandler:    replaceBackupHandler,
		placeOrderHandler:       placeOrderHandler,
		prepareNextOrderHandler: prepareNextOrderHandler,
		processOrdersHandler:    processOrdersHandler,
		getStationsHandler:      getStationsHandler,
		getStationHandler:       getStationHandler,
		getBackupStockHandler:   getBackupStockHandler,
		getPendingOrdersHandler: getPendingOrdersHandler,
	}
}

// RegisterStation handles POST /api/v1/stations - registers a new kitchen station.
func (s *Server) RegisterStation(ctx echo.Context) error {
	var newStation servers.NewStation
	if err := ctx.Bind(&newStation); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var stock []ingredient.Ingredient
	if newStation.Stock != nil {
		lots, err := stockFromRequest(*newStation.Stock)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid station data: " + err.Error(),
			})
		}
		stock = lots
	}

	cmd, err := commands.NewRegisterStationCommand(newStation.Name, stock)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid station data: " + err.Error(),
		})
	}

	if handleErr := s.registerStationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, station.ErrStationAlreadyRegistered) {
			return ctx.JSON(http.StatusConflict, servers.Error{
				Code:    http.StatusConflict,
				Message: "Station is already registered",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to register station",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetStations handles GET /api/v1/stations - retrieves all stations in fallback order.
func (s *Server) GetStations(ctx echo.Context) error {
	query := queries.NewGetStationsQuery()

	stations, err := s.getStationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve stations",
		})
	}

	response := make([]servers.Station, len(stations))
	for i, view := range stations {
		response[i] = stationToResponse(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStation handles GET /api/v1/stations/{name} - retrieves a single station.
func (s *Server) GetStation(ctx echo.Context, name string) error {
	query, err := queries.NewGetStationQuery(name)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid station name: " + err.Error(),
		})
	}

	view, err := s.getStationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Station not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve station",
		})
	}

	return ctx.JSON(http.StatusOK, stationToResponse(view))
}

// RemoveStation handles DELETE /api/v1/stations/{name} - removes a station.
func (s *Server) RemoveStation(ctx echo.Context, name string) error {
	cmd, err := commands.NewRemoveStationCommand(name)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid station name: " + err.Error(),
		})
	}

	if handleErr := s.removeStationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, station.ErrStationNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Station not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to remove station",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PromoteStation handles POST /api/v1/stations/{name}/promote - moves a station
// to the front of the fallback order.
func (s *Server) PromoteStation(ctx echo.Context, name string) error {
	cmd, err := commands.NewPromoteStationCommand(name)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid station name: " + err.Error(),
		})
	}

	if handleErr := s.promoteStationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, station.ErrStationNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Station not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to promote station",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignRecipe handles POST /api/v1/stations/{name}/recipes - assigns a recipe
// to a station.
func (s *Server) AssignRecipe(ctx echo.Context, name string) error {
	var newRecipe servers.NewRecipe
	if err := ctx.Bind(&newRecipe); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	rcp, err := recipeFromRequest(newRecipe)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid recipe data: " + err.Error(),
		})
	}

	cmd, err := commands.NewAssignRecipeCommand(name, rcp)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid recipe data: " + err.Error(),
		})
	}

	if handleErr := s.assignRecipeHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, station.ErrStationNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Station not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to assign recipe",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// RestockStation handles POST /api/v1/stations/{name}/stock - deposits a stock
// lot at a station.
func (s *Server) RestockStation(ctx echo.Context, name string) error {
	var lot servers.Ingredient
	if err := ctx.Bind(&lot); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	stockLot, err := stockLotFromRequest(lot)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid stock lot: " + err.Error(),
		})
	}

	cmd, err := commands.NewRestockStationCommand(name, stockLot)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid stock lot: " + err.Error(),
		})
	}

	if handleErr := s.restockStationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, station.ErrStationNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Station not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to restock station",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MergeStations handles POST /api/v1/stations/merge - merges the source station
// into the destination station.
func (s *Server) MergeStations(ctx echo.Context) error {
	var mergeRequest servers.MergeRequest
	if err := ctx.Bind(&mergeRequest); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewMergeStationsCommand(mergeRequest.Destination, mergeRequest.Source)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid merge request: " + err.Error(),
		})
	}

	if handleErr := s.mergeStationsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, station.ErrStationNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Station not found",
			})
		}
		if errors.Is(handleErr, errs.ErrValueIsInvalid) {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid merge request: " + handleErr.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to merge stations",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetBackupStock handles GET /api/v1/backup - retrieves the backup ingredient pool.
func (s *Server) GetBackupStock(ctx echo.Context) error {
	query := queries.NewGetBackupStockQuery()

	lots, err := s.getBackupStockHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve backup stock",
		})
	}

	response := make([]servers.Ingredient, len(lots))
	for i, view := range lots {
		response[i] = ingredientToResponse(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// RestockBackup handles POST /api/v1/backup - adds a lot to the backup pool.
func (s *Server) RestockBackup(ctx echo.Context) error {
	var lot servers.Ingredient
	if err := ctx.Bind(&lot); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	stockLot, err := stockLotFromRequest(lot)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid stock lot: " + err.Error(),
		})
	}

	cmd, err := commands.NewRestockBackupCommand(stockLot)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid stock lot: " + err.Error(),
		})
	}

	if handleErr := s.restockBackupHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to restock backup pool",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReplaceBackup handles PUT /api/v1/backup - replaces the backup pool contents.
// An empty body clears the pool.
func (s *Server) ReplaceBackup(ctx echo.Context) error {
	var body servers.ReplaceBackupJSONBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lots, err := stockFromRequest(body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid stock lot: " + err.Error(),
		})
	}

	cmd, err := commands.NewReplaceBackupCommand(lots)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid stock lot: " + err.Error(),
		})
	}

	if handleErr := s.replaceBackupHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to replace backup pool",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - retrieves the pending order queue.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	tickets, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.Order, len(tickets))
	for i, ticket := range tickets {
		googleUUID := ticket.ID.Bytes()

		response[i] = servers.Order{
			Id:       googleUUID,
			Position: ticket.Position,
			Recipe:   ticket.Recipe,
			Status:   ticket.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders - places an order for a recipe.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	// Ticket IDs are minted here; clients track their order through the queue.
	ticketID := kernel.NewUUID()

	var cmd commands.PlaceOrderCommand
	var err error
	if newOrder.Dietary != nil {
		cmd, err = commands.NewPlaceOrderCommandWithDietary(
			ticketID,
			newOrder.Recipe,
			dietaryFromRequest(*newOrder.Dietary),
		)
	} else {
		cmd, err = commands.NewPlaceOrderCommand(ticketID, newOrder.Recipe)
	}
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, station.ErrRecipeNotOffered) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "No station offers the requested recipe",
			})
		}
		if errors.Is(handleErr, order.ErrTicketAlreadyQueued) {
			return ctx.JSON(http.StatusConflict, servers.Error{
				Code:    http.StatusConflict,
				Message: "Order is already queued",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to place order",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// PrepareNextOrder handles POST /api/v1/orders/next - prepares the order at the
// front of the queue from stock already on hand.
func (s *Server) PrepareNextOrder(ctx echo.Context) error {
	cmd := commands.NewPrepareNextOrderCommand()

	prepared, err := s.prepareNextOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrNoPendingOrders) {
			return ctx.JSON(http.StatusConflict, servers.Error{
				Code:    http.StatusConflict,
				Message: "No pending orders in the queue",
			})
		}
		if errors.Is(err, services.ErrNoCapableStation) {
			return ctx.JSON(http.StatusConflict, servers.Error{
				Code:    http.StatusConflict,
				Message: "No station can prepare the next order from stock on hand",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to prepare the next order",
		})
	}

	googleUUID := prepared.TicketID.Bytes()

	return ctx.JSON(http.StatusOK, servers.PreparedOrder{
		Id:      googleUUID,
		Recipe:  prepared.Recipe,
		Station: prepared.Station,
	})
}

// ProcessOrders handles POST /api/v1/orders/process - runs a fulfillment pass
// over the whole queue and reports per-ticket outcomes.
func (s *Server) ProcessOrders(ctx echo.Context) error {
	cmd := commands.NewProcessOrdersCommand()

	result, err := s.processOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrNoPendingOrders) {
			return ctx.JSON(http.StatusConflict, servers.Error{
				Code:    http.StatusConflict,
				Message: "No pending orders in the queue",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process orders",
		})
	}

	outcomes := make([]servers.OrderOutcome, len(result.Report.Outcomes))
	for i, outcome := range result.Report.Outcomes {
		googleUUID := outcome.TicketID.Bytes()

		outcomes[i] = servers.OrderOutcome{
			Fulfilled: outcome.Fulfilled,
			Id:        googleUUID,
			Recipe:    outcome.Recipe,
		}
		if outcome.Station != "" {
			stationName := outcome.Station
			outcomes[i].Station = &stationName
		}
	}

	return ctx.JSON(http.StatusOK, servers.ProcessReport{
		ElapsedMs: result.Report.Elapsed.Milliseconds(),
		Fulfilled: result.Report.Fulfilled,
		Outcomes:  outcomes,
		Requeued:  result.Report.Requeued,
		Trace:     services.Trace(result.Events),
	})
}

func stationToResponse(view queries.StationView) servers.Station {
	recipes := make([]servers.Recipe, len(view.Recipes))
	for i, rcp := range view.Recipes {
		recipes[i] = recipeToResponse(rcp)
	}

	stock := make([]servers.Ingredient, len(view.Stock))
	for i, item := range view.Stock {
		stock[i] = ingredientToResponse(item)
	}

	return servers.Station{
		Name:     view.Name,
		Position: view.Position,
		Recipes:  recipes,
		Stock:    stock,
	}
}

func recipeToResponse(view queries.RecipeView) servers.Recipe {
	ingredients := make([]servers.Requirement, len(view.Requirements))
	for i, requirement := range view.Requirements {
		ingredients[i] = servers.Requirement{
			Name:     requirement.Name,
			Quantity: requirement.Quantity,
		}
	}

	return servers.Recipe{
		Cuisine:     view.Cuisine,
		Ingredients: ingredients,
		Name:        view.Name,
		PrepMinutes: view.PrepMinutes,
		Price:       view.Price,
	}
}

func ingredientToResponse(view queries.IngredientView) servers.Ingredient {
	unitPrice := view.UnitPrice

	return servers.Ingredient{
		Name:      view.Name,
		Quantity:  view.Quantity,
		UnitPrice: &unitPrice,
	}
}

func stockLotFromRequest(lot servers.Ingredient) (ingredient.Ingredient, error) {
	unitPrice := 0.0
	if lot.UnitPrice != nil {
		unitPrice = *lot.UnitPrice
	}

	return ingredient.NewStock(lot.Name, lot.Quantity, unitPrice)
}

func stockFromRequest(lots []servers.Ingredient) ([]ingredient.Ingredient, error) {
	stock := make([]ingredient.Ingredient, len(lots))
	for i, lot := range lots {
		item, err := stockLotFromRequest(lot)
		if err != nil {
			return nil, err
		}
		stock[i] = item
	}

	return stock, nil
}

func recipeFromRequest(dto servers.NewRecipe) (*recipe.Recipe, error) {
	requirements := make([]ingredient.Ingredient, len(dto.Ingredients))
	for i, line := range dto.Ingredients {
		requirement, err := ingredient.NewRequirement(line.Name, line.Quantity, 0)
		if err != nil {
			return nil, err
		}
		requirements[i] = requirement
	}

	cuisine, err := recipe.ClassificationFromString(dto.Cuisine)
	if err != nil {
		return nil, err
	}

	return recipe.NewRecipe(dto.Name, requirements, dto.PrepMinutes, dto.Price, cuisine)
}

func dietaryFromRequest(dto servers.DietaryRequest) recipe.DietaryRequest {
	request := recipe.DietaryRequest{
		Vegetarian: dto.Vegetarian != nil && *dto.Vegetarian,
		Vegan:      dto.Vegan != nil && *dto.Vegan,
		GlutenFree: dto.GlutenFree != nil && *dto.GlutenFree,
		NutFree:    dto.NutFree != nil && *dto.NutFree,
		LowSodium:  dto.LowSodium != nil && *dto.LowSodium,
		LowSugar:   dto.LowSugar != nil && *dto.LowSugar,
	}
	if dto.Exclusions != nil {
		request.Exclusions = *dto.Exclusions
	}

	return request
}
