// Package http wires the batching engine's commands and queries to an echo
// REST surface. Handlers stay thin: bind, validate, translate identifiers,
// delegate, map errors.
package http

import (
	"net/http"
	"strconv"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/application/usecases/commands"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/application/usecases/queries"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Commands groups the write-side handlers the server dispatches to.
type Commands struct {
	CreateOrder    commands.CreateOrderCommandHandler
	StartNextRow   commands.StartNextRowCommandHandler
	CompleteRow    commands.CompleteRowCommandHandler
	PauseOrder     commands.PauseOrderCommandHandler
	ResumeOrder    commands.ResumeOrderCommandHandler
	StopOrder      commands.StopOrderCommandHandler
	CreateRun      commands.CreateRunCommandHandler
	CreateClient   commands.CreateClientCommandHandler
	UpdateClient   commands.UpdateClientCommandHandler
	DeleteClient   commands.DeleteClientCommandHandler
	CreateVehicle  commands.CreateVehicleCommandHandler
	UpdateVehicle  commands.UpdateVehicleCommandHandler
	DeleteVehicle  commands.DeleteVehicleCommandHandler
	CreateRecipe   commands.CreateRecipeCommandHandler
	UpdateRecipe   commands.UpdateRecipeCommandHandler
	DeleteRecipe   commands.DeleteRecipeCommandHandler
	UpdateSettings commands.UpdateSettingsCommandHandler
}

// Queries groups the read-side handlers the server dispatches to.
type Queries struct {
	GetAllOrders    queries.GetAllOrdersQueryHandler
	GetOrder        queries.GetOrderQueryHandler
	GetOrderSummary queries.GetOrderSummaryQueryHandler
	GetRunsByOrder  queries.GetRunsByOrderQueryHandler
	GetLoadReport   queries.GetLoadReportQueryHandler
	GetAllClients   queries.GetAllClientsQueryHandler
	GetAllVehicles  queries.GetAllVehiclesQueryHandler
	GetAllRecipes   queries.GetAllRecipesQueryHandler
	GetSettings     queries.GetSettingsQueryHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	commands Commands
	queries  Queries
}

// NewServer creates the HTTP server facade.
func NewServer(c Commands, q Queries) *Server {
	return &Server{commands: c, queries: q}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	api.GET("/clients", s.GetClients)
	api.POST("/clients", s.CreateClient)
	api.PUT("/clients/:id", s.UpdateClient)
	api.DELETE("/clients/:id", s.DeleteClient)

	api.GET("/vehicles", s.GetVehicles)
	api.POST("/vehicles", s.CreateVehicle)
	api.PUT("/vehicles/:id", s.UpdateVehicle)
	api.DELETE("/vehicles/:id", s.DeleteVehicle)

	api.GET("/recipes", s.GetRecipes)
	api.POST("/recipes", s.CreateRecipe)
	api.PUT("/recipes/:id", s.UpdateRecipe)
	api.DELETE("/recipes/:id", s.DeleteRecipe)

	api.GET("/settings", s.GetSettings)
	api.PUT("/settings", s.UpdateSettings)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/pause", s.PauseOrder)
	api.POST("/orders/:id/resume", s.ResumeOrder)
	api.POST("/orders/:id/stop", s.StopOrder)
	api.POST("/orders/:id/rows/next", s.StartNextRow)
	api.POST("/orders/:id/rows/:rowId/done", s.CompleteRow)
	api.GET("/orders/:id/summary", s.GetOrderSummary)

	api.GET("/orders/:id/runs", s.GetRuns)
	api.POST("/orders/:id/runs", s.CreateRun)

	api.GET("/reports/orders/:id/loads", s.GetLoadReport)
}

// Health godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /health [get]
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, MessageResponse{Message: "ok"})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// GetClients godoc
// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {array} ClientResponse
// @Router /api/clients [get]
func (s *Server) GetClients(ctx echo.Context) error {
	clients, err := s.queries.GetAllClients.Handle(ctx.Request().Context(), queries.NewGetAllClientsQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		response = append(response, clientToResponse(c))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateClient godoc
// @Summary Register a client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body CreateClientRequest true "Client"
// @Success 201 {object} ClientResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/clients [post]
func (s *Server) CreateClient(ctx echo.Context) error {
	var req CreateClientRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	clientID := kernel.NewUUID()
	cmd, err := commands.NewCreateClientCommand(
		clientID, req.Name, req.Cell, req.Email, req.OfficeAddr, req.DeliveryAddr,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.CreateClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ClientResponse{
		ID:           clientID.String(),
		Name:         req.Name,
		Cell:         req.Cell,
		Email:        req.Email,
		OfficeAddr:   req.OfficeAddr,
		DeliveryAddr: req.DeliveryAddr,
	})
}

// UpdateClient godoc
// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body UpdateClientRequest true "Client"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/clients/{id} [put]
func (s *Server) UpdateClient(ctx echo.Context) error {
	clientID, err := pathUUID(ctx, "id")
	if err != nil {
		return domainError(ctx, err)
	}

	var req UpdateClientRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateClientCommand(
		clientID, req.Name, req.Cell, req.Email, req.OfficeAddr, req.DeliveryAddr,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.UpdateClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "client updated"})
}

// DeleteClient godoc
// @Summary Delete a client
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/clients/{id} [delete]
func (s *Server) DeleteClient(ctx echo.Context) error {
	clientID, err := pathUUID(ctx, "id")
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewDeleteClientCommand(clientID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.DeleteClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "client deleted"})
}

// GetVehicles godoc
// @Summary List vehicles
// @Tags vehicles
// @Produce json
// @Success 200 {array} VehicleResponse
// @Router /api/vehicles [get]
func (s *Server) GetVehicles(ctx echo.Context) error {
	vehicles, err := s.queries.GetAllVehicles.Handle(ctx.Request().Context(), queries.NewGetAllVehiclesQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		response = append(response, vehicleToResponse(v))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateVehicle godoc
// @Summary Register a vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Param vehicle body CreateVehicleRequest true "Vehicle"
// @Success 201 {object} VehicleResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/vehicles [post]
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var req CreateVehicleRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCreateVehicleCommand(
		vehicleID, req.Name, req.Capacity, req.Plate, req.DriverName,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.CreateVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, VehicleResponse{
		ID:         vehicleID.String(),
		Name:       req.Name,
		Capacity:   cmd.Capacity(),
		Plate:      req.Plate,
		DriverName: req.DriverName,
	})
}

// UpdateVehicle godoc
// @Summary Update a vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param vehicle body UpdateVehicleRequest true "Vehicle"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/vehicles/{id} [put]
func (s *Server) UpdateVehicle(ctx echo.Context) error {
	vehicleID, err := pathUUID(ctx, "id")
	if err != nil {
		return domainError(ctx, err)
	}

	var req UpdateVehicleRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateVehicleCommand(
		vehicleID, req.Name, req.Capacity, req.Plate, req.DriverName,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.UpdateVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "vehicle updated"})
}

// DeleteVehicle godoc
// @Summary Delete a vehicle
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/vehicles/{id} [delete]
func (s *Server) DeleteVehicle(ctx echo.Context) error {
	vehicleID, err := pathUUID(ctx, "id")
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewDeleteVehicleCommand(vehicleID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.DeleteVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "vehicle deleted"})
}

// GetRecipes godoc
// @Summary List mix designs
// @Tags recipes
// @Produce json
// @Success 200 {array} RecipeResponse
// @Router /api/recipes [get]
func (s *Server) GetRecipes(ctx echo.Context) error {
	recipes, err := s.queries.GetAllRecipes.Handle(ctx.Request().Context(), queries.NewGetAllRecipesQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		response = append(response, recipeToResponse(r))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateRecipe godoc
// @Summary Register a mix design
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body CreateRecipeRequest true "Recipe"
// @Success 201 {object} RecipeResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/recipes [post]
func (s *Server) CreateRecipe(ctx echo.Context) error {
	var req CreateRecipeRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	recipeID := kernel.NewUUID()
	cmd, err := commands.NewCreateRecipeCommand(recipeID, req.Name, req.Setpoints.toDomain())
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.CreateRecipe.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RecipeResponse{
		ID:        recipeID.String(),
		Name:      req.Name,
		Setpoints: req.Setpoints,
	})
}

// UpdateRecipe godoc
// @Summary Replace a mix design's name and setpoints
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param recipe body UpdateRecipeRequest true "Recipe"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/recipes/{id} [put]
func (s *Server) UpdateRecipe(ctx echo.Context) error {
	recipeID, err := pathUUID(ctx, "id")
	if err != nil {
		return domainError(ctx, err)
	}

	var req UpdateRecipeRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateRecipeCommand(recipeID, req.Name, req.Setpoints.toDomain())
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.UpdateRecipe.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "recipe updated"})
}

// DeleteRecipe godoc
// @Summary Delete a mix design
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/recipes/{id} [delete]
func (s *Server) DeleteRecipe(ctx echo.Context) error {
	recipeID, err := pathUUID(ctx, "id")
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewDeleteRecipeCommand(recipeID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.DeleteRecipe.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "recipe deleted"})
}

// GetSettings godoc
// @Summary Current plant settings
// @Tags settings
// @Produce json
// @Success 200 {object} SettingsResponse
// @Router /api/settings [get]
func (s *Server) GetSettings(ctx echo.Context) error {
	result, err := s.queries.GetSettings.Handle(ctx.Request().Context(), queries.NewGetSettingsQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	var defaultRecipeID *string
	if result.DefaultRecipeID != nil {
		id := result.DefaultRecipeID.String()
		defaultRecipeID = &id
	}

	return ctx.JSON(http.StatusOK, SettingsResponse{
		TolerancePct:    result.TolerancePct,
		MixerCapacity:   result.MixerCapacity,
		DefaultRecipeID: defaultRecipeID,
	})
}

// UpdateSettings godoc
// @Summary Update plant settings
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body UpdateSettingsRequest true "Settings"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/settings [put]
func (s *Server) UpdateSettings(ctx echo.Context) error {
	var req UpdateSettingsRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	var defaultRecipeID *kernel.UUID
	if req.DefaultRecipeID != nil {
		id, err := kernel.UUIDFromString(*req.DefaultRecipeID)
		if err != nil {
			return domainError(ctx, err)
		}
		defaultRecipeID = &id
	}

	cmd, err := commands.NewUpdateSettingsCommand(req.TolerancePct, req.MixerCapacity, defaultRecipeID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.commands.UpdateSettings.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "settings updated"})
}

// GetOrders godoc
// @Summary List recent orders
// @Tags orders
// @Produce json
// @Param limit query int false "Maximum orders to return (default 50)"
// @Success 200 {array} OrderListItemResponse
// @Router /api/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code: http.StatusBadRequest, Message: "limit must be an integer",
			})
		}
		limit = parsed
	}

	orders, err := s.queries.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery(limit))
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]OrderListItemResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, OrderListItemResponse{
			ID:          o.ID.String(),
			ClientID:    o.ClientID.String(),
			ClientName:  o.ClientName,
			RecipeID:    o.RecipeID.String(),
			RecipeName:  o.RecipeName,
			TotalVolume: o.TotalVolume,
			Status:      o.Status,
			RowsTotal:   o.RowsTotal,
			RowsDone:    o.RowsDone,
			CreatedAt:   o.CreatedAt,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder godoc
// @Summary Open a production order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body CreateOrderRequest true "Order"
// @Success 201 {object} CreateOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return domainError(ctx, err)
	}
	recipeID, err := kernel.UUIDFromString(req.RecipeID)
	if err != nil {
		return domainError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, recipeID, req.TotalVolume)
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:          orderID.String(),
		RowsPlanned: result.RowsPlanned,
	})
}

// GetOrder godoc
// @Summary Order with rows and runs
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} OrderResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return domainError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(result))
}

// statusTransition runs one pause/resume/stop command and renders the
// idempotent no-op as a success with an "already" message.
func (s *Server) statusTransition(
	ctx echo.Context,
	handle func(orderID kernel.UUID) (commands.OrderStatusResult, error),
) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := handle(orderID)
	if err != nil {
		return domainError(ctx, err)
	}

	resp := OrderStatusResponse{Status: result.Status.String()}
	if !result.Changed {
		resp.Message = "Order already " + result.Status.String()
	}
	return ctx.JSON(http.StatusOK, resp)
}

// PauseOrder godoc
// @Summary Pause production
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} OrderStatusResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/orders/{id}/pause [post]
func (s *Server) PauseOrder(ctx echo.Context) error {
	return s.statusTransition(ctx, func(orderID kernel.UUID) (commands.OrderStatusResult, error) {
		cmd, err := commands.NewPauseOrderCommand(orderID)
		if err != nil {
			return commands.OrderStatusResult{}, err
		}
		return s.commands.PauseOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// ResumeOrder godoc
// @Summary Resume production
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} OrderStatusResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/orders/{id}/resume [post]
func (s *Server) ResumeOrder(ctx echo.Context) error {
	return s.statusTransition(ctx, func(orderID kernel.UUID) (commands.OrderStatusResult, error) {
		cmd, err := commands.NewResumeOrderCommand(orderID)
		if err != nil {
			return commands.OrderStatusResult{}, err
		}
		return s.commands.ResumeOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// StopOrder godoc
// @Summary Stop production
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} OrderStatusResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/orders/{id}/stop [post]
func (s *Server) StopOrder(ctx echo.Context) error {
	return s.statusTransition(ctx, func(orderID kernel.UUID) (commands.OrderStatusResult, error) {
		cmd, err := commands.NewStopOrderCommand(orderID)
		if err != nil {
			return commands.OrderStatusResult{}, err
		}
		return s.commands.StopOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// StartNextRow godoc
// @Summary Start the next pending batch row
// @Tags production
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} StartNextRowResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/orders/{id}/rows/next [post]
func (s *Server) StartNextRow(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewStartNextRowCommand(orderID)
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := s.commands.StartNextRow.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StartNextRowResponse{
		RowID: result.RowID.String(),
		SeqNo: result.SeqNo,
	})
}

// CompleteRow godoc
// @Summary Record a batch row's actual reading
// @Tags production
// @Produce json
// @Param id path string true "Order ID"
// @Param rowId path string true "Row ID"
// @Success 200 {object} CompleteRowResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/orders/{id}/rows/{rowId}/done [post]
func (s *Server) CompleteRow(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return domainError(ctx, err)
	}
	rowID, err := pathUUID(ctx, "rowId")
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewCompleteRowCommand(orderID, rowID)
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := s.commands.CompleteRow.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	resp := CompleteRowResponse{
		Actual:      quantitiesToDTO(result.Actual),
		OrderStatus: result.OrderStatus.String(),
	}
	if result.AlreadyDone {
		resp.Message = "Row already done"
	}
	return ctx.JSON(http.StatusOK, resp)
}

// GetOrderSummary godoc
// @Summary Production summary for an order
// @Tags reports
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} SummaryResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/orders/{id}/summary [get]
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return domainError(ctx, err)
	}

	query, err := queries.NewGetOrderSummaryQuery(orderID)
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := s.queries.GetOrderSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SummaryResponse{
		OrderID:         result.OrderID.String(),
		Status:          result.Status,
		TotalVolume:     result.TotalVolume,
		ProducedVolume:  result.ProducedVolume,
		RemainingVolume: result.RemainingVolume,
		SetTotals:       quantitiesToDTO(result.SetTotals),
		ActualTotals:    quantitiesToDTO(result.ActualTotals),
		DeltaTotals:     quantitiesToDTO(result.DeltaTotals),
	})
}

// GetRuns godoc
// @Summary Delivery runs for an order
// @Tags runs
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {array} RunResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/orders/{id}/runs [get]
func (s *Server) GetRuns(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return domainError(ctx, err)
	}

	query, err := queries.NewGetRunsByOrderQuery(orderID)
	if err != nil {
		return domainError(ctx, err)
	}

	runs, err := s.queries.GetRunsByOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]RunResponse, 0, len(runs))
	for _, run := range runs {
		response = append(response, RunResponse{
			ID:          run.ID.String(),
			VehicleID:   run.VehicleID.String(),
			VehicleName: run.VehicleName,
			LoadSeq:     run.LoadSeq,
			Volume:      run.Volume,
			Note:        run.Note,
			RowStartSeq: run.RowStartSeq,
			RowEndSeq:   run.RowEndSeq,
			CreatedAt:   run.CreatedAt,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateRun godoc
// @Summary Allocate a delivery run
// @Tags runs
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param run body CreateRunRequest true "Run"
// @Success 201 {object} RunResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/orders/{id}/runs [post]
func (s *Server) CreateRun(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return domainError(ctx, err)
	}

	var req CreateRunRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}

	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return domainError(ctx, err)
	}

	var rowRange *order.RowRange
	if req.RowStartSeq != nil && req.RowEndSeq != nil {
		rowRange = &order.RowRange{StartSeq: *req.RowStartSeq, EndSeq: *req.RowEndSeq}
	}

	runID := kernel.NewUUID()
	cmd, err := commands.NewCreateRunCommand(runID, orderID, vehicleID, rowRange, req.Note)
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := s.commands.CreateRun.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RunResponse{
		ID:          result.RunID.String(),
		VehicleID:   vehicleID.String(),
		LoadSeq:     result.LoadSeq,
		Volume:      result.Volume,
		Note:        req.Note,
		RowStartSeq: result.RowStartSeq,
		RowEndSeq:   result.RowEndSeq,
	})
}

// GetLoadReport godoc
// @Summary Row-by-row material breakdown for delivery load reports
// @Tags reports
// @Produce json
// @Param id path string true "Order ID"
// @Param vehicleId query string false "Restrict to rows hauled by this vehicle"
// @Success 200 {object} LoadReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/reports/orders/{id}/loads [get]
func (s *Server) GetLoadReport(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return domainError(ctx, err)
	}

	var vehicleID *kernel.UUID
	if raw := ctx.QueryParam("vehicleId"); raw != "" {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return domainError(ctx, idErr)
		}
		vehicleID = &id
	}

	query, err := queries.NewGetLoadReportQuery(orderID, vehicleID)
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := s.queries.GetLoadReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loadReportToResponse(result))
}

// bind decodes and validates a request body, rendering failures as 400s.
func bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: http.StatusBadRequest, Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: http.StatusBadRequest, Message: err.Error(),
		})
	}
	return nil
}
