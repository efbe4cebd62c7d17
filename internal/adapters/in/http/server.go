// Package http is the inbound REST adapter. Handlers translate requests
// into commands and queries; every successful mutation triggers an alert
// recomputation so the feed reacts without waiting for the next sweep.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"coldstore/internal/core/application/usecases/commands"
	"coldstore/internal/core/application/usecases/queries"
	"coldstore/internal/core/domain/model/alert"
	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/core/domain/model/workorder"
	"coldstore/internal/core/ports"
)

// RoleHeader carries the acting role on every request after login. The
// engine re-checks the role policy on each operation regardless, so a
// forged header gains nothing beyond what the policy grants that role.
const RoleHeader = "X-Role"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	users ports.UserDirectory

	registerInboundBoxHandler commands.RegisterInboundBoxCommandHandler
	createOrderHandler        commands.CreateOrderCommandHandler
	executeOrderHandler       commands.ExecuteOrderCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	dispatchBoxHandler        commands.DispatchBoxCommandHandler
	reportFailureHandler      commands.ReportFailureCommandHandler
	annotateAlertHandler      commands.AnnotateAlertCommandHandler
	resolveAlertHandler       commands.ResolveAlertCommandHandler
	fixTemperatureHandler     commands.FixTemperatureCommandHandler
	renameWarehouseHandler    commands.RenameWarehouseCommandHandler
	recomputeAlertsHandler    commands.RecomputeAlertsCommandHandler

	getZonesHandler         queries.GetZonesQueryHandler
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler
	getAlertsHandler        queries.GetAlertsQueryHandler
	getStatsHandler         queries.GetStatsQueryHandler
	findBoxHandler          queries.FindBoxQueryHandler

	logger *slog.Logger
}

// NewServer creates the REST adapter over the given use cases.
func NewServer(
	users ports.UserDirectory,
	registerInboundBoxHandler commands.RegisterInboundBoxCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	executeOrderHandler commands.ExecuteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	dispatchBoxHandler commands.DispatchBoxCommandHandler,
	reportFailureHandler commands.ReportFailureCommandHandler,
	annotateAlertHandler commands.AnnotateAlertCommandHandler,
	resolveAlertHandler commands.ResolveAlertCommandHandler,
	fixTemperatureHandler commands.FixTemperatureCommandHandler,
	renameWarehouseHandler commands.RenameWarehouseCommandHandler,
	recomputeAlertsHandler commands.RecomputeAlertsCommandHandler,
	getZonesHandler queries.GetZonesQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getAlertsHandler queries.GetAlertsQueryHandler,
	getStatsHandler queries.GetStatsQueryHandler,
	findBoxHandler queries.FindBoxQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		users:                     users,
		registerInboundBoxHandler: registerInboundBoxHandler,
		createOrderHandler:        createOrderHandler,
		executeOrderHandler:       executeOrderHandler,
		cancelOrderHandler:        cancelOrderHandler,
		dispatchBoxHandler:        dispatchBoxHandler,
		reportFailureHandler:      reportFailureHandler,
		annotateAlertHandler:      annotateAlertHandler,
		resolveAlertHandler:       resolveAlertHandler,
		fixTemperatureHandler:     fixTemperatureHandler,
		renameWarehouseHandler:    renameWarehouseHandler,
		recomputeAlertsHandler:    recomputeAlertsHandler,
		getZonesHandler:           getZonesHandler,
		getPendingOrdersHandler:   getPendingOrdersHandler,
		getAlertsHandler:          getAlertsHandler,
		getStatsHandler:           getStatsHandler,
		findBoxHandler:            findBoxHandler,
		logger:                    logger,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/login", s.Login)

	api.GET("/zones", s.GetZones)
	api.GET("/search", s.FindBox)
	api.GET("/stats", s.GetStats)
	api.PUT("/warehouse/name", s.RenameWarehouse)

	api.POST("/inbound", s.RegisterInboundBox)
	api.POST("/outbound/:position/dispatch", s.DispatchBox)
	api.POST("/temperature", s.FixTemperature)

	api.GET("/orders", s.GetPendingOrders)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/execute", s.ExecuteOrder)
	api.POST("/orders/:id/report-failure", s.ReportFailure)
	api.DELETE("/orders/:id", s.CancelOrder)

	api.GET("/alerts", s.GetAlerts)
	api.POST("/alerts/:id/annotate", s.AnnotateAlert)
	api.DELETE("/alerts/:id", s.ResolveAlert)
}

// LoginRequest carries the credentials of a staff member.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse reports the authenticated session.
type LoginResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login handles POST /api/v1/login.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	session, err := s.users.Authenticate(ctx.Request().Context(), request.Username, request.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Username: session.Username,
		Role:     session.Role.String(),
	})
}

// GetZones handles GET /api/v1/zones.
func (s *Server) GetZones(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetZonesQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getZonesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterInboundBoxRequest describes a newly arrived box.
type RegisterInboundBoxRequest struct {
	Name        string  `json:"name"`
	Temperature float64 `json:"temperature"`
}

// RegisterInboundBox handles POST /api/v1/inbound.
func (s *Server) RegisterInboundBox(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request RegisterInboundBoxRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterInboundBoxCommand(actor, request.Name, request.Temperature)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.registerInboundBoxHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	s.recomputeAlerts(ctx)
	return ctx.NoContent(http.StatusCreated)
}

// CreateOrderRequest describes a work order to place.
type CreateOrderRequest struct {
	Type           string `json:"type"`
	SourceZone     string `json:"sourceZone"`
	SourcePosition int    `json:"sourcePosition"`
	TargetPosition *int   `json:"targetPosition"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	orderType, err := workorder.TypeFromString(request.Type)
	if err != nil {
		return writeError(ctx, err)
	}
	sourceZone, err := kernel.ZoneFromString(request.SourceZone)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(actor, orderType, sourceZone, request.SourcePosition, request.TargetPosition)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	s.recomputeAlerts(ctx)
	return ctx.NoContent(http.StatusCreated)
}

// ExecuteOrder handles POST /api/v1/orders/:id/execute.
func (s *Server) ExecuteOrder(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewExecuteOrderCommand(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.executeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	s.recomputeAlerts(ctx)
	return ctx.NoContent(http.StatusOK)
}

// CancelOrder handles DELETE /api/v1/orders/:id.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	s.recomputeAlerts(ctx)
	return ctx.NoContent(http.StatusOK)
}

// GetPendingOrders handles GET /api/v1/orders.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetPendingOrdersQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// DispatchBox handles POST /api/v1/outbound/:position/dispatch.
func (s *Server) DispatchBox(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	position, err := positionParam(ctx)
	if err != nil {
		return writeBadRequest(ctx, "invalid position")
	}

	cmd, err := commands.NewDispatchBoxCommand(actor, position)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.dispatchBoxHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	s.recomputeAlerts(ctx)
	return ctx.NoContent(http.StatusOK)
}

// ReportFailureRequest carries the manual failure description.
type ReportFailureRequest struct {
	Description string `json:"description"`
}

// ReportFailure handles POST /api/v1/orders/:id/report-failure.
func (s *Server) ReportFailure(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request ReportFailureRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewReportFailureCommand(actor, orderID, request.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.reportFailureHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// GetAlerts handles GET /api/v1/alerts.
func (s *Server) GetAlerts(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAlertsQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getAlertsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AnnotateAlertRequest carries the operator annotation.
type AnnotateAlertRequest struct {
	Reason string `json:"reason"`
}

// AnnotateAlert handles POST /api/v1/alerts/:id/annotate.
func (s *Server) AnnotateAlert(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request AnnotateAlertRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAnnotateAlertCommand(actor, ctx.Param("id"), alert.Reason(request.Reason))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.annotateAlertHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusOK)
}

// ResolveAlert handles DELETE /api/v1/alerts/:id.
func (s *Server) ResolveAlert(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewResolveAlertCommand(actor, ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.resolveAlertHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	s.recomputeAlerts(ctx)
	return ctx.NoContent(http.StatusOK)
}

// FixTemperatureRequest corrects one box temperature.
type FixTemperatureRequest struct {
	Zone        string  `json:"zone"`
	Position    int     `json:"position"`
	Temperature float64 `json:"temperature"`
}

// FixTemperature handles POST /api/v1/temperature.
func (s *Server) FixTemperature(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request FixTemperatureRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	zone, err := kernel.ZoneFromString(request.Zone)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewFixTemperatureCommand(actor, zone, request.Position, request.Temperature)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.fixTemperatureHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	s.recomputeAlerts(ctx)
	return ctx.NoContent(http.StatusOK)
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetStatsQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// FindBox handles GET /api/v1/search?q=term.
func (s *Server) FindBox(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewFindBoxQuery(actor, ctx.QueryParam("q"))
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.findBoxHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// RenameWarehouseRequest carries the new display name.
type RenameWarehouseRequest struct {
	Name string `json:"name"`
}

// RenameWarehouse handles PUT /api/v1/warehouse/name.
func (s *Server) RenameWarehouse(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request RenameWarehouseRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRenameWarehouseCommand(actor, request.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.renameWarehouseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusOK)
}

func (s *Server) actor(ctx echo.Context) (role.Role, error) {
	actor, err := role.RoleFromString(ctx.Request().Header.Get(RoleHeader))
	if err != nil {
		return role.UnknownRole, fmt.Errorf("%w: missing or unknown %s header", role.ErrUnauthorized, RoleHeader)
	}
	return actor, nil
}

// recomputeAlerts refreshes the alert feed after a successful mutation. A
// failed refresh is logged, not surfaced: the mutation itself committed and
// the next sweep tick repairs the feed.
func (s *Server) recomputeAlerts(ctx echo.Context) {
	cmd, err := commands.NewRecomputeAlertsCommand(time.Now())
	if err != nil {
		s.logger.Warn("alert recompute skipped", "error", err)
		return
	}

	if err := s.recomputeAlertsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		s.logger.Warn("alert recompute failed", "error", err)
	}
}

func positionParam(ctx echo.Context) (int, error) {
	var position int
	if err := echo.PathParamsBinder(ctx).Int("position", &position).BindError(); err != nil {
		return 0, err
	}
	return position, nil
}
