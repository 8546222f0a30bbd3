// Package http exposes the workshop's operations as a JSON API on echo.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"rugops/internal/core/application/usecases/commands"
	"rugops/internal/core/application/usecases/queries"
	"rugops/internal/core/domain/model/kernel"
	"rugops/internal/core/domain/model/order"
	"rugops/internal/core/domain/services"
	"rugops/internal/pkg/errs"
)

// CommandHandlers bundles the write-side handlers the server dispatches to.
type CommandHandlers struct {
	CreateOrder            commands.CreateOrderCommandHandler
	UpdateOrderContact     commands.UpdateOrderContactCommandHandler
	UpdateItemDetails      commands.UpdateItemDetailsCommandHandler
	SetRepairEstimate      commands.SetRepairEstimateCommandHandler
	FlagItemRepair         commands.FlagItemRepairCommandHandler
	MarkItemReady          commands.MarkItemReadyCommandHandler
	MarkItemDelivered      commands.MarkItemDeliveredCommandHandler
	SetApprovalRequirement commands.SetApprovalRequirementCommandHandler
	DecideApproval         commands.DecideApprovalCommandHandler
	PurgeOrders            commands.PurgeOrdersCommandHandler
	MigrateOrders          commands.MigrateOrdersCommandHandler
}

// QueryHandlers bundles the read-side handlers the server dispatches to.
type QueryHandlers struct {
	GetAllOrders       queries.GetAllOrdersQueryHandler
	GetOrder           queries.GetOrderQueryHandler
	GetDeliveryReady   queries.GetDeliveryReadyOrdersQueryHandler
	GetNextOrderID     queries.GetNextOrderIDQueryHandler
	GetPendingApproval queries.GetPendingApprovalOrdersQueryHandler
	PlanRoute          queries.PlanRouteQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// RegisterRoutes mounts every route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.DELETE("/orders", s.PurgeOrders)
	api.GET("/orders/next-id", s.GetNextOrderID)
	api.GET("/orders/pending-approval", s.GetPendingApprovalOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id", s.UpdateOrderContact)
	api.POST("/orders/:id/approval-requirement", s.SetApprovalRequirement)
	api.POST("/orders/:id/approval-decision", s.DecideApproval)
	api.PATCH("/orders/:id/items/:itemId", s.UpdateItem)
	api.POST("/orders/:id/items/:itemId/repair-estimate", s.SetRepairEstimate)
	api.POST("/orders/:id/items/:itemId/flag-repair", s.FlagItemRepair)
	api.POST("/orders/:id/items/:itemId/ready", s.MarkItemReady)
	api.POST("/orders/:id/items/:itemId/delivered", s.MarkItemDelivered)
	api.GET("/delivery/ready", s.GetDeliveryReadyOrders)
	api.POST("/delivery/route-plan", s.PlanRoute)
	api.POST("/admin/migrate", s.MigrateOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// CreateOrder handles POST /api/orders. When the body carries no id, the
// next free one in the ORD-NNN sequence is assigned. Responds with the
// created order and its items.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var orderID kernel.OrderID
	var err error
	if req.ID == "" {
		orderID, err = s.queries.GetNextOrderID.Handle(
			ctx.Request().Context(), queries.NewGetNextOrderIDQuery())
	} else {
		orderID, err = kernel.ParseOrderID(req.ID)
	}
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	items := make([]commands.ItemIntake, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.ItemIntake{ID: item.ID, Photo: item.Photo})
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, req.ClientName,
		req.Phone, req.Email, req.Address, req.Signature, req.Receipt, items)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	if err = s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorJSON(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// GetOrders handles GET /api/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.queries.GetAllOrders.Handle(
		ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	view, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// GetNextOrderID handles GET /api/orders/next-id.
func (s *Server) GetNextOrderID(ctx echo.Context) error {
	next, err := s.queries.GetNextOrderID.Handle(
		ctx.Request().Context(), queries.NewGetNextOrderIDQuery())
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, NextOrderIDResponse{ID: next.String()})
}

// GetPendingApprovalOrders handles GET /api/orders/pending-approval.
func (s *Server) GetPendingApprovalOrders(ctx echo.Context) error {
	views, err := s.queries.GetPendingApproval.Handle(
		ctx.Request().Context(), queries.NewGetPendingApprovalOrdersQuery())
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views)
}

// UpdateOrderContact handles PATCH /api/orders/:id. Unknown body fields are
// rejected so a typo cannot silently drop an update.
func (s *Server) UpdateOrderContact(ctx echo.Context) error {
	orderID, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	var req UpdateContactRequest
	if err = bindStrict(ctx, &req); err != nil {
		return badRequest(ctx, "invalid request body: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderContactCommand(orderID, order.ContactPatch{
		ClientName: req.ClientName,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		Receipt:    req.Receipt,
	})
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	if err = s.commands.UpdateOrderContact.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorJSON(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// UpdateItem handles PATCH /api/orders/:id/items/:itemId. Responds with the
// updated order so the caller sees the recomputed cleaning cost, the item's
// status transition and any approval escalation the update caused.
func (s *Server) UpdateItem(ctx echo.Context) error {
	orderID, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	var req UpdateItemRequest
	if err = bindStrict(ctx, &req); err != nil {
		return badRequest(ctx, "invalid request body: "+err.Error())
	}

	patch := order.ItemPatch{
		Length: req.Length,
		Width:  req.Width,
		Photo:  req.Photo,
	}
	if req.Material != nil {
		material, parseErr := order.ParseMaterial(*req.Material)
		if parseErr != nil {
			return s.errorJSON(ctx, parseErr)
		}
		patch.Material = &material
	}
	if req.Condition != nil {
		condition, parseErr := order.ParseCondition(*req.Condition)
		if parseErr != nil {
			return s.errorJSON(ctx, parseErr)
		}
		patch.Condition = &condition
	}

	cmd, err := commands.NewUpdateItemDetailsCommand(orderID, ctx.Param("itemId"), patch)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	if err = s.commands.UpdateItemDetails.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorJSON(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// SetRepairEstimate handles POST /api/orders/:id/items/:itemId/repair-estimate.
func (s *Server) SetRepairEstimate(ctx echo.Context) error {
	orderID, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	var req RepairEstimateRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetRepairEstimateCommand(orderID, ctx.Param("itemId"),
		req.Description, decimal.NewFromFloat(req.Cost))
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	if err = s.commands.SetRepairEstimate.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorJSON(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// FlagItemRepair handles POST /api/orders/:id/items/:itemId/flag-repair.
func (s *Server) FlagItemRepair(ctx echo.Context) error {
	return s.handleItemStatusChange(ctx, func(orderID kernel.OrderID, itemID string) error {
		cmd, err := commands.NewFlagItemRepairCommand(orderID, itemID)
		if err != nil {
			return err
		}
		return s.commands.FlagItemRepair.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkItemReady handles POST /api/orders/:id/items/:itemId/ready.
func (s *Server) MarkItemReady(ctx echo.Context) error {
	return s.handleItemStatusChange(ctx, func(orderID kernel.OrderID, itemID string) error {
		cmd, err := commands.NewMarkItemReadyCommand(orderID, itemID)
		if err != nil {
			return err
		}
		return s.commands.MarkItemReady.Handle(ctx.Request().Context(), cmd)
	})
}

// MarkItemDelivered handles POST /api/orders/:id/items/:itemId/delivered.
func (s *Server) MarkItemDelivered(ctx echo.Context) error {
	return s.handleItemStatusChange(ctx, func(orderID kernel.OrderID, itemID string) error {
		cmd, err := commands.NewMarkItemDeliveredCommand(orderID, itemID)
		if err != nil {
			return err
		}
		return s.commands.MarkItemDelivered.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) handleItemStatusChange(
	ctx echo.Context,
	apply func(orderID kernel.OrderID, itemID string) error,
) error {
	orderID, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	if err = apply(orderID, ctx.Param("itemId")); err != nil {
		return s.errorJSON(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// SetApprovalRequirement handles POST /api/orders/:id/approval-requirement.
func (s *Server) SetApprovalRequirement(ctx echo.Context) error {
	orderID, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	var req ApprovalRequirementRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetApprovalRequirementCommand(orderID, req.RequiresApproval)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	if err = s.commands.SetApprovalRequirement.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorJSON(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// DecideApproval handles POST /api/orders/:id/approval-decision.
func (s *Server) DecideApproval(ctx echo.Context) error {
	orderID, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	var req ApprovalDecisionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	decision, err := order.ParseApprovalStatus(req.Decision)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	cmd, err := commands.NewDecideApprovalCommand(orderID, decision)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	if err = s.commands.DecideApproval.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorJSON(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// GetDeliveryReadyOrders handles GET /api/delivery/ready.
func (s *Server) GetDeliveryReadyOrders(ctx echo.Context) error {
	orders, err := s.queries.GetDeliveryReady.Handle(
		ctx.Request().Context(), queries.NewGetDeliveryReadyOrdersQuery())
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// PlanRoute handles POST /api/delivery/route-plan.
func (s *Server) PlanRoute(ctx echo.Context) error {
	var req RoutePlanRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderIDs := make([]kernel.OrderID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, err := kernel.ParseOrderID(raw)
		if err != nil {
			return s.errorJSON(ctx, err)
		}
		orderIDs = append(orderIDs, id)
	}

	query, err := queries.NewPlanRouteQuery(orderIDs)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	sequence, err := s.queries.PlanRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RoutePlanResponse{Sequence: sequence})
}

// MigrateOrders handles POST /api/admin/migrate. The body is the legacy
// snapshot itself.
func (s *Server) MigrateOrders(ctx echo.Context) error {
	snapshot, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return badRequest(ctx, "could not read request body")
	}

	cmd, err := commands.NewMigrateOrdersCommand(snapshot)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	result, err := s.commands.MigrateOrders.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// PurgeOrders handles DELETE /api/orders.
func (s *Server) PurgeOrders(ctx echo.Context) error {
	cmd := commands.NewPurgeOrdersCommand()
	if err := s.commands.PurgeOrders.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// respondWithOrder reads the order back after a successful write so the
// caller observes derived changes (recomputed costs, status transitions,
// approval escalation) without a second request.
func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID kernel.OrderID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	view, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(status, view)
}

// bindStrict decodes a JSON body rejecting unknown fields.
func bindStrict(ctx echo.Context, v any) error {
	decoder := json.NewDecoder(ctx.Request().Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorJSON maps application errors onto HTTP status codes.
func (s *Server) errorJSON(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrApprovalRequired),
		errors.Is(err, order.ErrApprovalNotRequested):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrNoItems),
		errors.Is(err, queries.ErrNoOrdersSelected),
		errors.Is(err, services.ErrNotEnoughStops),
		errors.Is(err, services.ErrOrderNotDeliveryReady):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
