package http

import (
	"context"
	"net/http"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type (
	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	transitionOrderHandler interface {
		Handle(ctx context.Context, cmd commands.TransitionOrderStatusCommand) (commands.TransitionOrderStatusResult, error)
	}
	nextStatusesHandler interface {
		Handle(ctx context.Context, q queries.GetAllowedNextStatusesQuery) (queries.GetAllowedNextStatusesQueryResponse, error)
	}
	statusCountsHandler interface {
		Handle(ctx context.Context, q queries.GetStatusCountsQuery) (queries.GetStatusCountsQueryResponse, error)
	}
	orderHistoryHandler interface {
		Handle(ctx context.Context, q queries.GetOrderHistoryQuery) (queries.GetOrderHistoryQueryResponse, error)
	}
	recentActivityHandler interface {
		Handle(ctx context.Context, q queries.GetRecentActivityQuery) ([]queries.ActivityEntry, error)
	}
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     createOrderHandler
	transitionOrderHandler transitionOrderHandler

	// Query handlers
	nextStatusesHandler   nextStatusesHandler
	statusCountsHandler   statusCountsHandler
	orderHistoryHandler   orderHistoryHandler
	recentActivityHandler recentActivityHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrder createOrderHandler,
	transitionOrder transitionOrderHandler,
	nextStatuses nextStatusesHandler,
	statusCounts statusCountsHandler,
	orderHistory orderHistoryHandler,
	recentActivity recentActivityHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrder,
		transitionOrderHandler: transitionOrder,
		nextStatusesHandler:    nextStatuses,
		statusCountsHandler:    statusCounts,
		orderHistoryHandler:    orderHistory,
		recentActivityHandler:  recentActivity,
	}
}

// CreateOrder handles POST /api/v1/orders.
//
//	@Summary	Open a new work order in the planned status
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		servers.NewOrder	true	"Order"
//	@Success	201		{object}	servers.CreatedOrder
//	@Failure	400		{object}	servers.Error
//	@Router		/api/v1/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var lines []order.MaterialLine
	if body.Materials != nil {
		lines = make([]order.MaterialLine, 0, len(*body.Materials))
		for _, m := range *body.Materials {
			quantity, err := decimal.NewFromString(m.Quantity)
			if err != nil {
				return badRequest(ctx, "Invalid quantity for material "+m.MaterialId)
			}

			var name string
			if m.Name != nil {
				name = *m.Name
			}

			line, err := order.NewMaterialLine(m.MaterialId, name, quantity)
			if err != nil {
				return badRequest(ctx, "Invalid material line: "+err.Error())
			}
			lines = append(lines, line)
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, body.Title, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{Id: orderID.Bytes()})
}

// TransitionOrder handles POST /api/v1/orders/{orderId}/transitions.
//
//	@Summary	Move an order to another status
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId		path		string						true	"Order ID"	format(uuid)
//	@Param		transition	body		servers.TransitionRequest	true	"Target status"
//	@Success	200			{object}	servers.Transition
//	@Failure	400			{object}	servers.Error
//	@Failure	404			{object}	servers.Error
//	@Failure	409			{object}	servers.Error
//	@Failure	422			{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/transitions [post]
func (s *Server) TransitionOrder(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.TransitionRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+body.Status)
	}

	var reason string
	if body.Reason != nil {
		reason = *body.Reason
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(id, target, reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Transition{
		OrderId: result.OrderID.Bytes(),
		From:    result.From.String(),
		To:      result.To.String(),
	})
}

// GetNextStatuses handles GET /api/v1/orders/{orderId}/next-statuses.
//
//	@Summary	Statuses the order may move to next
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path		string	true	"Order ID"	format(uuid)
//	@Success	200		{object}	servers.NextStatuses
//	@Failure	404		{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/next-statuses [get]
func (s *Server) GetNextStatuses(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetAllowedNextStatusesQuery(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.nextStatusesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	options := make([]servers.StatusOption, 0, len(resp.Options))
	for _, o := range resp.Options {
		options = append(options, servers.StatusOption{
			Status:         o.Status.String(),
			Label:          o.Label,
			Icon:           o.Icon,
			RequiresReason: o.RequiresReason,
		})
	}

	return ctx.JSON(http.StatusOK, servers.NextStatuses{
		OrderId: resp.OrderID.Bytes(),
		Current: resp.Current.String(),
		Options: options,
	})
}

// GetStatusCounts handles GET /api/v1/orders/status-counts.
//
//	@Summary	Number of orders per status
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	servers.StatusCounts
//	@Router		/api/v1/orders/status-counts [get]
func (s *Server) GetStatusCounts(ctx echo.Context) error {
	resp, err := s.statusCountsHandler.Handle(ctx.Request().Context(), queries.NewGetStatusCountsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	counts := make([]servers.StatusCount, 0, len(resp.Counts))
	for _, c := range resp.Counts {
		counts = append(counts, servers.StatusCount{
			Status: c.Status.String(),
			Label:  c.Label,
			Icon:   c.Icon,
			Count:  c.Count,
		})
	}

	return ctx.JSON(http.StatusOK, servers.StatusCounts{Total: resp.Total, Counts: counts})
}

// GetOrderHistory handles GET /api/v1/orders/{orderId}/history.
//
//	@Summary	Audit trail and time spent per status
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path		string	true	"Order ID"	format(uuid)
//	@Success	200		{object}	servers.OrderHistory
//	@Failure	404		{object}	servers.Error
//	@Router		/api/v1/orders/{orderId}/history [get]
func (s *Server) GetOrderHistory(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderHistoryQuery(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.orderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	entries := make([]servers.HistoryEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		entries = append(entries, servers.HistoryEntry{
			OccurredAt:  e.OccurredAt,
			Action:      e.Action,
			From:        e.From.String(),
			To:          e.To.String(),
			Description: e.Description,
			Reason:      optional(e.Reason),
		})
	}

	durations := make([]servers.StatusDuration, 0, len(resp.TimeInStatus))
	for _, d := range resp.TimeInStatus {
		durations = append(durations, servers.StatusDuration{
			Status:     d.Status.String(),
			Label:      d.Label,
			DurationMs: d.Duration.Milliseconds(),
		})
	}

	return ctx.JSON(http.StatusOK, servers.OrderHistory{
		OrderId:      resp.OrderID.Bytes(),
		Title:        resp.Title,
		Status:       resp.Status.String(),
		StatusReason: optional(resp.StatusReason),
		Entries:      entries,
		TimeInStatus: durations,
	})
}

// GetActivity handles GET /api/v1/activity.
//
//	@Summary	Newest activity timeline entries
//	@Tags		activity
//	@Produce	json
//	@Param		limit	query		int	false	"Number of entries (1-200)"
//	@Success	200		{array}		servers.ActivityEntry
//	@Failure	400		{object}	servers.Error
//	@Router		/api/v1/activity [get]
func (s *Server) GetActivity(ctx echo.Context, params servers.GetActivityParams) error {
	limit := queries.DefaultActivityLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetRecentActivityQuery(limit)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entries, err := s.recentActivityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.ActivityEntry, 0, len(entries))
	for _, e := range entries {
		response = append(response, servers.ActivityEntry{
			Icon:       e.Icon,
			Summary:    e.Summary,
			RecordedAt: e.RecordedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
