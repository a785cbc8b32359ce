package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"production/internal/core/application/usecases/commands"
	"production/internal/core/application/usecases/queries"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/workcenter"
	"production/internal/core/domain/services"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handler is a use case returning a result.
type Handler[Req, Res any] interface {
	Handle(ctx context.Context, req Req) (Res, error)
}

// ActionHandler is a use case returning only an error.
type ActionHandler[Req any] interface {
	Handle(ctx context.Context, req Req) error
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder         Handler[commands.CreateOrderCommand, commands.CreateOrderResult]
	RescheduleOrder     Handler[commands.RescheduleOrderCommand, commands.RescheduleResult]
	ChangeOrderState    Handler[commands.ChangeOrderStateCommand, commands.ChangeStateResult]
	UpdateOrderProgress Handler[commands.UpdateOrderProgressCommand, commands.UpdateProgressResult]
	UpdateOrderDetails  Handler[commands.UpdateOrderDetailsCommand, *order.Order]
	DeleteOrder         ActionHandler[commands.DeleteOrderCommand]
	CreateWorkCenter    Handler[commands.CreateWorkCenterCommand, *workcenter.WorkCenter]
	DeleteWorkCenter    ActionHandler[commands.DeleteWorkCenterCommand]

	GetOrders           Handler[queries.GetOrdersQuery, queries.GetOrdersQueryResponse]
	GetDashboardMetrics Handler[queries.GetDashboardMetricsQuery, queries.GetDashboardMetricsQueryResponse]
	GetWorkCenters      Handler[queries.GetWorkCentersQuery, []queries.GetWorkCentersQueryResponse]
	GetCenterConflicts  Handler[queries.GetCenterConflictsQuery, queries.GetCenterConflictsQueryResponse]
	GetOrderStates      Handler[queries.GetOrderStatesQuery, []queries.OrderStateView]
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	metrics  *services.MetricsCalculator
	openAPI  *openapi3.T
	logger   *slog.Logger
}

// NewServer creates the server. metrics derives the completion and lateness
// fields of orders returned by commands.
func NewServer(
	handlers Handlers,
	metrics *services.MetricsCalculator,
	openAPI *openapi3.T,
	logger *slog.Logger,
) *Server {
	return &Server{
		handlers: handlers,
		metrics:  metrics,
		openAPI:  openAPI,
		logger:   logger.With("component", "http"),
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetOpenAPI handles GET /api/v1/openapi.json.
func (s *Server) GetOpenAPI(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.openAPI)
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context, params GetOrdersParams) error {
	filter, err := orderFilter(params)
	if err != nil {
		return s.fail(ctx, err)
	}

	sorting := services.Sort{}
	if params.Sort != nil {
		field, sortErr := services.ParseSortField(*params.Sort)
		if sortErr != nil {
			return s.fail(ctx, sortErr)
		}
		sorting.Field = field
	}
	if params.Direction != nil {
		switch strings.ToLower(*params.Direction) {
		case "asc":
			sorting.Ascending = true
		case "desc":
		default:
			return badRequest(ctx, "direction must be asc or desc")
		}
	}

	page := services.Page{}
	if params.Page != nil {
		page.Number = *params.Page
	}
	if params.PageSize != nil {
		page.Size = *params.PageSize
	}

	result, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery(filter, sorting, page))
	if err != nil {
		return s.fail(ctx, err)
	}

	items := make([]Order, 0, len(result.Items))
	for _, v := range result.Items {
		items = append(items, toOrder(v.Order, v.Metrics))
	}

	return ctx.JSON(http.StatusOK, OrderPage{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	})
}

func orderFilter(params GetOrdersParams) (services.OrderFilter, error) {
	filter := services.OrderFilter{
		StartFrom:       params.StartFrom,
		StartTo:         params.StartTo,
		ExpectedEndFrom: params.ExpectedEndFrom,
		ExpectedEndTo:   params.ExpectedEndTo,
	}

	if params.State != nil {
		for _, code := range *params.State {
			status, err := order.ParseStatus(code)
			if err != nil {
				return services.OrderFilter{}, err
			}
			filter.States = append(filter.States, status)
		}
	}
	if params.ArticleCode != nil {
		filter.ArticleCode = *params.ArticleCode
	}
	if params.Priority != nil {
		p, err := order.NewPriority(*params.Priority)
		if err != nil {
			return services.OrderFilter{}, err
		}
		filter.Priority = &p
	}

	var err error
	if filter.CenterID, err = toKernelUUIDPtr(params.CenterId); err != nil {
		return services.OrderFilter{}, err
	}
	if filter.OperatorID, err = toKernelUUIDPtr(params.OperatorId); err != nil {
		return services.OrderFilter{}, err
	}
	if filter.OperationTypeID, err = toKernelUUIDPtr(params.OperationTypeId); err != nil {
		return services.OrderFilter{}, err
	}

	return filter, nil
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	centerID, err := toKernelUUID(body.WorkCenterId)
	if err != nil {
		return s.fail(ctx, err)
	}
	operationTypeID, err := toKernelUUID(body.OperationTypeId)
	if err != nil {
		return s.fail(ctx, err)
	}
	operatorID, err := toKernelUUIDPtr(body.OperatorId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), commands.CreateOrderParams{
		Type:               body.BusinessKey.Type,
		Year:               body.BusinessKey.Year,
		Series:             body.BusinessKey.Series,
		Number:             body.BusinessKey.Number,
		Line:               body.BusinessKey.Line,
		ArticleCode:        body.ArticleCode,
		ArticleDescription: body.ArticleDescription,
		UnitOfMeasure:      body.UnitOfMeasure,
		OrderedQuantity:    body.OrderedQuantity,
		CycleTime:          body.CycleTime,
		SetupStart:         body.SetupStart,
		SetupDuration:      time.Duration(body.SetupMinutes) * time.Minute,
		WorkCenterID:       centerID,
		OperationTypeID:    operationTypeID,
		OperatorID:         operatorID,
		Start:              body.Start,
		ExpectedEnd:        body.ExpectedEnd,
		Priority:           body.Priority,
		Notes:              body.Notes,
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ScheduleResult{
		Order:     toOrder(result.Order, s.metrics.ForOrder(result.Order)),
		Conflicts: toUUIDs(result.Conflicts),
	})
}

// RescheduleOrder handles PUT /api/v1/orders/{id}/schedule.
func (s *Server) RescheduleOrder(ctx echo.Context, id openapi_types.UUID) error {
	var body RescheduleRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	centerID, err := toKernelUUID(body.CenterId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRescheduleOrderCommand(orderID, centerID, body.Start, body.End)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.RescheduleOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ScheduleResult{
		Order:     toOrder(result.Order, s.metrics.ForOrder(result.Order)),
		Conflicts: toUUIDs(result.Conflicts),
	})
}

// ChangeOrderState handles PUT /api/v1/orders/{id}/state.
func (s *Server) ChangeOrderState(ctx echo.Context, id openapi_types.UUID) error {
	var body ChangeStateRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStateCommand(orderID, body.TargetStateCode)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.ChangeOrderState.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ChangeStateResult{
		Order: toOrder(result.Order, s.metrics.ForOrder(result.Order)),
	})
}

// UpdateOrderProgress handles PUT /api/v1/orders/{id}/progress.
func (s *Server) UpdateOrderProgress(ctx echo.Context, id openapi_types.UUID) error {
	var body ProgressRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderProgressCommand(orderID, body.ProducedQuantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.UpdateOrderProgress.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProgressResult{
		Order:                toOrder(result.Order, s.metrics.ForOrder(result.Order)),
		CompletionPercentage: result.CompletionPercentage,
	})
}

// UpdateOrder handles PATCH /api/v1/orders/{id}.
func (s *Server) UpdateOrder(ctx echo.Context, id openapi_types.UUID) error {
	var body OrderChanges
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := toKernelUUID(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	operatorID, err := toKernelUUIDPtr(body.OperatorId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderDetailsCommand(orderID, commands.OrderDetailsChanges{
		Notes:         body.Notes,
		OperatorID:    operatorID,
		ClearOperator: body.ClearOperator,
		Priority:      body.Priority,
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.UpdateOrderDetails.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(updated, s.metrics.ForOrder(updated)))
}

// DeleteOrder handles DELETE /api/v1/orders/{id}.
func (s *Server) DeleteOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := toKernelUUID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMetrics handles GET /api/v1/metrics.
func (s *Server) GetMetrics(ctx echo.Context, params GetMetricsParams) error {
	centerID, err := toKernelUUIDPtr(params.CenterId)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.GetDashboardMetrics.Handle(ctx.Request().Context(),
		queries.NewGetDashboardMetricsQuery(centerID))
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMetrics(result))
}

// GetOrderStates handles GET /api/v1/order-states.
func (s *Server) GetOrderStates(ctx echo.Context) error {
	states, err := s.handlers.GetOrderStates.Handle(ctx.Request().Context(), queries.NewGetOrderStatesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]OrderState, 0, len(states))
	for _, st := range states {
		response = append(response, OrderState{
			Code:         st.Code,
			Description:  st.Description,
			DisplayOrder: st.DisplayOrder,
			Active:       st.Active,
			Color:        st.Color,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWorkCenters handles GET /api/v1/work-centers.
func (s *Server) GetWorkCenters(ctx echo.Context, params GetWorkCentersParams) error {
	activeOnly := params.ActiveOnly != nil && *params.ActiveOnly

	rows, err := s.handlers.GetWorkCenters.Handle(ctx.Request().Context(), queries.NewGetWorkCentersQuery(activeOnly))
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]WorkCenter, 0, len(rows))
	for _, r := range rows {
		response = append(response, fromWorkCenterRow(r))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateWorkCenter handles POST /api/v1/work-centers.
func (s *Server) CreateWorkCenter(ctx echo.Context) error {
	var body NewWorkCenter
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	active := body.Active == nil || *body.Active
	cmd, err := commands.NewCreateWorkCenterCommand(kernel.NewUUID(), workcenter.Attributes{
		Code:             body.Code,
		Description:      body.Description,
		Active:           active,
		HourlyCapacity:   body.HourlyCapacity,
		StandardHourCost: body.StandardHourCost,
		Notes:            body.Notes,
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	wc, err := s.handlers.CreateWorkCenter.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromWorkCenter(wc))
}

// DeleteWorkCenter handles DELETE /api/v1/work-centers/{id}.
func (s *Server) DeleteWorkCenter(ctx echo.Context, id openapi_types.UUID) error {
	centerID, err := toKernelUUID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteWorkCenterCommand(centerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteWorkCenter.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCenterConflicts handles GET /api/v1/work-centers/{id}/conflicts.
func (s *Server) GetCenterConflicts(ctx echo.Context, id openapi_types.UUID, params GetCenterConflictsParams) error {
	centerID, err := toKernelUUID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	exclude, err := toKernelUUIDPtr(params.ExcludeOrderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetCenterConflictsQuery(centerID, params.Start, params.End, exclude)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.GetCenterConflicts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCenterConflicts(result))
}
