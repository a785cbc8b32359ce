package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// ServerInterface lists the operations of openapi.json.
type ServerInterface interface {
	GetHealth(ctx echo.Context) error
	GetOpenAPI(ctx echo.Context) error
	GetOrders(ctx echo.Context, params GetOrdersParams) error
	CreateOrder(ctx echo.Context) error
	UpdateOrder(ctx echo.Context, id openapi_types.UUID) error
	DeleteOrder(ctx echo.Context, id openapi_types.UUID) error
	RescheduleOrder(ctx echo.Context, id openapi_types.UUID) error
	ChangeOrderState(ctx echo.Context, id openapi_types.UUID) error
	UpdateOrderProgress(ctx echo.Context, id openapi_types.UUID) error
	GetMetrics(ctx echo.Context, params GetMetricsParams) error
	GetOrderStates(ctx echo.Context) error
	GetWorkCenters(ctx echo.Context, params GetWorkCentersParams) error
	CreateWorkCenter(ctx echo.Context) error
	DeleteWorkCenter(ctx echo.Context, id openapi_types.UUID) error
	GetCenterConflicts(ctx echo.Context, id openapi_types.UUID, params GetCenterConflictsParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindID(ctx echo.Context) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

func bindQuery(ctx echo.Context, name string, required bool, dest any) error {
	if err := runtime.BindQueryParameter("form", true, required, name, ctx.QueryParams(), dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func (w *ServerInterfaceWrapper) GetOpenAPI(ctx echo.Context) error {
	return w.Handler.GetOpenAPI(ctx)
}

func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var params GetOrdersParams
	for name, dest := range map[string]any{
		"state":           &params.State,
		"centerId":        &params.CenterId,
		"operatorId":      &params.OperatorId,
		"operationTypeId": &params.OperationTypeId,
		"articleCode":     &params.ArticleCode,
		"priority":        &params.Priority,
		"startFrom":       &params.StartFrom,
		"startTo":         &params.StartTo,
		"expectedEndFrom": &params.ExpectedEndFrom,
		"expectedEndTo":   &params.ExpectedEndTo,
		"sort":            &params.Sort,
		"direction":       &params.Direction,
		"page":            &params.Page,
		"pageSize":        &params.PageSize,
	} {
		if err := bindQuery(ctx, name, false, dest); err != nil {
			return err
		}
	}
	return w.Handler.GetOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) RescheduleOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RescheduleOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) ChangeOrderState(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderState(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateOrderProgress(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderProgress(ctx, id)
}

func (w *ServerInterfaceWrapper) GetMetrics(ctx echo.Context) error {
	var params GetMetricsParams
	if err := bindQuery(ctx, "centerId", false, &params.CenterId); err != nil {
		return err
	}
	return w.Handler.GetMetrics(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrderStates(ctx echo.Context) error {
	return w.Handler.GetOrderStates(ctx)
}

func (w *ServerInterfaceWrapper) GetWorkCenters(ctx echo.Context) error {
	var params GetWorkCentersParams
	if err := bindQuery(ctx, "activeOnly", false, &params.ActiveOnly); err != nil {
		return err
	}
	return w.Handler.GetWorkCenters(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateWorkCenter(ctx echo.Context) error {
	return w.Handler.CreateWorkCenter(ctx)
}

func (w *ServerInterfaceWrapper) DeleteWorkCenter(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteWorkCenter(ctx, id)
}

func (w *ServerInterfaceWrapper) GetCenterConflicts(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	var params GetCenterConflictsParams
	if err = bindQuery(ctx, "start", true, &params.Start); err != nil {
		return err
	}
	if err = bindQuery(ctx, "end", false, &params.End); err != nil {
		return err
	}
	if err = bindQuery(ctx, "excludeOrderId", false, &params.ExcludeOrderId); err != nil {
		return err
	}
	return w.Handler.GetCenterConflicts(ctx, id, params)
}

// RegisterHandlers mounts every operation on router.
func RegisterHandlers(router *echo.Echo, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET("/health", w.GetHealth)

	api := router.Group("/api/v1")
	api.GET("/openapi.json", w.GetOpenAPI)
	api.GET("/orders", w.GetOrders)
	api.POST("/orders", w.CreateOrder)
	api.PATCH("/orders/:id", w.UpdateOrder)
	api.DELETE("/orders/:id", w.DeleteOrder)
	api.PUT("/orders/:id/schedule", w.RescheduleOrder)
	api.PUT("/orders/:id/state", w.ChangeOrderState)
	api.PUT("/orders/:id/progress", w.UpdateOrderProgress)
	api.GET("/metrics", w.GetMetrics)
	api.GET("/order-states", w.GetOrderStates)
	api.GET("/work-centers", w.GetWorkCenters)
	api.POST("/work-centers", w.CreateWorkCenter)
	api.DELETE("/work-centers/:id", w.DeleteWorkCenter)
	api.GET("/work-centers/:id/conflicts", w.GetCenterConflicts)
}

// NewEcho builds the HTTP router with request logging, panic recovery and the
// Swagger UI.
func NewEcho(logger *slog.Logger, si ServerInterface) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	RegisterHandlers(e, si)
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/api/v1/openapi.json")))

	return e
}
