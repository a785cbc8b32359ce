package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "production/internal/adapters/in/http"
	"production/internal/core/application/usecases/commands"
	"production/internal/core/application/usecases/queries"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/services"
	"production/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerFunc[Req, Res any] func(ctx context.Context, req Req) (Res, error)

func (f handlerFunc[Req, Res]) Handle(ctx context.Context, req Req) (Res, error) {
	return f(ctx, req)
}

type actionFunc[Req any] func(ctx context.Context, req Req) error

func (f actionFunc[Req]) Handle(ctx context.Context, req Req) error {
	return f(ctx, req)
}

var now = time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)

func newTestEcho(t *testing.T, handlers httpin.Handlers) *echo.Echo {
	t.Helper()
	doc, err := httpin.LoadOpenAPI(t.Context())
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := services.NewMetricsCalculator(kernel.NewFixedClock(now), time.UTC)
	server := httpin.NewServer(handlers, metrics, doc, logger)
	return httpin.NewEcho(logger, server)
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newOrder(t *testing.T, center kernel.UUID) *order.Order {
	t.Helper()
	key, err := order.NewBusinessKey("ODP", 2025, "A", 7, 1)
	require.NoError(t, err)
	article, err := order.NewArticle("BRK-100", "Bracket", "pcs")
	require.NoError(t, err)
	end := now.Add(8 * time.Hour)
	o, err := order.NewOrder(kernel.NewUUID(), key, order.Details{
		Article:         article,
		OrderedQuantity: decimal.NewFromInt(100),
		WorkCenterID:    center,
		OperationTypeID: kernel.NewUUID(),
		Start:           now,
		ExpectedEnd:     &end,
	})
	require.NoError(t, err)
	return o
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpin.Error {
	t.Helper()
	var body httpin.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestLoadOpenAPI(t *testing.T) {
	doc, err := httpin.LoadOpenAPI(t.Context())

	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/api/v1/orders"))
	assert.NotNil(t, doc.Paths.Find("/api/v1/work-centers/{id}/conflicts"))
}

func TestHealth(t *testing.T) {
	e := newTestEcho(t, httpin.Handlers{})

	rec := do(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestGetOpenAPI(t *testing.T) {
	e := newTestEcho(t, httpin.Handlers{})

	rec := do(e, http.MethodGet, "/api/v1/openapi.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"openapi":"3.0.3"`)
}

func TestCreateOrder_ReturnsOrderAndConflicts(t *testing.T) {
	center := kernel.NewUUID()
	neighbour := kernel.NewUUID()
	var got commands.CreateOrderCommand
	created := newOrder(t, center)

	e := newTestEcho(t, httpin.Handlers{
		CreateOrder: handlerFunc[commands.CreateOrderCommand, commands.CreateOrderResult](
			func(_ context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error) {
				got = cmd
				return commands.CreateOrderResult{Order: created, Conflicts: []kernel.UUID{neighbour}}, nil
			}),
	})

	body := `{
		"businessKey": {"type": "ODP", "year": 2025, "series": "A", "number": 7, "line": 1},
		"articleCode": "BRK-100",
		"orderedQuantity": "100",
		"workCenterId": "` + center.String() + `",
		"operationTypeId": "` + kernel.NewUUID().String() + `",
		"start": "2025-06-16T09:00:00Z",
		"expectedEnd": "2025-06-16T17:00:00Z",
		"priority": 2
	}`
	rec := do(e, http.MethodPost, "/api/v1/orders", body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, got.WorkCenterID().IsEqual(center))

	var result httpin.ScheduleResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ISSUED", result.Order.State)
	assert.Equal(t, "BRK-100", result.Order.ArticleCode)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, neighbour.String(), result.Conflicts[0].String())
}

func TestCreateOrder_InvalidBodyIsBadRequest(t *testing.T) {
	e := newTestEcho(t, httpin.Handlers{})

	rec := do(e, http.MethodPost, "/api/v1/orders", `{"businessKey": {"type": ""}, "articleCode": ""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRescheduleOrder_EndBeforeStartIsBadRequest(t *testing.T) {
	called := false
	e := newTestEcho(t, httpin.Handlers{
		RescheduleOrder: handlerFunc[commands.RescheduleOrderCommand, commands.RescheduleResult](
			func(context.Context, commands.RescheduleOrderCommand) (commands.RescheduleResult, error) {
				called = true
				return commands.RescheduleResult{}, nil
			}),
	})

	body := `{"centerId": "` + kernel.NewUUID().String() + `", "start": "2025-06-16T12:00:00Z", "end": "2025-06-16T08:00:00Z"}`
	rec := do(e, http.MethodPut, "/api/v1/orders/"+kernel.NewUUID().String()+"/schedule", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestRescheduleOrder_MalformedIDIsBadRequest(t *testing.T) {
	e := newTestEcho(t, httpin.Handlers{})

	rec := do(e, http.MethodPut, "/api/v1/orders/not-a-uuid/schedule", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorMapping(t *testing.T) {
	id := kernel.NewUUID()
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", errs.NewObjectNotFoundError("order", id), http.StatusNotFound},
		{"concurrency conflict", errs.NewConcurrencyConflictError("order", id, 3), http.StatusConflict},
		{"unknown state", errs.NewUnknownStateError("DONE"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("producedQuantity", -1, 0, nil), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t, httpin.Handlers{
				ChangeOrderState: handlerFunc[commands.ChangeOrderStateCommand, commands.ChangeStateResult](
					func(context.Context, commands.ChangeOrderStateCommand) (commands.ChangeStateResult, error) {
						return commands.ChangeStateResult{}, tt.err
					}),
			})

			rec := do(e, http.MethodPut, "/api/v1/orders/"+id.String()+"/state", `{"targetStateCode": "CLOSED"}`)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestInternalErrorHidesDetails(t *testing.T) {
	e := newTestEcho(t, httpin.Handlers{
		DeleteOrder: actionFunc[commands.DeleteOrderCommand](func(context.Context, commands.DeleteOrderCommand) error {
			return errors.New("connection refused to 10.0.0.5")
		}),
	})

	rec := do(e, http.MethodDelete, "/api/v1/orders/"+kernel.NewUUID().String(), "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestDeleteWorkCenter(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		e := newTestEcho(t, httpin.Handlers{
			DeleteWorkCenter: actionFunc[commands.DeleteWorkCenterCommand](
				func(context.Context, commands.DeleteWorkCenterCommand) error { return nil }),
		})

		rec := do(e, http.MethodDelete, "/api/v1/work-centers/"+kernel.NewUUID().String(), "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("referenced", func(t *testing.T) {
		id := kernel.NewUUID()
		e := newTestEcho(t, httpin.Handlers{
			DeleteWorkCenter: actionFunc[commands.DeleteWorkCenterCommand](
				func(context.Context, commands.DeleteWorkCenterCommand) error {
					return errs.NewObjectIsReferencedError("work center", id, "orders", 2)
				}),
		})

		rec := do(e, http.MethodDelete, "/api/v1/work-centers/"+id.String(), "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestGetOrders_TranslatesParameters(t *testing.T) {
	center := kernel.NewUUID()
	var got queries.GetOrdersQuery
	e := newTestEcho(t, httpin.Handlers{
		GetOrders: handlerFunc[queries.GetOrdersQuery, queries.GetOrdersQueryResponse](
			func(_ context.Context, q queries.GetOrdersQuery) (queries.GetOrdersQueryResponse, error) {
				got = q
				return queries.GetOrdersQueryResponse{Total: 0, Page: 2, PageSize: 10}, nil
			}),
	})

	rec := do(e, http.MethodGet,
		"/api/v1/orders?state=ISSUED&state=urgent&centerId="+center.String()+
			"&sort=priority&direction=asc&page=2&pageSize=10&startFrom=2025-06-01T00:00:00Z", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	filter := got.Filter()
	assert.Equal(t, []order.Status{order.Issued, order.Urgent}, filter.States)
	require.NotNil(t, filter.CenterID)
	assert.True(t, filter.CenterID.IsEqual(center))
	require.NotNil(t, filter.StartFrom)
	assert.True(t, filter.StartFrom.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, services.SortByPriority, got.Sort().Field)
	assert.True(t, got.Sort().Ascending)
	assert.Equal(t, services.Page{Number: 2, Size: 10}, got.Page())

	var page httpin.OrderPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Empty(t, page.Items)
	assert.Equal(t, 2, page.Page)
}

func TestGetOrders_RejectsUnknownState(t *testing.T) {
	e := newTestEcho(t, httpin.Handlers{})

	rec := do(e, http.MethodGet, "/api/v1/orders?state=ARCHIVED", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrders_RejectsUnknownDirection(t *testing.T) {
	e := newTestEcho(t, httpin.Handlers{})

	rec := do(e, http.MethodGet, "/api/v1/orders?direction=sideways", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCenterConflicts(t *testing.T) {
	center := kernel.NewUUID()
	other := kernel.NewUUID()

	e := newTestEcho(t, httpin.Handlers{
		GetCenterConflicts: handlerFunc[queries.GetCenterConflictsQuery, queries.GetCenterConflictsQueryResponse](
			func(_ context.Context, q queries.GetCenterConflictsQuery) (queries.GetCenterConflictsQueryResponse, error) {
				return queries.GetCenterConflictsQueryResponse{
					CenterID: q.CenterID(),
					Window:   q.Window(),
					Entries: []services.CalendarEntry{
						{CenterID: q.CenterID(), OrderID: other, Window: q.Window()},
					},
				}, nil
			}),
	})

	t.Run("start is required", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/work-centers/"+center.String()+"/conflicts", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("lists overlapping entries", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/v1/work-centers/"+center.String()+
			"/conflicts?start=2025-06-16T08:00:00Z&end=2025-06-16T12:00:00Z", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body httpin.CenterConflicts
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Entries, 1)
		assert.Equal(t, other.String(), body.Entries[0].OrderId.String())
		require.NotNil(t, body.End)
	})

	t.Run("passes the excluded order", func(t *testing.T) {
		var got queries.GetCenterConflictsQuery
		excluded := kernel.NewUUID()
		e := newTestEcho(t, httpin.Handlers{
			GetCenterConflicts: handlerFunc[queries.GetCenterConflictsQuery, queries.GetCenterConflictsQueryResponse](
				func(_ context.Context, q queries.GetCenterConflictsQuery) (queries.GetCenterConflictsQueryResponse, error) {
					got = q
					return queries.GetCenterConflictsQueryResponse{CenterID: q.CenterID(), Window: q.Window()}, nil
				}),
		})

		rec := do(e, http.MethodGet, "/api/v1/work-centers/"+center.String()+
			"/conflicts?start=2025-06-16T08:00:00Z&excludeOrderId="+excluded.String(), "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.NotNil(t, got.Exclude())
		assert.True(t, got.Exclude().IsEqual(excluded))
	})
}

func TestGetOrderStates(t *testing.T) {
	e := newTestEcho(t, httpin.Handlers{
		GetOrderStates: handlerFunc[queries.GetOrderStatesQuery, []queries.OrderStateView](
			func(context.Context, queries.GetOrderStatesQuery) ([]queries.OrderStateView, error) {
				infos := order.DefaultStateInfos()
				views := make([]queries.OrderStateView, 0, len(infos))
				for _, info := range infos {
					views = append(views, queries.OrderStateView{StateInfo: info, Color: info.Status.Color()})
				}
				return views, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/order-states", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var states []httpin.OrderState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &states))
	require.Len(t, states, 5)
	assert.Equal(t, "ISSUED", states[0].Code)
	assert.False(t, states[4].Active)
}
