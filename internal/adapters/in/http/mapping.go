package http

import (
	"production/internal/core/application/usecases/queries"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/workcenter"
	"production/internal/core/domain/services"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toKernelUUIDPtr(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	k, err := toKernelUUID(*id)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func toUUIDs(ids []kernel.UUID) []openapi_types.UUID {
	out := make([]openapi_types.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Bytes())
	}
	return out
}

func toOrder(o *order.Order, m services.OrderMetrics) Order {
	key := o.Key()
	article := o.Article()

	var operatorID *openapi_types.UUID
	if id := o.OperatorID(); id != nil {
		raw := id.Bytes()
		operatorID = &raw
	}

	return Order{
		Id: o.ID().Bytes(),
		BusinessKey: BusinessKey{
			Type:   key.Type(),
			Year:   key.Year(),
			Series: key.Series(),
			Number: key.Number(),
			Line:   key.Line(),
		},
		ArticleCode:          article.Code(),
		ArticleDescription:   article.Description(),
		UnitOfMeasure:        article.UnitOfMeasure(),
		OrderedQuantity:      o.OrderedQuantity(),
		ProducedQuantity:     o.ProducedQuantity(),
		CycleTime:            o.CycleTime(),
		WorkCenterId:         o.WorkCenterID().Bytes(),
		OperationTypeId:      o.OperationTypeID().Bytes(),
		OperatorId:           operatorID,
		Start:                o.Start(),
		ExpectedEnd:          o.ExpectedEnd(),
		ActualEnd:            o.ActualEnd(),
		Priority:             int(o.Priority()),
		PriorityColor:        o.Priority().Color(),
		State:                o.Status().Code(),
		StateColor:           o.Status().Color(),
		Notes:                o.Notes(),
		Version:              o.Version(),
		CompletionPercentage: m.CompletionPercentage,
		Lateness:             m.Lateness.String(),
		Urgent:               m.Urgent,
	}
}

func toMetrics(r queries.GetDashboardMetricsQueryResponse) Metrics {
	byState := make(map[string]int, len(r.Metrics.ByState))
	for s, n := range r.Metrics.ByState {
		byState[s.Code()] = n
	}
	byLateness := make(map[string]int, len(r.Metrics.ByLateness))
	for l, n := range r.Metrics.ByLateness {
		byLateness[l.String()] = n
	}

	centers := make([]CenterMetrics, 0, len(r.Centers))
	for _, c := range r.Centers {
		centers = append(centers, CenterMetrics{
			CenterId:          c.CenterID.Bytes(),
			Code:              c.Code,
			Description:       c.Description,
			Total:             c.Stats.Total,
			Open:              c.Stats.Open,
			AverageCompletion: c.Stats.AverageCompletion,
		})
	}

	return Metrics{
		Total:            r.Metrics.Total,
		ByState:          byState,
		ByLateness:       byLateness,
		Urgent:           r.Metrics.Urgent,
		Overdue:          r.Metrics.Overdue,
		OrderedQuantity:  r.Metrics.OrderedQuantity,
		ProducedQuantity: r.Metrics.ProducedQuantity,
		Centers:          centers,
		GeneratedAt:      r.Metrics.GeneratedAt,
	}
}

func fromWorkCenterRow(r queries.GetWorkCentersQueryResponse) WorkCenter {
	return WorkCenter{
		Id:               r.ID.Bytes(),
		Code:             r.Code,
		Description:      r.Description,
		Active:           r.Active,
		HourlyCapacity:   r.HourlyCapacity,
		StandardHourCost: r.StandardHourCost,
		Notes:            r.Notes,
		TotalOrders:      r.TotalOrders,
		OpenOrders:       r.OpenOrders,
	}
}

func fromWorkCenter(wc *workcenter.WorkCenter) WorkCenter {
	return WorkCenter{
		Id:               wc.ID().Bytes(),
		Code:             wc.Code(),
		Description:      wc.Description(),
		Active:           wc.IsActive(),
		HourlyCapacity:   wc.HourlyCapacity(),
		StandardHourCost: wc.StandardHourCost(),
		Notes:            wc.Notes(),
	}
}

func toCenterConflicts(r queries.GetCenterConflictsQueryResponse) CenterConflicts {
	entries := make([]CalendarEntry, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, CalendarEntry{
			OrderId: e.OrderID.Bytes(),
			Start:   e.Window.Start(),
			End:     e.Window.EndOrNil(),
		})
	}
	return CenterConflicts{
		CenterId: r.CenterID.Bytes(),
		Start:    r.Window.Start(),
		End:      r.Window.EndOrNil(),
		Entries:  entries,
	}
}
