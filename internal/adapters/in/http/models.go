package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type BusinessKey struct {
	Type   string `json:"type"`
	Year   int    `json:"year"`
	Series string `json:"series"`
	Number int    `json:"number"`
	Line   int    `json:"line"`
}

type Order struct {
	Id                   openapi_types.UUID  `json:"id"`
	BusinessKey          BusinessKey         `json:"businessKey"`
	ArticleCode          string              `json:"articleCode"`
	ArticleDescription   string              `json:"articleDescription,omitempty"`
	UnitOfMeasure        string              `json:"unitOfMeasure,omitempty"`
	OrderedQuantity      decimal.Decimal     `json:"orderedQuantity"`
	ProducedQuantity     decimal.Decimal     `json:"producedQuantity"`
	CycleTime            float64             `json:"cycleTime"`
	WorkCenterId         openapi_types.UUID  `json:"workCenterId"`
	OperationTypeId      openapi_types.UUID  `json:"operationTypeId"`
	OperatorId           *openapi_types.UUID `json:"operatorId"`
	Start                time.Time           `json:"start"`
	ExpectedEnd          *time.Time          `json:"expectedEnd"`
	ActualEnd            *time.Time          `json:"actualEnd"`
	Priority             int                 `json:"priority"`
	PriorityColor        string              `json:"priorityColor"`
	State                string              `json:"state"`
	StateColor           string              `json:"stateColor"`
	Notes                string              `json:"notes"`
	Version              int64               `json:"version"`
	CompletionPercentage decimal.Decimal     `json:"completionPercentage"`
	Lateness             string              `json:"lateness,omitempty"`
	Urgent               bool                `json:"urgent"`
}

type OrderPage struct {
	Items      []Order `json:"items"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	TotalPages int     `json:"totalPages"`
}

type NewOrder struct {
	BusinessKey        BusinessKey         `json:"businessKey"`
	ArticleCode        string              `json:"articleCode"`
	ArticleDescription string              `json:"articleDescription"`
	UnitOfMeasure      string              `json:"unitOfMeasure"`
	OrderedQuantity    decimal.Decimal     `json:"orderedQuantity"`
	CycleTime          float64             `json:"cycleTime"`
	SetupStart         *time.Time          `json:"setupStart"`
	SetupMinutes       int                 `json:"setupMinutes"`
	WorkCenterId       openapi_types.UUID  `json:"workCenterId"`
	OperationTypeId    openapi_types.UUID  `json:"operationTypeId"`
	OperatorId         *openapi_types.UUID `json:"operatorId"`
	Start              time.Time           `json:"start"`
	ExpectedEnd        *time.Time          `json:"expectedEnd"`
	Priority           int                 `json:"priority"`
	Notes              string              `json:"notes"`
}

type OrderChanges struct {
	Notes         *string             `json:"notes"`
	OperatorId    *openapi_types.UUID `json:"operatorId"`
	ClearOperator bool                `json:"clearOperator"`
	Priority      *int                `json:"priority"`
}

type RescheduleRequest struct {
	CenterId openapi_types.UUID `json:"centerId"`
	Start    time.Time          `json:"start"`
	End      *time.Time         `json:"end"`
}

// ScheduleResult answers order creation and rescheduling. Conflicts are warnings.
type ScheduleResult struct {
	Order     Order                `json:"order"`
	Conflicts []openapi_types.UUID `json:"conflicts"`
}

type ChangeStateRequest struct {
	TargetStateCode string `json:"targetStateCode"`
}

type ChangeStateResult struct {
	Order Order `json:"order"`
}

type ProgressRequest struct {
	ProducedQuantity decimal.Decimal `json:"producedQuantity"`
}

type ProgressResult struct {
	Order                Order           `json:"order"`
	CompletionPercentage decimal.Decimal `json:"completionPercentage"`
}

type CenterMetrics struct {
	CenterId          openapi_types.UUID `json:"centerId"`
	Code              string             `json:"code"`
	Description       string             `json:"description"`
	Total             int                `json:"total"`
	Open              int                `json:"open"`
	AverageCompletion decimal.Decimal    `json:"averageCompletion"`
}

type Metrics struct {
	Total            int             `json:"total"`
	ByState          map[string]int  `json:"byState"`
	ByLateness       map[string]int  `json:"byLateness"`
	Urgent           int             `json:"urgent"`
	Overdue          int             `json:"overdue"`
	OrderedQuantity  decimal.Decimal `json:"orderedQuantity"`
	ProducedQuantity decimal.Decimal `json:"producedQuantity"`
	Centers          []CenterMetrics `json:"centers"`
	GeneratedAt      time.Time       `json:"generatedAt"`
}

type OrderState struct {
	Code         string `json:"code"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
	Active       bool   `json:"active"`
	Color        string `json:"color"`
}

type WorkCenter struct {
	Id               openapi_types.UUID `json:"id"`
	Code             string             `json:"code"`
	Description      string             `json:"description"`
	Active           bool               `json:"active"`
	HourlyCapacity   *int               `json:"hourlyCapacity"`
	StandardHourCost *decimal.Decimal   `json:"standardHourCost"`
	Notes            string             `json:"notes"`
	TotalOrders      int                `json:"totalOrders"`
	OpenOrders       int                `json:"openOrders"`
}

type NewWorkCenter struct {
	Code             string           `json:"code"`
	Description      string           `json:"description"`
	Active           *bool            `json:"active"`
	HourlyCapacity   *int             `json:"hourlyCapacity"`
	StandardHourCost *decimal.Decimal `json:"standardHourCost"`
	Notes            string           `json:"notes"`
}

type CalendarEntry struct {
	OrderId openapi_types.UUID `json:"orderId"`
	Start   time.Time          `json:"start"`
	End     *time.Time         `json:"end"`
}

type CenterConflicts struct {
	CenterId openapi_types.UUID `json:"centerId"`
	Start    time.Time          `json:"start"`
	End      *time.Time         `json:"end"`
	Entries  []CalendarEntry    `json:"entries"`
}

// GetOrdersParams are the query parameters of GET /api/v1/orders.
type GetOrdersParams struct {
	State           *[]string           `form:"state,omitempty"`
	CenterId        *openapi_types.UUID `form:"centerId,omitempty"`
	OperatorId      *openapi_types.UUID `form:"operatorId,omitempty"`
	OperationTypeId *openapi_types.UUID `form:"operationTypeId,omitempty"`
	ArticleCode     *string             `form:"articleCode,omitempty"`
	Priority        *int                `form:"priority,omitempty"`
	StartFrom       *time.Time          `form:"startFrom,omitempty"`
	StartTo         *time.Time          `form:"startTo,omitempty"`
	ExpectedEndFrom *time.Time          `form:"expectedEndFrom,omitempty"`
	ExpectedEndTo   *time.Time          `form:"expectedEndTo,omitempty"`
	Sort            *string             `form:"sort,omitempty"`
	Direction       *string             `form:"direction,omitempty"`
	Page            *int                `form:"page,omitempty"`
	PageSize        *int                `form:"pageSize,omitempty"`
}

type GetMetricsParams struct {
	CenterId *openapi_types.UUID `form:"centerId,omitempty"`
}

type GetWorkCentersParams struct {
	ActiveOnly *bool `form:"activeOnly,omitempty"`
}

type GetCenterConflictsParams struct {
	Start time.Time  `form:"start"`
	End   *time.Time `form:"end,omitempty"`

	ExcludeOrderId *openapi_types.UUID `form:"excludeOrderId,omitempty"`
}
