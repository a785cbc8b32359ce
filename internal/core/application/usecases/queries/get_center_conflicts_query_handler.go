package queries

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/services"
)

// GetCenterConflictsQueryResponse lists the orders overlapping the window, by start.
type GetCenterConflictsQueryResponse struct {
	CenterID kernel.UUID
	Window   kernel.TimeWindow
	Entries  []services.CalendarEntry
}

// GetCenterConflictsQueryHandler answers from the in-memory calendar.
type GetCenterConflictsQueryHandler struct {
	calendar *services.ResourceCalendar
}

func NewGetCenterConflictsQueryHandler(calendar *services.ResourceCalendar) GetCenterConflictsQueryHandler {
	return GetCenterConflictsQueryHandler{calendar: calendar}
}

func (h GetCenterConflictsQueryHandler) Handle(
	_ context.Context,
	query GetCenterConflictsQuery,
) (GetCenterConflictsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCenterConflictsQueryResponse{}, err
	}

	return GetCenterConflictsQueryResponse{
		CenterID: query.CenterID(),
		Window:   query.Window(),
		Entries:  h.calendar.ConflictEntries(query.CenterID(), query.Window(), query.Exclude()),
	}, nil
}
