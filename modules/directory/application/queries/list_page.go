// Package queries contains read use cases for the directory module.
// Queries derive data from the collection and don't change state.
package queries

import (
	"context"

	"github.com/rai/employee-directory/modules/directory/domain"
)

// DefaultPageSize matches the original card grid.
const DefaultPageSize = 3

// PageDTO is the read model for one window of the collection.
type PageDTO struct {
	Records       []domain.Record `json:"records"`
	Page          int             `json:"page"`
	PageSize      int             `json:"page_size"`
	TotalCount    int             `json:"total_count"`
	CanGoPrevious bool            `json:"can_go_previous"`
	CanGoNext     bool            `json:"can_go_next"`
}

// ListPageQuery represents a request for one page of the collection.
type ListPageQuery struct {
	Page     int
	PageSize int
}

// ListPageHandler handles ListPageQuery.
type ListPageHandler struct {
	store domain.CollectionStore
}

func NewListPageHandler(store domain.CollectionStore) *ListPageHandler {
	return &ListPageHandler{store: store}
}

// Handle executes the list page query against the current snapshot.
// Page and page size default to 1 and DefaultPageSize when unset - callers
// that manage their own page state pass explicit values and are expected to
// respect the guard flags.
func (h *ListPageHandler) Handle(ctx context.Context, query ListPageQuery) (*PageDTO, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	records := h.store.Snapshot()

	return &PageDTO{
		Records:       Window(records, page, pageSize),
		Page:          page,
		PageSize:      pageSize,
		TotalCount:    len(records),
		CanGoPrevious: CanGoPrevious(page),
		CanGoNext:     CanGoNext(records, page, pageSize),
	}, nil
}

// Window returns records[(page-1)*pageSize : +pageSize) clamped to the
// collection bounds. The window is a pure function of its inputs; an
// out-of-range page yields an empty window, never a panic. The page number
// itself is not clamped - that is the caller's contract via the guards.
func Window(records []domain.Record, page, pageSize int) []domain.Record {
	if page < 1 || pageSize <= 0 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(records) {
		return nil
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// CanGoPrevious reports whether a previous page exists.
func CanGoPrevious(page int) bool {
	return page > 1
}

// CanGoNext reports whether records remain beyond the current page.
func CanGoNext(records []domain.Record, page, pageSize int) bool {
	return page*pageSize < len(records)
}
