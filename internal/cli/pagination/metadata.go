package pagination

import (
	"math"

	"github.com/rshade/roster/internal/roster"
)

// PaginationMeta contains metadata about the printed output window.
//
//nolint:revive // PaginationMeta is the canonical name for this exported type.
type PaginationMeta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// FetchMeta describes how far the remote listing was paged.
type FetchMeta struct {
	PagesRequested int  `json:"pages_requested" yaml:"pages_requested"`
	NextPage       int  `json:"next_page"       yaml:"next_page"`
	HasMore        bool `json:"has_more"        yaml:"has_more"`
	Failed         bool `json:"failed"          yaml:"failed"`
}

// NewPaginationMeta creates output window metadata from parameters and the
// number of displayed records.
func NewPaginationMeta(params PaginationParams, totalCount int) PaginationMeta {
	pageSize := params.PageSize
	if pageSize == 0 && params.Limit > 0 {
		pageSize = params.Limit
	}
	if pageSize == 0 {
		pageSize = totalCount
	}

	currentPage := params.Page
	if currentPage == 0 && params.Offset > 0 && pageSize > 0 {
		currentPage = (params.Offset / pageSize) + 1
	}
	if currentPage == 0 {
		currentPage = 1
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalCount) / float64(pageSize)))
	}

	return PaginationMeta{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalCount,
		HasPrevious: currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
}

// NewFetchMeta summarizes a roster state after requested page fetches.
func NewFetchMeta(s roster.State, requested int) FetchMeta {
	return FetchMeta{
		PagesRequested: requested,
		NextPage:       s.Cursor.PageIndex,
		HasMore:        s.Cursor.HasMore,
		Failed:         s.Phase == roster.PhaseError,
	}
}
