package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rshade/roster/internal/employee"
)

// Pagination defaults and validation limits.
const (
	DefaultPages    = 1
	MaxPages        = 100
	DefaultLimit    = 0
	MaxLimit        = 10000
	DefaultOffset   = 0
	MinPage         = 1
	MaxPageSize     = 1000
	DefaultSortExpr = ""
)

// Common validation errors.
var (
	ErrInvalidPages         = fmt.Errorf("pages must be between 0 and %d", MaxPages)
	ErrInvalidLimit         = fmt.Errorf("limit must be between 0 and %d", MaxLimit)
	ErrInvalidPageSize      = fmt.Errorf("page-size must be between 1 and %d", MaxPageSize)
	ErrMixedPaginationModes = errors.New("page and offset parameters are mutually exclusive")
)

// PaginationParams holds CLI pagination flags and provides validation.
// Output slicing supports two modes:
//   - Offset-based: --limit and --offset
//   - Page-based: --page and --page-size
//
//nolint:revive // PaginationParams is the canonical name for this exported type.
type PaginationParams struct {
	// Pages is the number of remote pages to fetch. 0 fetches until the
	// listing is exhausted.
	Pages int

	// Limit is the maximum number of rows to print (offset-based mode). 0
	// means no limit.
	Limit int

	// Offset is the number of rows to skip (offset-based mode).
	Offset int

	// Page is the 1-based output page (page-based mode).
	Page int

	// PageSize is the number of rows per output page (page-based mode).
	PageSize int
}

// NewPaginationParams creates a PaginationParams with default values.
func NewPaginationParams() *PaginationParams {
	return &PaginationParams{
		Pages:  DefaultPages,
		Limit:  DefaultLimit,
		Offset: DefaultOffset,
	}
}

// Validate checks if the pagination parameters are valid and consistent.
func (p PaginationParams) Validate() error {
	if p.Pages < 0 || p.Pages > MaxPages {
		return fmt.Errorf("%w: got %d", ErrInvalidPages, p.Pages)
	}
	if p.Limit < 0 || p.Limit > MaxLimit {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, p.Limit)
	}
	if p.Offset < 0 {
		return errors.New("offset cannot be negative")
	}
	if p.Page < 0 {
		return errors.New("page cannot be negative")
	}
	if p.PageSize < 0 || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}

	if p.Page > 0 && p.Offset > 0 {
		return ErrMixedPaginationModes
	}
	if p.Page == 0 && p.PageSize > 0 {
		return errors.New("page must be specified when using page-size: page must be >= 1")
	}
	if p.PageSize == 0 && p.Page > 0 {
		return errors.New("page-size must be specified when using page: page-size must be > 0")
	}

	return nil
}

// ParseSort parses a --sort value in the format "field" or "field:order".
// An empty value selects the default sort (id ascending).
func ParseSort(sortStr string) (employee.Sort, error) {
	if strings.TrimSpace(sortStr) == DefaultSortExpr {
		return employee.DefaultSort(), nil
	}

	sorter := NewRecordSorter()
	field, _, _ := strings.Cut(sortStr, ":")
	if !sorter.IsValidField(field) {
		return employee.Sort{}, fmt.Errorf("invalid --sort %q: %w %q (valid: %s)",
			sortStr, employee.ErrInvalidSortField, strings.TrimSpace(field), strings.Join(sorter.GetValidFields(), ", "))
	}

	s, err := employee.ParseSort(sortStr)
	if err != nil {
		return employee.Sort{}, fmt.Errorf("invalid --sort %q: %w", sortStr, err)
	}
	return s, nil
}

// IsPageBased returns true if page-based output is active.
func (p PaginationParams) IsPageBased() bool {
	return p.Page > 0
}

// GetEffectiveLimit returns PageSize in page-based mode and Limit otherwise.
func (p PaginationParams) GetEffectiveLimit() int {
	if p.IsPageBased() {
		return p.PageSize
	}
	return p.Limit
}

// GetEffectiveOffset returns the row offset for either mode.
func (p PaginationParams) GetEffectiveOffset() int {
	if p.IsPageBased() {
		return (p.Page - 1) * p.PageSize
	}
	return p.Offset
}

// IsWindowed returns true if any output slicing is requested.
func (p PaginationParams) IsWindowed() bool {
	return p.Limit > 0 || p.Page > 0 || p.PageSize > 0 || p.Offset > 0
}

// CalculateOffsetLimit returns the effective offset and limit for slicing.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func (p PaginationParams) CalculateOffsetLimit() (offset, limit int) {
	return p.GetEffectiveOffset(), p.GetEffectiveLimit()
}

// ApplyToSlice returns the window of items selected by p.
// Page-based windows beyond the end are capped to the last page; offsets
// beyond the end yield an empty slice.
func ApplyToSlice[T any](p PaginationParams, items []T) []T {
	if len(items) == 0 {
		return items
	}

	offset, limit := p.CalculateOffsetLimit()

	if p.IsPageBased() && offset >= len(items) {
		offset = ((len(items) - 1) / p.PageSize) * p.PageSize
	}
	if offset >= len(items) {
		return []T{}
	}

	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
