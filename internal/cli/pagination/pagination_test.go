package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/roster/internal/employee"
	"github.com/rshade/roster/internal/roster"
)

func TestPaginationParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  PaginationParams
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid default",
			params:  *NewPaginationParams(),
			wantErr: false,
		},
		{
			name:    "all pages",
			params:  PaginationParams{Pages: 0},
			wantErr: false,
		},
		{
			name: "valid offset mode",
			params: PaginationParams{
				Pages:  2,
				Limit:  10,
				Offset: 20,
			},
			wantErr: false,
		},
		{
			name: "valid page mode",
			params: PaginationParams{
				Page:     2,
				PageSize: 10,
			},
			wantErr: false,
		},
		{
			name:    "negative pages",
			params:  PaginationParams{Pages: -1},
			wantErr: true,
			errMsg:  "pages must be between",
		},
		{
			name:    "too many pages",
			params:  PaginationParams{Pages: MaxPages + 1},
			wantErr: true,
			errMsg:  "pages must be between",
		},
		{
			name:    "negative limit",
			params:  PaginationParams{Limit: -1},
			wantErr: true,
			errMsg:  "limit must be between",
		},
		{
			name:    "negative offset",
			params:  PaginationParams{Offset: -1},
			wantErr: true,
			errMsg:  "offset cannot be negative",
		},
		{
			name:    "negative page",
			params:  PaginationParams{Page: -1},
			wantErr: true,
			errMsg:  "page cannot be negative",
		},
		{
			name:    "negative page-size",
			params:  PaginationParams{PageSize: -1},
			wantErr: true,
			errMsg:  "page-size must be between",
		},
		{
			name:    "mixed modes",
			params:  PaginationParams{Page: 1, PageSize: 5, Offset: 10},
			wantErr: true,
			errMsg:  "mutually exclusive",
		},
		{
			name:    "page-size without page",
			params:  PaginationParams{PageSize: 10},
			wantErr: true,
			errMsg:  "page must be specified when using page-size",
		},
		{
			name:    "page without page-size",
			params:  PaginationParams{Page: 1},
			wantErr: true,
			errMsg:  "page-size must be specified when using page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name    string
		sortStr string
		want    employee.Sort
		wantErr bool
	}{
		{
			name:    "empty",
			sortStr: "",
			want:    employee.DefaultSort(),
		},
		{
			name:    "field only",
			sortStr: "fullName",
			want:    employee.Sort{Field: employee.SortByFullName, Direction: employee.Ascending},
		},
		{
			name:    "alias and order",
			sortStr: "age:desc",
			want:    employee.Sort{Field: employee.SortByDemography, Direction: employee.Descending},
		},
		{
			name:    "invalid format",
			sortStr: "id:asc:extra",
			wantErr: true,
		},
		{
			name:    "unknown field",
			sortStr: "salary",
			wantErr: true,
		},
		{
			name:    "invalid order",
			sortStr: "id:sideways",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSort(tt.sortStr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaginationParams_Calculations(t *testing.T) {
	t.Run("OffsetBased", func(t *testing.T) {
		p := PaginationParams{Limit: 10, Offset: 20}
		assert.False(t, p.IsPageBased())
		assert.Equal(t, 10, p.GetEffectiveLimit())
		assert.Equal(t, 20, p.GetEffectiveOffset())
	})

	t.Run("PageBased", func(t *testing.T) {
		p := PaginationParams{Page: 3, PageSize: 10}
		assert.True(t, p.IsPageBased())
		assert.Equal(t, 10, p.GetEffectiveLimit())
		assert.Equal(t, 20, p.GetEffectiveOffset())
	})

	t.Run("IsWindowed", func(t *testing.T) {
		assert.False(t, PaginationParams{Pages: 3}.IsWindowed())
		assert.True(t, PaginationParams{Limit: 10}.IsWindowed())
		assert.True(t, PaginationParams{Page: 1}.IsWindowed())
		assert.True(t, PaginationParams{Offset: 1}.IsWindowed())
	})
}

func TestApplyToSlice(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	tests := []struct {
		name   string
		params PaginationParams
		input  []int
		want   []int
	}{
		{"no window", PaginationParams{}, items, items},
		{"limit only", PaginationParams{Limit: 3}, items, []int{0, 1, 2}},
		{"offset only", PaginationParams{Offset: 7}, items, []int{7, 8, 9}},
		{"offset and limit", PaginationParams{Offset: 2, Limit: 3}, items, []int{2, 3, 4}},
		{"page 1", PaginationParams{Page: 1, PageSize: 3}, items, []int{0, 1, 2}},
		{"page 2", PaginationParams{Page: 2, PageSize: 3}, items, []int{3, 4, 5}},
		{"out of bounds offset", PaginationParams{Offset: 20}, items, []int{}},
		{"out of bounds page", PaginationParams{Page: 10, PageSize: 3}, items, []int{9}},
		{"empty items", PaginationParams{Limit: 5}, []int{}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyToSlice(tt.params, tt.input))
		})
	}
}

func TestApplyToSlice_Records(t *testing.T) {
	records := []employee.Record{{ID: 1}, {ID: 2}, {ID: 3}}
	got := ApplyToSlice(PaginationParams{Offset: 1, Limit: 1}, records)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name       string
		params     PaginationParams
		totalCount int
		want       PaginationMeta
	}{
		{
			name:       "first page",
			params:     PaginationParams{Page: 1, PageSize: 10},
			totalCount: 25,
			want: PaginationMeta{
				CurrentPage: 1, PageSize: 10, TotalPages: 3, TotalItems: 25,
				HasPrevious: false, HasNext: true,
			},
		},
		{
			name:       "last page",
			params:     PaginationParams{Page: 3, PageSize: 10},
			totalCount: 25,
			want: PaginationMeta{
				CurrentPage: 3, PageSize: 10, TotalPages: 3, TotalItems: 25,
				HasPrevious: true, HasNext: false,
			},
		},
		{
			name:       "offset conversion",
			params:     PaginationParams{Offset: 10, Limit: 10},
			totalCount: 25,
			want: PaginationMeta{
				CurrentPage: 2, PageSize: 10, TotalPages: 3, TotalItems: 25,
				HasPrevious: true, HasNext: true,
			},
		},
		{
			name:       "no window is a single page",
			params:     PaginationParams{Pages: 2},
			totalCount: 20,
			want: PaginationMeta{
				CurrentPage: 1, PageSize: 20, TotalPages: 1, TotalItems: 20,
				HasPrevious: false, HasNext: false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPaginationMeta(tt.params, tt.totalCount))
		})
	}
}

func TestNewFetchMeta(t *testing.T) {
	s := roster.New(employee.Filter{}, employee.DefaultSort())
	s.Cursor = roster.Cursor{PageIndex: 2, HasMore: false}

	meta := NewFetchMeta(s, 3)
	assert.Equal(t, FetchMeta{PagesRequested: 3, NextPage: 2, HasMore: false}, meta)

	s.Phase = roster.PhaseError
	assert.True(t, NewFetchMeta(s, 1).Failed)
}

func TestRecordSorter(t *testing.T) {
	sorter := NewRecordSorter()

	assert.Equal(t, []string{"age", "demography", "fullName", "id", "name"}, sorter.GetValidFields())
	assert.True(t, sorter.IsValidField("fullName"))
	assert.True(t, sorter.IsValidField("FULLNAME"))
	assert.True(t, sorter.IsValidField(" age "))
	assert.False(t, sorter.IsValidField("salary"))
	assert.False(t, sorter.IsValidField(""))
}

func TestParseSort_UnknownFieldListsValidFields(t *testing.T) {
	_, err := ParseSort("salary:desc")
	require.ErrorIs(t, err, employee.ErrInvalidSortField)
	assert.Contains(t, err.Error(), "valid: age, demography, fullName, id, name")
}
