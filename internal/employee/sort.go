package employee

import (
	"fmt"
	"sort"
	"strings"
)

// SortField is a sortable column of the roster table.
type SortField string

// Sortable columns.
const (
	SortByID         SortField = "id"
	SortByFullName   SortField = "fullName"
	SortByDemography SortField = "demography"
)

// SortDirection is the ordering applied to the selected field.
type SortDirection string

// Sort directions.
const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Parse errors.
var (
	ErrInvalidSortField     = constError("invalid sort field")
	ErrInvalidSortDirection = constError("invalid sort direction")
)

// SortFields lists the sortable columns in display order.
func SortFields() []SortField {
	return []SortField{SortByID, SortByFullName, SortByDemography}
}

// ParseSortField accepts the canonical field names case-insensitively, plus
// the aliases "name" and "age".
func ParseSortField(s string) (SortField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "id":
		return SortByID, nil
	case "fullname", "name":
		return SortByFullName, nil
	case "demography", "age":
		return SortByDemography, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: id, fullName, demography)", ErrInvalidSortField, s)
	}
}

// ParseSortDirection parses "asc" or "desc".
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return "", fmt.Errorf("%w: %q (must be asc or desc)", ErrInvalidSortDirection, s)
	}
}

// ParseSort parses "field" or "field:order". A bare field sorts ascending.
func ParseSort(expr string) (Sort, error) {
	fieldPart, orderPart, _ := strings.Cut(expr, ":")
	if strings.Contains(orderPart, ":") {
		return Sort{}, fmt.Errorf("%w: too many colons in %q", ErrInvalidSortField, expr)
	}
	field, err := ParseSortField(fieldPart)
	if err != nil {
		return Sort{}, err
	}
	dir, err := ParseSortDirection(orderPart)
	if err != nil {
		return Sort{}, err
	}
	return Sort{Field: field, Direction: dir}, nil
}

// Flip returns the opposite direction.
func (d SortDirection) Flip() SortDirection {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// Arrow returns the header marker for the direction.
func (d SortDirection) Arrow() string {
	if d == Descending {
		return "▼"
	}
	return "▲"
}

// Sort is the current sort selection.
type Sort struct {
	Field     SortField     `json:"field"     yaml:"field"`
	Direction SortDirection `json:"direction" yaml:"direction"`
}

// DefaultSort orders by id ascending, the order the API returns records in.
func DefaultSort() Sort {
	return Sort{Field: SortByID, Direction: Ascending}
}

// Select applies a column selection. Reselecting the active field flips the
// direction; selecting another field keeps the current direction.
func (s Sort) Select(field SortField) Sort {
	if s.Field == field {
		s.Direction = s.Direction.Flip()
		return s
	}
	s.Field = field
	if s.Direction == "" {
		s.Direction = Ascending
	}
	return s
}

// Apply returns a sorted copy of records. The input slice is left untouched.
// Ties have no guaranteed order.
func (s Sort) Apply(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)

	less := s.less()
	if less == nil {
		return out
	}
	desc := s.Direction == Descending
	sort.Slice(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func (s Sort) less() func(a, b Record) bool {
	switch s.Field {
	case SortByID:
		return func(a, b Record) bool { return a.ID < b.ID }
	case SortByFullName:
		return func(a, b Record) bool { return a.FullName < b.FullName }
	case SortByDemography:
		return func(a, b Record) bool { return a.Age < b.Age }
	default:
		return nil
	}
}

// String renders e.g. "fullName:desc".
func (s Sort) String() string {
	return string(s.Field) + ":" + string(s.Direction)
}

// View derives the displayed sequence: the records of store that match filter,
// ordered by sort.
func View(store []Record, filter Filter, s Sort) []Record {
	return s.Apply(filter.Apply(store))
}
