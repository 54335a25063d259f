package pagination

import (
	"sort"
	"strings"

	"github.com/rshade/roster/internal/employee"
)

// RecordSorter knows the field names accepted by --sort.
type RecordSorter struct {
	validFields map[string]employee.SortField
}

// NewRecordSorter creates a RecordSorter accepting the sortable columns and
// their short aliases.
func NewRecordSorter() *RecordSorter {
	fields := make(map[string]employee.SortField)
	for _, f := range employee.SortFields() {
		fields[string(f)] = f
	}
	fields["name"] = employee.SortByFullName
	fields["age"] = employee.SortByDemography
	return &RecordSorter{validFields: fields}
}

// IsValidField checks if the field is valid for sorting. Matching ignores case.
func (s *RecordSorter) IsValidField(field string) bool {
	field = strings.TrimSpace(field)
	for name := range s.validFields {
		if strings.EqualFold(name, field) {
			return true
		}
	}
	return false
}

// GetValidFields returns all valid sort fields.
func (s *RecordSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
