package employee

import "fmt"

// DefaultCountries is the fixed list offered by the Country selector.
//
//nolint:gochecknoglobals // Read-only lookup table.
var DefaultCountries = []string{
	"United States",
	"India",
	"Canada",
	"United Kingdom",
	"Germany",
	"France",
	"Australia",
	"Brazil",
	"Japan",
	"China",
	"Mexico",
}

// Filter selects records by country and gender. The zero value matches every record.
type Filter struct {
	Country string `json:"country,omitempty" yaml:"country,omitempty"`
	Gender  Gender `json:"gender,omitempty"  yaml:"gender,omitempty"`
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f.Country == "" && f.Gender == GenderAny
}

// Matches reports whether r passes both the country and the gender condition.
// An empty condition always passes.
func (f Filter) Matches(r Record) bool {
	if f.Country != "" && r.Country != f.Country {
		return false
	}
	if f.Gender != GenderAny && r.Gender != f.Gender {
		return false
	}
	return true
}

// Apply returns the records that match f, in their original order.
// The result never aliases the input.
func (f Filter) Apply(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// String renders the filter for logs and status lines.
func (f Filter) String() string {
	country := f.Country
	if country == "" {
		country = "any"
	}
	return fmt.Sprintf("country=%s gender=%s", country, f.Gender.Label())
}

// NextCountry returns the country following current in countries, cycling
// through "" (no filter) after the last entry.
func NextCountry(countries []string, current string) string {
	if current == "" {
		if len(countries) == 0 {
			return ""
		}
		return countries[0]
	}
	for i, c := range countries {
		if c == current {
			if i+1 < len(countries) {
				return countries[i+1]
			}
			return ""
		}
	}
	return ""
}

// NextGender cycles Any -> Male -> Female -> Any.
func NextGender(current Gender) Gender {
	switch current {
	case GenderAny:
		return GenderMale
	case GenderMale:
		return GenderFemale
	default:
		return GenderAny
	}
}
