package employee

import (
	"fmt"
	"strings"
)

// Gender is the gender of an employee as reported by the listing API.
// The zero value means "unset" and is only meaningful inside a Filter.
type Gender string

const (
	// GenderAny is the unset gender; a Filter with GenderAny matches everyone.
	GenderAny Gender = ""
	// GenderMale is the API value for male employees.
	GenderMale Gender = "male"
	// GenderFemale is the API value for female employees.
	GenderFemale Gender = "female"
)

// ErrInvalidGender is returned by ParseGender for unknown values.
var ErrInvalidGender = constError("invalid gender")

// ParseGender parses a gender name case-insensitively.
// The empty string and "any" yield GenderAny.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "all":
		return GenderAny, nil
	case "male", "m":
		return GenderMale, nil
	case "female", "f":
		return GenderFemale, nil
	default:
		return GenderAny, fmt.Errorf("%w: %q (must be male or female)", ErrInvalidGender, s)
	}
}

// Code returns the single-letter code used in the demography column.
func (g Gender) Code() string {
	switch g {
	case GenderMale:
		return "M"
	case GenderFemale:
		return "F"
	default:
		return "?"
	}
}

// Label returns the capitalized label used by the Gender selector.
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	default:
		return "Any"
	}
}

// Record is one normalized employee. Identity is ID; records are never
// modified after they are built from an API entity.
type Record struct {
	ID          int    `json:"id"`
	FullName    string `json:"fullName"`
	Demography  string `json:"demography"`
	Designation string `json:"designation"`
	Location    string `json:"location"`
	Country     string `json:"country"`
	Gender      Gender `json:"gender"`
	Age         int    `json:"age"`
	ImageURL    string `json:"imageUrl"`
}

// Demography formats the gender-coded age string, e.g. "M/34".
func Demography(g Gender, age int) string {
	return fmt.Sprintf("%s/%d", g.Code(), age)
}

// FullName joins given and family names, skipping empty parts.
func FullName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// Location formats "city, state", dropping the separator when one part is missing.
func Location(city, state string) string {
	city, state = strings.TrimSpace(city), strings.TrimSpace(state)
	switch {
	case city == "":
		return state
	case state == "":
		return city
	default:
		return city + ", " + state
	}
}
