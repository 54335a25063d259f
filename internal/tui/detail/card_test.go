package detail

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/roster/internal/employee"
)

func sampleRecord() employee.Record {
	return employee.Record{
		ID:          7,
		FullName:    "Emily Johnson",
		Demography:  "F/28",
		Designation: "Sales Manager",
		Location:    "Phoenix, Arizona",
		Country:     "United States",
		Gender:      employee.GenderFemale,
		Age:         28,
		ImageURL:    "https://img.example/7.png",
	}
}

func TestFields(t *testing.T) {
	fields := Fields(sampleRecord())

	assert.Len(t, fields, 9)
	assert.Equal(t, Field{"ID", "7"}, fields[0])
	assert.Equal(t, Field{"Country", "United States"}, fields[7])
	assert.Equal(t, Field{"Image", "https://img.example/7.png"}, fields[8])
}

func TestFields_EmptyValuesShowDash(t *testing.T) {
	fields := Fields(employee.Record{ID: 1})

	for _, f := range fields {
		if f.Label == "ID" || f.Label == "Age" {
			continue
		}
		assert.Equal(t, emptyValue, f.Value, f.Label)
	}
}

func TestRenderEmployee(t *testing.T) {
	out := RenderEmployee(sampleRecord(), 80)

	assert.Contains(t, out, "EMPLOYEE DETAIL")
	assert.Contains(t, out, "Emily Johnson")
	assert.Contains(t, out, "Sales Manager")
	assert.Contains(t, out, "United States")
	assert.Contains(t, out, "[Esc] Back to list")
}

func TestRenderEmployee_NarrowWidth(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = RenderEmployee(sampleRecord(), 0)
	})
}

func TestGenderValue(t *testing.T) {
	assert.Equal(t, "Female", genderValue(employee.GenderFemale))
	assert.Equal(t, "Male", genderValue(employee.GenderMale))
	assert.Equal(t, "other", genderValue(employee.Gender("other")))
	assert.Equal(t, emptyValue, genderValue(employee.GenderAny))
}
