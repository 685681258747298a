package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldNamesAndLabels(t *testing.T) {
	tests := []struct {
		field interface {
			String() string
			Label() string
			Valid() bool
		}
		name  string
		label string
	}{
		{GeneralName, "name", "Name"},
		{GeneralEmail, "email", "Email"},
		{GeneralPhone, "phone", "Phone"},
		{AcademicSchool, "school", "School"},
		{AcademicTitle, "title", "Title"},
		{AcademicYear, "year", "Year"},
		{ProfessionalCompany, "company", "Company"},
		{ProfessionalTitle, "title", "Title"},
		{ProfessionalRole, "role", "Role"},
		{ProfessionalDateFrom, "dateFrom", "From"},
		{ProfessionalDateTo, "dateTo", "To"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.label, func(t *testing.T) {
			assert.True(t, tt.field.Valid())
			assert.Equal(t, tt.name, tt.field.String())
			assert.Equal(t, tt.label, tt.field.Label())
		})
	}
}

func TestUndeclaredFields(t *testing.T) {
	assert.False(t, GeneralField(3).Valid())
	assert.False(t, AcademicField(-1).Valid())
	assert.False(t, ProfessionalField(5).Valid())

	assert.Equal(t, "ProfessionalField(5)", ProfessionalField(5).String())
	assert.Equal(t, "", ProfessionalField(5).Label())
}

func TestRecordGetWith(t *testing.T) {
	var p Professional
	for i, f := range p.Fields() {
		p = p.With(f, string(rune('a'+i)))
	}
	assert.Equal(t, Professional{Company: "a", Title: "b", Role: "c", DateFrom: "d", DateTo: "e"}, p)
	for i, f := range p.Fields() {
		assert.Equal(t, string(rune('a'+i)), p.Get(f))
	}

	a := Academic{School: "x"}
	b := a.With(AcademicYear, "1999")
	assert.Equal(t, "", a.Year, "With must not mutate the receiver")
	assert.Equal(t, "1999", b.Year)
	assert.Equal(t, a, a.With(AcademicField(9), "ignored"))
}
