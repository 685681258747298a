package cv

import "fmt"

// Field identifies one editable string column of a record kind.
type Field interface {
	comparable
	fmt.Stringer

	// Label is the human-readable caption shown next to the value.
	Label() string
	// Valid reports whether the value is one of the kind's declared fields.
	Valid() bool
}

// Record is the constraint satisfied by the value types that Lists and
// Editors hold. With returns a modified copy, so records stay plain values.
type Record[F Field, T any] interface {
	Fields() []F
	Get(f F) string
	With(f F, value string) T
}

type fieldInfo struct {
	name  string
	label string
}

func fieldName(table []fieldInfo, i int, kind string) string {
	if i < 0 || i >= len(table) {
		return fmt.Sprintf("%s(%d)", kind, i)
	}
	return table[i].name
}

func fieldLabel(table []fieldInfo, i int) string {
	if i < 0 || i >= len(table) {
		return ""
	}
	return table[i].label
}

// ---------------------------------------------------------------------------
// General

// GeneralField enumerates the fields of the general section.
type GeneralField int

const (
	GeneralName GeneralField = iota
	GeneralEmail
	GeneralPhone
)

var generalFields = []fieldInfo{
	{"name", "Name"},
	{"email", "Email"},
	{"phone", "Phone"},
}

func (f GeneralField) String() string { return fieldName(generalFields, int(f), "GeneralField") }
func (f GeneralField) Label() string  { return fieldLabel(generalFields, int(f)) }
func (f GeneralField) Valid() bool    { return f >= 0 && int(f) < len(generalFields) }

// General is the contact block at the top of the résumé.
type General struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
}

// Fields returns the general fields in display order
func (General) Fields() []GeneralField {
	return []GeneralField{GeneralName, GeneralEmail, GeneralPhone}
}

// Get returns the value of field f
func (g General) Get(f GeneralField) string {
	switch f {
	case GeneralName:
		return g.Name
	case GeneralEmail:
		return g.Email
	case GeneralPhone:
		return g.Phone
	}
	return ""
}

// With returns a copy of g with field f set to value
func (g General) With(f GeneralField, value string) General {
	switch f {
	case GeneralName:
		g.Name = value
	case GeneralEmail:
		g.Email = value
	case GeneralPhone:
		g.Phone = value
	}
	return g
}

// ---------------------------------------------------------------------------
// Academic

// AcademicField enumerates the fields of an academic background entry.
type AcademicField int

const (
	AcademicSchool AcademicField = iota
	AcademicTitle
	AcademicYear
)

var academicFields = []fieldInfo{
	{"school", "School"},
	{"title", "Title"},
	{"year", "Year"},
}

func (f AcademicField) String() string { return fieldName(academicFields, int(f), "AcademicField") }
func (f AcademicField) Label() string  { return fieldLabel(academicFields, int(f)) }
func (f AcademicField) Valid() bool    { return f >= 0 && int(f) < len(academicFields) }

// Academic is one school or degree.
type Academic struct {
	School string `yaml:"school"`
	Title  string `yaml:"title"`
	Year   string `yaml:"year"`
}

// Fields returns the academic fields in display order
func (Academic) Fields() []AcademicField {
	return []AcademicField{AcademicSchool, AcademicTitle, AcademicYear}
}

// Get returns the value of field f
func (a Academic) Get(f AcademicField) string {
	switch f {
	case AcademicSchool:
		return a.School
	case AcademicTitle:
		return a.Title
	case AcademicYear:
		return a.Year
	}
	return ""
}

// With returns a copy of a with field f set to value
func (a Academic) With(f AcademicField, value string) Academic {
	switch f {
	case AcademicSchool:
		a.School = value
	case AcademicTitle:
		a.Title = value
	case AcademicYear:
		a.Year = value
	}
	return a
}

// ---------------------------------------------------------------------------
// Professional

// ProfessionalField enumerates the fields of a professional experience entry.
type ProfessionalField int

const (
	ProfessionalCompany ProfessionalField = iota
	ProfessionalTitle
	ProfessionalRole
	ProfessionalDateFrom
	ProfessionalDateTo
)

var professionalFields = []fieldInfo{
	{"company", "Company"},
	{"title", "Title"},
	{"role", "Role"},
	{"dateFrom", "From"},
	{"dateTo", "To"},
}

func (f ProfessionalField) String() string {
	return fieldName(professionalFields, int(f), "ProfessionalField")
}
func (f ProfessionalField) Label() string { return fieldLabel(professionalFields, int(f)) }
func (f ProfessionalField) Valid() bool   { return f >= 0 && int(f) < len(professionalFields) }

// Professional is one position held.
type Professional struct {
	Company  string `yaml:"company"`
	Title    string `yaml:"title"`
	Role     string `yaml:"role"`
	DateFrom string `yaml:"date_from"`
	DateTo   string `yaml:"date_to"`
}

// Fields returns the professional fields in display order
func (Professional) Fields() []ProfessionalField {
	return []ProfessionalField{
		ProfessionalCompany,
		ProfessionalTitle,
		ProfessionalRole,
		ProfessionalDateFrom,
		ProfessionalDateTo,
	}
}

// Get returns the value of field f
func (p Professional) Get(f ProfessionalField) string {
	switch f {
	case ProfessionalCompany:
		return p.Company
	case ProfessionalTitle:
		return p.Title
	case ProfessionalRole:
		return p.Role
	case ProfessionalDateFrom:
		return p.DateFrom
	case ProfessionalDateTo:
		return p.DateTo
	}
	return ""
}

// With returns a copy of p with field f set to value
func (p Professional) With(f ProfessionalField, value string) Professional {
	switch f {
	case ProfessionalCompany:
		p.Company = value
	case ProfessionalTitle:
		p.Title = value
	case ProfessionalRole:
		p.Role = value
	case ProfessionalDateFrom:
		p.DateFrom = value
	case ProfessionalDateTo:
		p.DateTo = value
	}
	return p
}
