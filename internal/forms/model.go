package forms

import "time"

// Field types supported by the form builder. The enum is closed; the public
// renderer has no plugin extensibility.
const (
	FieldText     = "text"
	FieldEmail    = "email"
	FieldTel      = "tel"
	FieldNumber   = "number"
	FieldTextarea = "textarea"
	FieldSelect   = "select"
	FieldRadio    = "radio"
	FieldCheckbox = "checkbox"
	FieldDate     = "date"
	FieldFile     = "file"
)

// Semantic roles a field can carry so candidate identity does not have to be
// guessed from label text. Legacy forms without tags fall back to label
// matching in the review engine.
const (
	RoleName      = "name"
	RoleEmail     = "email"
	RolePhone     = "phone"
	RoleEducation = "education"
)

var fieldTypes = map[string]bool{
	FieldText:     true,
	FieldEmail:    true,
	FieldTel:      true,
	FieldNumber:   true,
	FieldTextarea: true,
	FieldSelect:   true,
	FieldRadio:    true,
	FieldCheckbox: true,
	FieldDate:     true,
	FieldFile:     true,
}

// IsFieldType reports whether t is a recognized field type.
func IsFieldType(t string) bool {
	return fieldTypes[t]
}

// IsChoiceType reports whether the field type carries an options list.
func IsChoiceType(t string) bool {
	return t == FieldSelect || t == FieldRadio || t == FieldCheckbox
}

// FormField is a single question definition within a form. IDs are assigned
// by the caller and stay stable when other fields are removed.
type FormField struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Label        string   `json:"label"`
	Required     bool     `json:"required"`
	Options      []string `json:"options,omitempty"`
	SemanticRole string   `json:"semanticRole,omitempty"`
}

// ExperienceRequired bounds years of experience for a posting.
type ExperienceRequired struct {
	Minimum           string `json:"minimum,omitempty"`
	Maximum           string `json:"maximum,omitempty"`
	PreferredIndustry string `json:"preferred_industry,omitempty"`
}

// NoticePeriod holds required and preferred notice periods.
type NoticePeriod struct {
	Required  string `json:"required,omitempty"`
	Preferred string `json:"preferred,omitempty"`
}

// Location describes where the role is based.
type Location struct {
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country,omitempty"`
	RemoteOption string `json:"remote_option,omitempty"`
}

// HRRequirements is the structured job-posting metadata an external AI
// evaluator scores candidates against. Populated manually or merged from a
// parsed job description.
type HRRequirements struct {
	JobID              string             `json:"job_id,omitempty"`
	Role               string             `json:"role,omitempty"`
	JobDescription     string             `json:"job_description,omitempty"`
	ExperienceRequired ExperienceRequired `json:"experience_required"`
	NoticePeriod       NoticePeriod       `json:"notice_period"`
	Location           Location           `json:"location"`
	RequiredSkills     []string           `json:"required_skills,omitempty"`
	PreferredSkills    []string           `json:"preferred_skills,omitempty"`
	Qualifications     []string           `json:"qualifications,omitempty"`
	RequireResume      bool               `json:"requireResume,omitempty"`
}

// Form is a recruitment form owned by one user. Immutable after creation;
// there are no update or delete endpoints.
type Form struct {
	ID             string
	OwnerID        string
	Title          string
	Description    string
	Fields         []FormField
	HRRequirements HRRequirements
	PublicLink     string
	CreatedAt      time.Time
}

// FieldByID returns the field with the given id, if present.
func (f Form) FieldByID(id string) (FormField, bool) {
	for _, field := range f.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return FormField{}, false
}
