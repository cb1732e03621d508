package forms

import "time"

// FormResponse is the outward-facing representation of a form.
type FormResponse struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	Fields         []FormField    `json:"fields"`
	HRRequirements HRRequirements `json:"hrRequirements"`
	PublicLink     string         `json:"publicLink"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// ToResponse converts a form for API output.
func ToResponse(form Form) FormResponse {
	fields := form.Fields
	if fields == nil {
		fields = []FormField{}
	}
	return FormResponse{
		ID:             form.ID,
		Title:          form.Title,
		Description:    form.Description,
		Fields:         fields,
		HRRequirements: form.HRRequirements,
		PublicLink:     form.PublicLink,
		CreatedAt:      form.CreatedAt,
	}
}
