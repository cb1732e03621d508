package forms

import "fmt"

// Draft accumulates a form across three sections: basics, fields and HR
// requirements. Transitions between sections are gated, matching the flow
// the builder UI walks through.
type Draft struct {
	Title          string
	Description    string
	Fields         []FormField
	HRRequirements HRRequirements
}

// CanEditFields reports whether the fields section is reachable.
func (d *Draft) CanEditFields() bool {
	return d.Title != ""
}

// CanEditRequirements reports whether the HR requirements section is
// reachable.
func (d *Draft) CanEditRequirements() bool {
	return d.CanEditFields() && len(d.Fields) > 0
}

// AddField appends a field to the ordered list.
func (d *Draft) AddField(field FormField) error {
	if field.ID == "" {
		return fmt.Errorf("%w: field id is required", ErrInvalidInput)
	}
	if !IsFieldType(field.Type) {
		return fmt.Errorf("%w: unknown field type %q", ErrInvalidInput, field.Type)
	}
	for _, existing := range d.Fields {
		if existing.ID == field.ID {
			return fmt.Errorf("%w: duplicate field id %q", ErrInvalidInput, field.ID)
		}
	}
	d.Fields = append(d.Fields, field)
	return nil
}

// RemoveField deletes the field with the given id. Surviving fields keep
// their ids and relative order.
func (d *Draft) RemoveField(id string) bool {
	for i, field := range d.Fields {
		if field.ID == id {
			d.Fields = append(d.Fields[:i], d.Fields[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateField replaces the field with the matching id in place.
func (d *Draft) UpdateField(field FormField) bool {
	for i, existing := range d.Fields {
		if existing.ID == field.ID {
			d.Fields[i] = field
			return true
		}
	}
	return false
}

// AddOption appends an option slot to a choice field.
func (d *Draft) AddOption(fieldID, option string) bool {
	for i, field := range d.Fields {
		if field.ID == fieldID {
			d.Fields[i].Options = append(d.Fields[i].Options, option)
			return true
		}
	}
	return false
}

// UpdateOption replaces the option at index for a choice field.
func (d *Draft) UpdateOption(fieldID string, index int, option string) bool {
	for i, field := range d.Fields {
		if field.ID == fieldID {
			if index < 0 || index >= len(field.Options) {
				return false
			}
			d.Fields[i].Options[index] = option
			return true
		}
	}
	return false
}

// RemoveOption splices out the option at index for a choice field.
func (d *Draft) RemoveOption(fieldID string, index int) bool {
	for i, field := range d.Fields {
		if field.ID == fieldID {
			if index < 0 || index >= len(field.Options) {
				return false
			}
			d.Fields[i].Options = append(field.Options[:index], field.Options[index+1:]...)
			return true
		}
	}
	return false
}
