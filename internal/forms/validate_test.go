package forms

import "testing"

func TestValidateFirstViolationWins(t *testing.T) {
	fields := []FormField{
		{ID: "1", Type: FieldText, Label: ""},
		{ID: "2", Type: FieldSelect, Label: "Notice Period"},
	}

	err := Validate("", fields)
	if err == nil {
		t.Fatalf("expected a validation error")
	}
	if err.Error() != "Please enter a form title" {
		t.Fatalf("title rule should win first, got %q", err.Error())
	}

	err = Validate("Role", fields)
	if err == nil || err.Error() != "All fields must have a label" {
		t.Fatalf("label rule should win next, got %v", err)
	}

	fields[0].Label = "Name"
	err = Validate("Role", fields)
	if err == nil || err.Error() != "Notice Period needs at least one option" {
		t.Fatalf("option rule should win last, got %v", err)
	}

	fields[1].Options = []string{"30 days"}
	if err := Validate("Role", fields); err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}
}
