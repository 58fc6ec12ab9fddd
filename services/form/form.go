package form

import (
	"fmt"

	"jojocolaresbeauty/models"
)

// FieldError describes a single invalid or missing form value.
type FieldError struct {
	FieldID string `json:"fieldId"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.FieldID, e.Message)
}

// Validate checks submitted values against the admin-configured field specs of
// the selected services. It reports required fields that are empty, values for
// unknown fields, and select values outside the configured options.
func Validate(services []models.Service, values map[string]string) []FieldError {
	specs := make(map[string]models.FormField)
	for _, svc := range services {
		for _, f := range svc.FormFields {
			specs[f.ID] = f
		}
	}

	var errs []FieldError
	for _, svc := range services {
		for _, f := range svc.FormFields {
			v, present := values[f.ID]
			if f.Required && (!present || v == "") {
				errs = append(errs, FieldError{FieldID: f.ID, Message: fmt.Sprintf("%q is required", f.Label)})
				continue
			}
			if !present || v == "" {
				continue
			}
			if f.Kind == models.FieldSelect && !contains(f.Options, v) {
				errs = append(errs, FieldError{FieldID: f.ID, Message: fmt.Sprintf("%q is not a valid option for %q", v, f.Label)})
			}
		}
	}

	for id := range values {
		if _, ok := specs[id]; !ok {
			errs = append(errs, FieldError{FieldID: id, Message: "unknown field"})
		}
	}
	return errs
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
