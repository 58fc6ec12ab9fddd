package models

// Service is a bookable service from the studio catalogue.
type Service struct {
	ID          string      `bson:"id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Price       float64     `bson:"price" json:"price"`
	Duration    int         `bson:"duration" json:"duration"` // minutes
	Description string      `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string      `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	FormFields  []FormField `bson:"form_fields,omitempty" json:"formFields,omitempty"`
}

// Field kinds for admin-configured service forms.
const (
	FieldText     = "text"
	FieldTextarea = "textarea"
	FieldSelect   = "select"
)

// FormField is one admin-configured input collected from the client when
// booking a service. Kind selects the variant; Options applies to select only.
type FormField struct {
	ID       string   `bson:"id" json:"id"`
	Label    string   `bson:"label" json:"label"`
	Kind     string   `bson:"kind" json:"kind"`
	Options  []string `bson:"options,omitempty" json:"options,omitempty"`
	Required bool     `bson:"required" json:"required"`
}

// TotalDuration sums service durations in minutes.
func TotalDuration(services []Service) int {
	total := 0
	for _, s := range services {
		total += s.Duration
	}
	return total
}

// BasePrice sums service prices, without any home-service fee.
func BasePrice(services []Service) float64 {
	total := 0.0
	for _, s := range services {
		total += s.Price
	}
	return total
}
