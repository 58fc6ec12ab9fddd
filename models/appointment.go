package models

import "time"

// Appointment statuses. Any status may be set from any other by the admin;
// only pending and confirmed appointments occupy time slots.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Service types for an appointment.
const (
	ServiceTypeStudio    = "studio"
	ServiceTypeDomicilio = "domicilio"
)

// Payment methods accepted by the studio.
const (
	PaymentPix      = "pix"
	PaymentCartao   = "cartao"
	PaymentDinheiro = "dinheiro"
)

// DomicilioFee is the flat home-service surcharge in BRL.
const DomicilioFee = 50.0

// Appointment represents a booking record. Date, time and duration never
// change after creation; status is the only field the availability read
// path depends on that mutates.
type Appointment struct {
	ID            string            `bson:"id" json:"id"`
	ClientName    string            `bson:"client_name" json:"clientName"`
	Phone         string            `bson:"phone" json:"phone"`
	City          string            `bson:"city" json:"city"`
	State         string            `bson:"state" json:"state"`
	Services      []Service         `bson:"services" json:"services"`
	TotalDuration int               `bson:"total_duration" json:"totalDuration"` // minutes
	TotalPrice    float64           `bson:"total_price" json:"totalPrice"`
	BasePrice     float64           `bson:"base_price" json:"basePrice"` // price without home-service fee
	Date          string            `bson:"date" json:"date"`            // "YYYY-MM-DD"
	Time          string            `bson:"time" json:"time"`            // "HH:mm"
	Status        string            `bson:"status" json:"status"`
	ServiceType   string            `bson:"service_type" json:"serviceType"`
	HairType      string            `bson:"hair_type,omitempty" json:"hairType,omitempty"`
	PaymentMethod string            `bson:"payment_method" json:"paymentMethod"`
	CustomFields  map[string]string `bson:"custom_fields,omitempty" json:"customFields,omitempty"`
	CreatedAt     time.Time         `bson:"created_at" json:"createdAt"`
}

// Occupies reports whether the appointment blocks time on its date.
func (a Appointment) Occupies() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}
