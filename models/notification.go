package models

// Notification kinds dispatched through the queue.
const (
	NotifyKindMessage = "message"
	NotifyKindVCard   = "vcard"
)

// NotifyPayload is the queued unit of WhatsApp work. Exactly one of the
// message or vcard field groups is used, selected by Kind.
type NotifyPayload struct {
	Kind   string `json:"kind"`
	Number string `json:"number"`

	// message fields
	Message string `json:"message,omitempty"`
	Footer  string `json:"footer,omitempty"`

	// vcard fields
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ReminderPayload schedules a day-before reminder for an appointment. The
// worker re-reads the appointment at fire time and skips it unless still
// confirmed.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
}
