package notification

import "context"

// NotificationService delivers WhatsApp messages through the gateway. Dispatch
// is best effort: the booking record is the source of truth and a failed send
// must never fail the booking flow.
type NotificationService interface {
	SendMessage(ctx context.Context, number, message, footer string) error
	SendVCard(ctx context.Context, number, name, phone string) error
}
