package contracts

import "context"

// BookingEvent notifies downstream consumers (notifications, video
// provisioning) of a terminal booking outcome. Downstream subsystems react
// to a confirmed booking; they are not part of payment correctness.
type BookingEvent struct {
	Event      string `json:"event"`
	BookingID  string `json:"booking_id"`
	ClientID   string `json:"client_id"`
	ExpertID   string `json:"expert_id"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, event *BookingEvent) error
}
