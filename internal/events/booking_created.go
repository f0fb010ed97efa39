package events

import "time"

const BookingCreatedTopic = "booking.reservation.lifecycle.v1"

const BookingCreatedEventType = "booking_created"

type BookingCreatedEvent struct {
	EventType  string    `json:"event_type"`
	BookingID  string    `json:"booking_id"`
	RoomID     string    `json:"room_id"`
	EmployeeID string    `json:"employee_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	OccurredAt time.Time `json:"occurred_at"`
}
