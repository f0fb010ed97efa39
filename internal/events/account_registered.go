package events

import "time"

const AccountRegisteredTopic = "booking.account.lifecycle.v1"

const AccountRegisteredEventType = "account_registered"

type AccountRegisteredEvent struct {
	EventType  string    `json:"event_type"`
	AccountID  string    `json:"account_id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	OccurredAt time.Time `json:"occurred_at"`
}
