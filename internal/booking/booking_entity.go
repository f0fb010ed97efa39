package booking

import (
	"time"

	"github.com/google/uuid"
)

type Status int16

const (
	StatusPending Status = iota
	StatusOnGoing
	StatusDone
	StatusCanceled
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusOnGoing:
		return "OnGoing"
	case StatusDone:
		return "Done"
	case StatusCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

func (s Status) Valid() bool {
	return s >= StatusPending && s <= StatusCanceled
}

type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartDate  time.Time `gorm:"not null"`
	EndDate    time.Time `gorm:"not null"`
	Status     Status    `gorm:"type:smallint;not null"`
	Remarks    string    `gorm:"type:varchar(255)"`
	RoomID     uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
