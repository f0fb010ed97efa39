package room

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_room_name"`
	Floor     int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
