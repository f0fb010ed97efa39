package role

import (
	"time"

	"github.com/google/uuid"
)

type Role struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_role_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
