package education

import (
	"time"

	"github.com/google/uuid"
)

// Education shares its primary key with the owning Employee (one-to-one by
// common identifier, not embedding).
type Education struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Major        string    `gorm:"type:varchar(100);not null"`
	Degree       string    `gorm:"type:varchar(100);not null"`
	Gpa          float64   `gorm:"type:numeric(4,2)"`
	UniversityID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
