package university

import (
	"time"

	"github.com/google/uuid"
)

type University struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code      string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_university_code_name"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_university_code_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
