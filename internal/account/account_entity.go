package account

import (
	"time"

	"github.com/google/uuid"
)

// Account shares its primary key with the owning Employee.
type Account struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Password    string    `gorm:"type:varchar(100);not null"`
	Otp         int       `gorm:"not null;default:0"`
	IsUsed      bool      `gorm:"not null;default:true"`
	ExpiredTime time.Time `gorm:"not null"`
	IsDeleted   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type AccountRole struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	RoleID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
