package employee

import (
	"time"

	"github.com/google/uuid"
)

type Gender int16

const (
	GenderFemale Gender = iota
	GenderMale
)

func (g Gender) String() string {
	if g == GenderMale {
		return "Male"
	}
	return "Female"
}

type Employee struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nik         string    `gorm:"type:varchar(16);not null;uniqueIndex:uq_employee_nik"`
	FirstName   string    `gorm:"type:varchar(100);not null"`
	LastName    string    `gorm:"type:varchar(100)"`
	BirthDate   time.Time `gorm:"type:date"`
	Gender      Gender    `gorm:"type:smallint;not null;default:0"`
	HiringDate  time.Time `gorm:"type:date"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	PhoneNumber string    `gorm:"type:varchar(30);uniqueIndex:uq_employee_phone"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
