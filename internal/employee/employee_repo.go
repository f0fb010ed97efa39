package employee

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// EmployeeEducationRow is the raw projection of the employee ⨝ education ⨝
// university join used by the details report.
type EmployeeEducationRow struct {
	ID             string
	Nik            string
	FirstName      string
	LastName       string
	BirthDate      time.Time
	Gender         int16
	HiringDate     time.Time
	Email          string
	PhoneNumber    string
	Major          string
	Degree         string
	Gpa            float64
	UniversityName string
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context) ([]Employee, error)
	FindByGuid(ctx context.Context, guid string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	Create(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, guid string) error
	IsExist(ctx context.Context, guid string) (bool, error)
	FindAllWithEducation(ctx context.Context) ([]EmployeeEducationRow, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Order("nik ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByGuid(ctx context.Context, guid string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", guid).Error
	return &e, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&e).Error
	return &e, err
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, `
			INSERT INTO employees (id, nik, first_name, last_name, birth_date, gender, hiring_date, email, phone_number, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		`, e.ID, e.Nik, e.FirstName, e.LastName, e.BirthDate, e.Gender, e.HiringDate, e.Email, e.PhoneNumber)
		return err
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, guid string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", guid).Error
}

func (r *repository) IsExist(ctx context.Context, guid string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", guid).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindAllWithEducation(ctx context.Context) ([]EmployeeEducationRow, error) {
	var rows []EmployeeEducationRow
	err := r.db.WithContext(ctx).
		Table("employees e").
		Select(`e.id::text AS id, e.nik, e.first_name, e.last_name, e.birth_date, e.gender,
			e.hiring_date, e.email, e.phone_number,
			ed.major, ed.degree, ed.gpa, u.name AS university_name`).
		Joins("JOIN educations ed ON ed.id = e.id").
		Joins("JOIN universities u ON u.id = ed.university_id").
		Order("e.nik ASC").
		Scan(&rows).Error
	return rows, err
}
