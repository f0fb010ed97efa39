package education

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context) ([]Education, error)
	FindByGuid(ctx context.Context, guid string) (*Education, error)
	Create(ctx context.Context, e *Education) error
	Update(ctx context.Context, e *Education) error
	Delete(ctx context.Context, guid string) error
	IsExist(ctx context.Context, guid string) (bool, error)
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

func (r *repository) FindAll(ctx context.Context) ([]Education, error) {
	var educations []Education
	err := r.db.WithContext(ctx).Find(&educations).Error
	return educations, err
}

func (r *repository) FindByGuid(ctx context.Context, guid string) (*Education, error) {
	var e Education
	err := r.db.WithContext(ctx).First(&e, "id = ?", guid).Error
	return &e, err
}

func (r *repository) Create(ctx context.Context, e *Education) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, `
			INSERT INTO educations (id, major, degree, gpa, university_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, now(), now())
		`, e.ID, e.Major, e.Degree, e.Gpa, e.UniversityID)
		return err
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) Update(ctx context.Context, e *Education) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, guid string) error {
	return r.db.WithContext(ctx).Delete(&Education{}, "id = ?", guid).Error
}

func (r *repository) IsExist(ctx context.Context, guid string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Education{}).
		Where("id = ?", guid).
		Count(&count).Error
	return count > 0, err
}
