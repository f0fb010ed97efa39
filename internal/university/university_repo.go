package university

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context) ([]University, error)
	FindByGuid(ctx context.Context, guid string) (*University, error)
	FindByCodeAndName(ctx context.Context, code, name string) (*University, error)
	Create(ctx context.Context, u *University) error
	Update(ctx context.Context, u *University) error
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

func (r *repository) FindAll(ctx context.Context) ([]University, error) {
	var universities []University
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&universities).Error
	return universities, err
}

func (r *repository) FindByGuid(ctx context.Context, guid string) (*University, error) {
	var u University
	err := r.db.WithContext(ctx).First(&u, "id = ?", guid).Error
	return &u, err
}

func (r *repository) FindByCodeAndName(ctx context.Context, code, name string) (*University, error) {
	var u University
	q := r.db.WithContext(ctx)
	if r.tx != nil {
		// Dedup check harus melihat baris yang baru ditulis dalam transaksi yang sama
		row := r.tx.QueryRowContext(ctx,
			`SELECT id::text, code, name FROM universities WHERE code = $1 AND name = $2`,
			code, name,
		)
		var id string
		if err := row.Scan(&id, &u.Code, &u.Name); err != nil {
			if err == sql.ErrNoRows {
				return nil, gorm.ErrRecordNotFound
			}
			return nil, err
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, err
		}
		u.ID = parsed
		return &u, nil
	}
	err := q.Where("code = ? AND name = ?", code, name).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) Create(ctx context.Context, u *University) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, `
			INSERT INTO universities (id, code, name, created_at, updated_at)
			VALUES ($1, $2, $3, now(), now())
		`, u.ID, u.Code, u.Name)
		return err
	}
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) Update(ctx context.Context, u *University) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repository) Delete(ctx context.Context, guid string) error {
	return r.db.WithContext(ctx).Delete(&University{}, "id = ?", guid).Error
}

func (r *repository) IsExist(ctx context.Context, guid string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&University{}).
		Where("id = ?", guid).
		Count(&count).Error
	return count > 0, err
}
