package account

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context) ([]Account, error)
	FindByGuid(ctx context.Context, guid string) (*Account, error)
	Create(ctx context.Context, a *Account) error
	Update(ctx context.Context, a *Account) error
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

func (r *repository) FindAll(ctx context.Context) ([]Account, error) {
	var accounts []Account
	err := r.db.WithContext(ctx).Find(&accounts).Error
	return accounts, err
}

func (r *repository) FindByGuid(ctx context.Context, guid string) (*Account, error) {
	var a Account
	err := r.db.WithContext(ctx).First(&a, "id = ?", guid).Error
	return &a, err
}

func (r *repository) Create(ctx context.Context, a *Account) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, `
			INSERT INTO accounts (id, password, otp, is_used, expired_time, is_deleted, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		`, a.ID, a.Password, a.Otp, a.IsUsed, a.ExpiredTime, a.IsDeleted)
		return err
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Update(ctx context.Context, a *Account) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, guid string) error {
	return r.db.WithContext(ctx).Delete(&Account{}, "id = ?", guid).Error
}

func (r *repository) IsExist(ctx context.Context, guid string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", guid).
		Count(&count).Error
	return count > 0, err
}
