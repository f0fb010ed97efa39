package role

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context) ([]Role, error)
	FindByGuid(ctx context.Context, guid string) (*Role, error)
	FindByName(ctx context.Context, name string) (*Role, error)
	Create(ctx context.Context, r *Role) error
	Update(ctx context.Context, r *Role) error
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

func (r *repository) FindAll(ctx context.Context) ([]Role, error) {
	var roles []Role
	err := r.db.WithContext(ctx).Order("name ASC").Find(&roles).Error
	return roles, err
}

func (r *repository) FindByGuid(ctx context.Context, guid string) (*Role, error) {
	var role Role
	err := r.db.WithContext(ctx).First(&role, "id = ?", guid).Error
	return &role, err
}

func (r *repository) FindByName(ctx context.Context, name string) (*Role, error) {
	var role Role
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *repository) Create(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) Update(ctx context.Context, role *Role) error {
	return r.db.WithContext(ctx).Save(role).Error
}

func (r *repository) Delete(ctx context.Context, guid string) error {
	return r.db.WithContext(ctx).Delete(&Role{}, "id = ?", guid).Error
}

func (r *repository) IsExist(ctx context.Context, guid string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Role{}).
		Where("id = ?", guid).
		Count(&count).Error
	return count > 0, err
}
