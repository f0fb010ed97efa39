package account

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type RoleRepository interface {
	WithTx(tx *sql.Tx) RoleRepository
	Create(ctx context.Context, ar *AccountRole) error
	FindRoleNamesByAccountGuid(ctx context.Context, accountGuid string) ([]string, error)
	DeleteByAccountGuid(ctx context.Context, accountGuid string) error
}

type roleRepository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) WithTx(tx *sql.Tx) RoleRepository {
	return &roleRepository{db: r.db, tx: tx}
}

func (r *roleRepository) Create(ctx context.Context, ar *AccountRole) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, `
			INSERT INTO account_roles (id, account_id, role_id, created_at, updated_at)
			VALUES ($1, $2, $3, now(), now())
		`, ar.ID, ar.AccountID, ar.RoleID)
		return err
	}
	return r.db.WithContext(ctx).Create(ar).Error
}

func (r *roleRepository) FindRoleNamesByAccountGuid(ctx context.Context, accountGuid string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Table("account_roles ar").
		Select("r.name").
		Joins("JOIN roles r ON r.id = ar.role_id").
		Where("ar.account_id = ?", accountGuid).
		Order("r.name ASC").
		Scan(&names).Error
	return names, err
}

func (r *roleRepository) DeleteByAccountGuid(ctx context.Context, accountGuid string) error {
	return r.db.WithContext(ctx).
		Delete(&AccountRole{}, "account_id = ?", accountGuid).Error
}
