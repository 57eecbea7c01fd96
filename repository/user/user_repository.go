package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-workflow/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	GetPermissionSlugs(ctx context.Context, roleID uint64) ([]string, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	getUserBase          = `SELECT id, name, email, phone, password_hash, role_id, branch_id, created_at, updated_at FROM user WHERE deleted_at IS NULL`
	getPermissionsByRole = `SELECT p.slug FROM role_permission rp JOIN permission p ON p.id = rp.permission_id WHERE rp.role_id = ? ORDER BY p.slug`
)

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetPermissionSlugs(ctx context.Context, roleID uint64) ([]string, error) {
	slugs := make([]string, 0)
	if err := s.conn.SelectContext(ctx, &slugs, getPermissionsByRole, roleID); err != nil {
		return nil, err
	}
	return slugs, nil
}
