package user_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-workflow/model"
	userrepo "github.com/muhammadheryan/inventory-workflow/repository/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (sqlmock.Sqlmock, userrepo.UserRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return mock, userrepo.NewUserRepository(sqlx.NewDb(db, "mysql"))
}

func TestUserRepository_Get(t *testing.T) {
	columns := []string{"id", "name", "email", "phone", "password_hash", "role_id", "branch_id", "created_at", "updated_at"}
	createdAt := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filter   *model.UserFilter
		mockCall func(m sqlmock.Sqlmock)
		want     *model.UserEntity
		wantErr  bool
	}{
		{
			name:   "success: by email",
			filter: &model.UserFilter{Email: "staff@example.com"},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("FROM user WHERE deleted_at IS NULL AND email = ?")).
					WithArgs("staff@example.com").
					WillReturnRows(sqlmock.NewRows(columns).AddRow(1, "Staff", "staff@example.com", "0812", "hash", 3, 7, createdAt, nil))
			},
			want: &model.UserEntity{ID: 1, Name: "Staff", Email: "staff@example.com", Phone: "0812", PasswordHash: "hash", RoleID: 3, BranchID: 7, CreatedAt: createdAt},
		},
		{
			name:   "not found returns nil",
			filter: &model.UserFilter{ID: 9},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("FROM user WHERE deleted_at IS NULL AND id = ?")).
					WithArgs(9).
					WillReturnRows(sqlmock.NewRows(columns))
			},
			want: nil,
		},
		{
			name:   "error: query fails",
			filter: &model.UserFilter{Phone: "0812"},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("AND phone = ?")).WithArgs("0812").WillReturnError(errors.New("db down"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock, repo := newRepo(t)
			tt.mockCall(mock)

			got, err := repo.Get(context.Background(), tt.filter)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Get() error = %v, wantErr %v", err, tt.wantErr)
			}
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetPermissionSlugs(t *testing.T) {
	mock, repo := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM role_permission rp JOIN permission p ON p.id = rp.permission_id WHERE rp.role_id = ?")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"slug"}).AddRow("transfer.request").AddRow("transfer.ship"))

	got, err := repo.GetPermissionSlugs(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, []string{"transfer.request", "transfer.ship"}, got)
}
