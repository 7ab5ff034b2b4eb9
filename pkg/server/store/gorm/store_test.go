package gorm

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sivamani2003/accesshub/pkg/model"
	"github.com/sivamani2003/accesshub/pkg/server/store"
)

// newMockDB wraps sqlmock with GORM. Default transactions are skipped so
// expectations match single statements.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger:                 logger.Default.LogMode(logger.Silent),
			SkipDefaultTransaction: true,
		},
	)
	require.NoError(t, err)

	return gormDB, mock
}

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pq.Error{Code: uniqueViolationCode, Constraint: "requests_one_pending_idx"}

	assert.True(t, isUniqueViolation(uniqueErr, ""))
	assert.True(t, isUniqueViolation(uniqueErr, "requests_one_pending_idx"))
	assert.False(t, isUniqueViolation(uniqueErr, "users_username_key"))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}, ""))
	assert.False(t, isUniqueViolation(assert.AnError, ""))
}

func TestUsersStoreFindByUsername(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		usersStore := NewUsersStore(db)

		rows := sqlmock.NewRows([]string{"id", "username", "password", "role"}).
			AddRow(1, "alice", "$2a$10$hash", "Employee")
		mock.ExpectQuery(`SELECT (.+) FROM "users"`).WithArgs("alice").WillReturnRows(rows)

		user, err := usersStore.FindByUsername("alice")
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		assert.Equal(t, model.RoleEmployee, user.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		usersStore := NewUsersStore(db)

		mock.ExpectQuery(`SELECT (.+) FROM "users"`).WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "role"}))

		_, err := usersStore.FindByUsername("ghost")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestUsersStoreCreateUserConflict(t *testing.T) {
	db, mock := newMockDB(t)
	usersStore := NewUsersStore(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pq.Error{Code: uniqueViolationCode, Constraint: "users_username_key"})

	_, err := usersStore.CreateUser(store.NewUser{
		Username:     "alice",
		PasswordHash: "$2a$10$hash",
		Role:         model.RoleEmployee,
	})
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

func TestRequestsStoreHasApprovedWrite(t *testing.T) {
	db, mock := newMockDB(t)
	requestsStore := NewRequestsStore(db)

	mock.ExpectQuery(`SELECT count(.+) FROM "requests"`).
		WithArgs(uint(3), uint(9), "Write", string(model.StatusApproved)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := requestsStore.HasApprovedWrite(3, 9)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRequestsStoreUpdateStatusGuard(t *testing.T) {
	t.Run("already terminal", func(t *testing.T) {
		db, mock := newMockDB(t)
		requestsStore := NewRequestsStore(db)

		mock.ExpectExec(`UPDATE "requests"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		rows := sqlmock.NewRows([]string{"id", "user_id", "software_id", "access_type", "reason", "status"}).
			AddRow(5, 1, 2, "Read", "reports", "Approved")
		mock.ExpectQuery(`SELECT (.+) FROM "requests"`).WillReturnRows(rows)

		_, err := requestsStore.UpdateStatus(5, model.StatusRejected)
		assert.ErrorIs(t, err, store.ErrRequestNotPending)
	})

	t.Run("missing request", func(t *testing.T) {
		db, mock := newMockDB(t)
		requestsStore := NewRequestsStore(db)

		mock.ExpectExec(`UPDATE "requests"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT (.+) FROM "requests"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := requestsStore.UpdateStatus(404, model.StatusApproved)
		assert.ErrorIs(t, err, store.ErrRequestNotFound)
	})
}
