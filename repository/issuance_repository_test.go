// file: repository/issuance_repository_test.go

package repository

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"lifeseeker-api/model"
)

func TestIssuanceRepository_Get(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewIssuanceRepository(db)
	query := regexp.QuoteMeta(`SELECT username, issued_at, expires_at FROM token_issuance WHERE username = $1`)

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"username", "issued_at", "expires_at"}).
			AddRow("alice", int64(1700000000), int64(1700000900))
		dbMock.ExpectQuery(query).WithArgs("alice").WillReturnRows(rows)

		issuance, err := repo.Get("alice")
		assert.NoError(t, err)
		assert.Equal(t, "alice", issuance.Username)
		assert.Equal(t, int64(1700000000), issuance.IssuedAt)
		assert.Equal(t, int64(1700000900), issuance.ExpiresAt)
	})

	t.Run("no record", func(t *testing.T) {
		dbMock.ExpectQuery(query).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

		issuance, err := repo.Get("ghost")
		assert.Nil(t, issuance)
		assert.Equal(t, sql.ErrNoRows, err)
	})

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestIssuanceRepository_Upsert(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewIssuanceRepository(db)
	query := regexp.QuoteMeta(`INSERT INTO token_issuance (username, issued_at, expires_at) VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET issued_at = EXCLUDED.issued_at, expires_at = EXCLUDED.expires_at`)

	record := &model.TokenIssuance{
		Username:  "alice",
		IssuedAt:  1700000000,
		ExpiresAt: 1700000900,
	}

	t.Run("success", func(t *testing.T) {
		dbMock.ExpectExec(query).
			WithArgs(record.Username, record.IssuedAt, record.ExpiresAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Upsert(record))
	})

	t.Run("database error", func(t *testing.T) {
		dbMock.ExpectExec(query).
			WithArgs(record.Username, record.IssuedAt, record.ExpiresAt).
			WillReturnError(errors.New("connection reset"))

		assert.Error(t, repo.Upsert(record))
	})

	assert.NoError(t, dbMock.ExpectationsWereMet())
}
