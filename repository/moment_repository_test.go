// file: repository/moment_repository_test.go

package repository

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"lifeseeker-api/model"
)

func TestMomentRepository_HasMomentsForDate(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMomentRepository(db)
	query := regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM moments WHERE username = $1 AND moment_date = $2)`)

	dbMock.ExpectQuery(query).WithArgs("alice", "2019-04-01").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.HasMomentsForDate("alice", "2019-04-01")
	assert.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestMomentRepository_InsertMoments(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMomentRepository(db)

	t.Run("insert fails on duplicates", func(t *testing.T) {
		query := regexp.QuoteMeta(`INSERT INTO moments (username, moment_date, image_name) VALUES ($1, $2, $3)`)
		dbMock.ExpectBegin()
		dbMock.ExpectExec(query).WithArgs("alice", "2019-04-01", "img_a.jpg").
			WillReturnError(errors.New("duplicate key value violates unique constraint"))
		dbMock.ExpectRollback()

		err := repo.InsertMoments("alice", "2019-04-01", []string{"img_a.jpg"})
		assert.Error(t, err)
	})

	t.Run("append ignores duplicates", func(t *testing.T) {
		query := regexp.QuoteMeta(`INSERT INTO moments (username, moment_date, image_name) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`)
		dbMock.ExpectBegin()
		dbMock.ExpectExec(query).WithArgs("alice", "2019-04-01", "img_a.jpg").
			WillReturnResult(sqlmock.NewResult(0, 0))
		dbMock.ExpectExec(query).WithArgs("alice", "2019-04-01", "img_b.jpg").
			WillReturnResult(sqlmock.NewResult(0, 1))
		dbMock.ExpectCommit()

		err := repo.AppendMoments("alice", "2019-04-01", []string{"img_a.jpg", "img_b.jpg"})
		assert.NoError(t, err)
	})

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestMomentRepository_UpdateMomentDetailField(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMomentRepository(db)

	t.Run("whitelisted field", func(t *testing.T) {
		query := regexp.QuoteMeta(`UPDATE moment_details SET location = $1 WHERE username = $2 AND moment_date = $3 AND local_time = $4`)
		dbMock.ExpectExec(query).
			WithArgs("Home", "alice", "2019-04-01", "08:15:30").
			WillReturnResult(sqlmock.NewResult(0, 1))

		affected, err := repo.UpdateMomentDetailField("alice", "2019-04-01", "08:15:30", model.ListTypeLocation, "Home")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("unknown field is rejected before touching the database", func(t *testing.T) {
		affected, err := repo.UpdateMomentDetailField("alice", "2019-04-01", "08:15:30", "username; DROP TABLE users", "x")
		assert.Error(t, err)
		assert.Zero(t, affected)
	})

	assert.NoError(t, dbMock.ExpectationsWereMet())
}
