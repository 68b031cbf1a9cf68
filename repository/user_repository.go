package repository

import (
	"database/sql"

	"github.com/sirupsen/logrus"
	"lifeseeker-api/logger"
	"lifeseeker-api/model"
)

// IUserRepository defines the contract for user and capture-date persistence.
type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserByUsername(username string) (*model.User, error)
	ExistsByUsername(username string) (bool, error)
	GetAllUsers(skip, limit int) ([]*model.User, error)
	InsertDates(username string, dates []string) error
	GetDates(username string) ([]string, error)
}

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CreateUser(user *model.User) error {
	query := `INSERT INTO users (username, name, password_hash) VALUES ($1, $2, $3) RETURNING created_at`
	err := r.DB.QueryRow(query, user.Username, user.Name, user.Password).Scan(&user.CreatedAt)
	if err != nil {
		logger.Log.WithField("username", user.Username).WithError(err).Error("Failed to execute create user query")
		return err
	}
	return nil
}

func (r *UserRepository) GetUserByUsername(username string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT username, name, password_hash, created_at FROM users WHERE username = $1`
	err := r.DB.QueryRow(query, username).Scan(&user.Username, &user.Name, &user.Password, &user.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithField("username", username).WithError(err).Error("Failed to execute get user query")
		}
		return nil, err // Return sql.ErrNoRows if not found
	}
	return user, nil
}

// ExistsByUsername reports whether a credential record exists for username.
func (r *UserRepository) ExistsByUsername(username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
	if err := r.DB.QueryRow(query, username).Scan(&exists); err != nil {
		logger.Log.WithField("username", username).WithError(err).Error("Failed to execute user exists query")
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) GetAllUsers(skip, limit int) ([]*model.User, error) {
	query := `SELECT username, name, password_hash, created_at FROM users ORDER BY username OFFSET $1 LIMIT $2`
	rows, err := r.DB.Query(query, skip, limit)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list users query")
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.Username, &u.Name, &u.Password, &u.CreatedAt); err != nil {
			logger.Log.WithError(err).Error("Failed to scan user row")
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

// InsertDates appends capture dates to the user's date set. Dates already
// present are ignored.
func (r *UserRepository) InsertDates(username string, dates []string) error {
	log := logger.Log.WithFields(logrus.Fields{
		"username": username,
		"count":    len(dates),
	})
	log.Info("Executing query to insert capture dates")

	tx, err := r.DB.Begin()
	if err != nil {
		log.WithError(err).Error("Failed to begin transaction for insert dates")
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO user_dates (username, capture_date) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	for _, d := range dates {
		if _, err := tx.Exec(query, username, d); err != nil {
			log.WithError(err).Error("Failed to execute insert date query")
			return err
		}
	}
	return tx.Commit()
}

func (r *UserRepository) GetDates(username string) ([]string, error) {
	query := `SELECT to_char(capture_date, 'YYYY-MM-DD') FROM user_dates WHERE username = $1 ORDER BY capture_date`
	rows, err := r.DB.Query(query, username)
	if err != nil {
		logger.Log.WithField("username", username).WithError(err).Error("Failed to execute get dates query")
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}
