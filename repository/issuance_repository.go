// file: repository/issuance_repository.go

package repository

import (
	"database/sql"

	"github.com/sirupsen/logrus"
	"lifeseeker-api/logger"
	"lifeseeker-api/model"
)

// IIssuanceRepository defines the contract for the per-user token issuance
// record. At most one record exists per username.
type IIssuanceRepository interface {
	Get(username string) (*model.TokenIssuance, error)
	Upsert(issuance *model.TokenIssuance) error
}

// IssuanceRepository implements IIssuanceRepository.
type IssuanceRepository struct {
	DB *sql.DB
}

// NewIssuanceRepository creates a new IssuanceRepository.
func NewIssuanceRepository(db *sql.DB) *IssuanceRepository {
	return &IssuanceRepository{DB: db}
}

// Get retrieves the current issuance record for username.
func (r *IssuanceRepository) Get(username string) (*model.TokenIssuance, error) {
	issuance := &model.TokenIssuance{}
	query := `SELECT username, issued_at, expires_at FROM token_issuance WHERE username = $1`
	err := r.DB.QueryRow(query, username).Scan(&issuance.Username, &issuance.IssuedAt, &issuance.ExpiresAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithField("username", username).WithError(err).Error("Failed to execute get issuance query")
		}
		return nil, err // Return sql.ErrNoRows if not found
	}
	return issuance, nil
}

// Upsert writes the issuance record for a user, overwriting any previous
// one. This is the single point where prior tokens are invalidated.
func (r *IssuanceRepository) Upsert(issuance *model.TokenIssuance) error {
	log := logger.Log.WithFields(logrus.Fields{
		"username":   issuance.Username,
		"issued_at":  issuance.IssuedAt,
		"expires_at": issuance.ExpiresAt,
	})
	log.Info("Executing query to upsert token issuance record")

	query := `INSERT INTO token_issuance (username, issued_at, expires_at) VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET issued_at = EXCLUDED.issued_at, expires_at = EXCLUDED.expires_at`
	if _, err := r.DB.Exec(query, issuance.Username, issuance.IssuedAt, issuance.ExpiresAt); err != nil {
		log.WithError(err).Error("Failed to execute upsert issuance query")
		return err
	}
	return nil
}
