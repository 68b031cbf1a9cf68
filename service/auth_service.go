package service

import (
	"database/sql"
	"time"

	"lifeseeker-api/logger"
	"lifeseeker-api/repository"
	"lifeseeker-api/telemetry"
)

// AuthService verifies credentials, user existence, and the server-side
// issuance-time binding of tokens. Every check is fail-closed: a storage
// error is captured to telemetry and treated as verification failure.
type AuthService struct {
	userRepo     repository.IUserRepository
	issuanceRepo repository.IIssuanceRepository
	hasher       *PasswordHasher
}

func NewAuthService(userRepo repository.IUserRepository, issuanceRepo repository.IIssuanceRepository, hasher *PasswordHasher) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		issuanceRepo: issuanceRepo,
		hasher:       hasher,
	}
}

// Authenticate checks a username/password pair against the credential
// store. Read-only; no side effects.
func (s *AuthService) Authenticate(username, password string) bool {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithField("username", username).WithError(err).Error("Credential lookup failed")
			telemetry.CaptureException(err)
		}
		return false
	}
	return s.hasher.Verify(password, user.Password)
}

// VerifyUser reports whether a credential record exists for username. Used
// at login and on every protected request, so a deleted account
// immediately invalidates all its outstanding tokens.
func (s *AuthService) VerifyUser(username string) bool {
	exists, err := s.userRepo.ExistsByUsername(username)
	if err != nil {
		telemetry.CaptureException(err)
		return false
	}
	return exists
}

// VerifyUserTimeInfo checks the token's embedded issued-at against the
// single currently recorded issuance time. A mismatch means the token was
// superseded by a later login and must be rejected even if unexpired.
func (s *AuthService) VerifyUserTimeInfo(username string, issuedAt int64) bool {
	issuance, err := s.issuanceRepo.Get(username)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithField("username", username).WithError(err).Error("Issuance lookup failed")
			telemetry.CaptureException(err)
		}
		return false
	}
	return issuance.IssuedAt == issuedAt
}

// VerifyExpirationTime reports whether expiresAt is still in the future.
func (s *AuthService) VerifyExpirationTime(expiresAt int64) bool {
	return expiresAt > time.Now().Unix()
}
