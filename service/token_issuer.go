// file: service/token_issuer.go

package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"lifeseeker-api/logger"
	"lifeseeker-api/model"
	"lifeseeker-api/repository"
)

const DefaultTokenExpiry = 15 * time.Minute

// TokenIssuer builds claim sets, records the issuance time server-side,
// and produces the signed access/refresh pair. The issuance record write
// is transactional with token return: if it fails, no tokens are issued,
// since the verifier would reject them against the missing record anyway.
type TokenIssuer struct {
	codec        *TokenCodec
	issuanceRepo repository.IIssuanceRepository
	expiry       time.Duration
}

func NewTokenIssuer(codec *TokenCodec, issuanceRepo repository.IIssuanceRepository, expiry time.Duration) *TokenIssuer {
	if expiry <= 0 {
		expiry = DefaultTokenExpiry
	}
	return &TokenIssuer{
		codec:        codec,
		issuanceRepo: issuanceRepo,
		expiry:       expiry,
	}
}

// CreateAuthenticationToken issues a fresh access/refresh pair for
// username. The issuance record is overwritten first, which invalidates
// every previously issued token for this user.
func (s *TokenIssuer) CreateAuthenticationToken(username string) (*model.TokenPair, error) {
	now := time.Now().Truncate(time.Second)
	issuedAt := now.Unix()
	expiresAt := now.Add(s.expiry).Unix()

	issuance := &model.TokenIssuance{
		Username:  username,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}
	if err := s.issuanceRepo.Upsert(issuance); err != nil {
		return nil, fmt.Errorf("failed to persist token issuance: %w", err)
	}

	accessToken, err := s.signToken(username, model.TokenTypeAccess, issuedAt, expiresAt)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.signToken(username, model.TokenTypeRefresh, issuedAt, expiresAt)
	if err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"username":   username,
		"expires_at": expiresAt,
	}).Info("Issued new authentication token pair")

	return &model.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *TokenIssuer) signToken(username, tokenType string, issuedAt, expiresAt int64) (string, error) {
	claims := &model.AppClaims{
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(time.Unix(issuedAt, 0)),
			ExpiresAt: jwt.NewNumericDate(time.Unix(expiresAt, 0)),
		},
	}
	return s.codec.Encode(claims)
}
