// file: service/token_codec.go

package service

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"lifeseeker-api/model"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenCodec signs claim sets into compact JWT strings and decodes them
// back. Decode verifies only the signature and structure; semantic checks
// (expiration, issuance binding) belong to the caller so they can be
// tested independently of signature mechanics.
type TokenCodec struct {
	secret []byte
	method jwt.SigningMethod
	parser *jwt.Parser
}

func NewTokenCodec(secret, algorithm string) (*TokenCodec, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unsupported signing algorithm: %s", algorithm)
	}
	return &TokenCodec{
		secret: []byte(secret),
		method: method,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{algorithm}),
			jwt.WithoutClaimsValidation(),
		),
	}, nil
}

func (c *TokenCodec) Encode(claims *model.AppClaims) (string, error) {
	token := jwt.NewWithClaims(c.method, claims)
	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}
	return tokenString, nil
}

// Decode verifies the signature and returns the embedded claims. It fails
// on an invalid signature, a malformed token, or an algorithm mismatch.
func (c *TokenCodec) Decode(tokenString string) (*model.AppClaims, error) {
	claims := &model.AppClaims{}
	token, err := c.parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
