// file: service/token_codec_test.go

package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"lifeseeker-api/model"
)

func testClaims(username string, issuedAt, expiresAt time.Time) *model.AppClaims {
	return &model.AppClaims{
		Username:  username,
		TokenType: model.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec, err := NewTokenCodec("test-secret", "HS256")
	assert.NoError(t, err)

	now := time.Now().Truncate(time.Second)
	claims := testClaims("nvtu", now, now.Add(15*time.Minute))

	token, err := codec.Encode(claims)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	decoded, err := codec.Decode(token)
	assert.NoError(t, err)
	assert.Equal(t, "nvtu", decoded.Username)
	assert.Equal(t, model.TokenTypeAccess, decoded.TokenType)
	assert.Equal(t, now.Unix(), decoded.IssuedAt.Unix())
	assert.Equal(t, now.Add(15*time.Minute).Unix(), decoded.ExpiresAt.Unix())
}

func TestTokenCodec_DecodeFailures(t *testing.T) {
	codec, err := NewTokenCodec("test-secret", "HS256")
	assert.NoError(t, err)

	now := time.Now()
	token, err := codec.Encode(testClaims("nvtu", now, now.Add(time.Minute)))
	assert.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		otherCodec, err := NewTokenCodec("other-secret", "HS256")
		assert.NoError(t, err)

		_, err = otherCodec.Decode(token)
		assert.Error(t, err)
	})

	t.Run("tampered payload", func(t *testing.T) {
		parts := strings.Split(token, ".")
		assert.Len(t, parts, 3)

		payload := []byte(parts[1])
		payload[0] ^= 1
		tampered := parts[0] + "." + string(payload) + "." + parts[2]

		_, err := codec.Decode(tampered)
		assert.Error(t, err)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := codec.Decode("not.a.jwt")
		assert.Error(t, err)
	})

	t.Run("algorithm mismatch", func(t *testing.T) {
		hs384, err := NewTokenCodec("test-secret", "HS384")
		assert.NoError(t, err)
		foreign, err := hs384.Encode(testClaims("nvtu", now, now.Add(time.Minute)))
		assert.NoError(t, err)

		_, err = codec.Decode(foreign)
		assert.Error(t, err)
	})
}

// Decode performs no semantic validation: an expired token with a valid
// signature still decodes. Expiration is the verifier's responsibility.
func TestTokenCodec_DecodeExpiredToken(t *testing.T) {
	codec, err := NewTokenCodec("test-secret", "HS256")
	assert.NoError(t, err)

	past := time.Now().Add(-2 * time.Hour)
	token, err := codec.Encode(testClaims("nvtu", past, past.Add(time.Minute)))
	assert.NoError(t, err)

	decoded, err := codec.Decode(token)
	assert.NoError(t, err)
	assert.Equal(t, "nvtu", decoded.Username)
}

func TestNewTokenCodec_UnsupportedAlgorithm(t *testing.T) {
	_, err := NewTokenCodec("test-secret", "HS999")
	assert.Error(t, err)
}
