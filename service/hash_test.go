// file: service/hash_test.go

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(4) // minimum cost keeps the test fast
	password := "mySecretPassword123"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	t.Run("correct password verifies", func(t *testing.T) {
		assert.True(t, hasher.Verify(password, hash))
	})

	t.Run("password differing by one character fails", func(t *testing.T) {
		assert.False(t, hasher.Verify("mySecretPassword124", hash))
	})

	t.Run("two hashes of the same password differ", func(t *testing.T) {
		otherHash, err := hasher.Hash(password)
		assert.NoError(t, err)
		assert.NotEqual(t, hash, otherHash)
		assert.True(t, hasher.Verify(password, otherHash))
	})
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	hasher := NewPasswordHasher(4)

	// Malformed hash strings must fail verification, never panic.
	assert.False(t, hasher.Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Verify("anything", ""))
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	// An out-of-range cost falls back to the bcrypt default instead of
	// producing a hasher that errors on every call.
	hasher := NewPasswordHasher(99)
	hash, err := hasher.Hash("password")
	assert.NoError(t, err)
	assert.True(t, hasher.Verify("password", hash))
}
