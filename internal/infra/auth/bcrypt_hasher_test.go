package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	secret := "s3cret"
	hash, err := hasher.Hash(secret)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, secret, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Verify(secret, hash))
}

func TestBcryptHasher_HashSaltUniqueness(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	// The same input hashed twice must produce different stored values
	// because each call draws a fresh salt.
	first, err := hasher.Hash("alice")
	assert.NoError(t, err)
	second, err := hasher.Hash("alice")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("alice", first))
	assert.True(t, hasher.Verify("alice", second))
}

func TestBcryptHasher_Verify(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	secret := "s3cret"

	hash, err := hasher.Hash(secret)
	assert.NoError(t, err)

	// Correct candidate
	assert.True(t, hasher.Verify(secret, hash))

	// Incorrect candidate
	assert.False(t, hasher.Verify("wrong", hash))

	// Empty candidate
	assert.False(t, hasher.Verify("", hash))

	// Malformed stored hash returns false, never an error
	assert.False(t, hasher.Verify(secret, "not_a_bcrypt_hash"))
	assert.False(t, hasher.Verify(secret, ""))
}

func TestBcryptHasher_AnyInputIsHashable(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	inputs := []string{
		"",
		" ",
		"日本語ユーザー",
		"with\x00nul",
		"!@#$%^&*()",
		strings.Repeat("p", 100),
		strings.Repeat("ユ", 30),
	}

	for _, input := range inputs {
		hash, err := hasher.Hash(input)
		assert.NoError(t, err, "input %q should be hashable", input)
		assert.True(t, hasher.Verify(input, hash))
	}
}

func TestBcryptHasher_LongSecretsTruncateAtLimit(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	long := strings.Repeat("p", 100)
	hash, err := hasher.Hash(long)
	assert.NoError(t, err)

	// Only the first 72 bytes take part in the digest, so candidates that
	// agree on that prefix verify and ones that diverge inside it do not.
	assert.True(t, hasher.Verify(long, hash))
	assert.True(t, hasher.Verify(strings.Repeat("p", 72), hash))
	assert.True(t, hasher.Verify(strings.Repeat("p", 72)+"different tail", hash))
	assert.False(t, hasher.Verify(strings.Repeat("p", 71)+"q", hash))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("s3cret")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)

	assert.True(t, hasher.Verify("s3cret", hash))
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99)

	hash, err := hasher.Hash("s3cret")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
