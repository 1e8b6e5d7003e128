package postgres

import (
	"testing"
	"time"

	"secureauth/internal/domain/entity"
	"secureauth/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialMappers_RoundTrip(t *testing.T) {
	cred := &entity.Credential{
		ID:           3,
		Username:     "alice",
		UsernameHash: "$2a$10$uh",
		PasswordHash: "$2a$10$ph",
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	credM := fromCredentialDomain(cred)
	require.NotNil(t, credM)
	assert.Nil(t, credM.PlaintextPassword, "empty plaintext must map to NULL, not empty string")

	back := toCredentialDomain(credM)
	assert.Equal(t, cred.ID, back.ID)
	assert.Equal(t, cred.Username, back.Username)
	assert.Equal(t, cred.UsernameHash, back.UsernameHash)
	assert.Equal(t, cred.PasswordHash, back.PasswordHash)
	assert.Empty(t, back.PlaintextPassword)
}

func TestCredentialMappers_DemoPlaintext(t *testing.T) {
	cred := &entity.Credential{
		Username:          "bob",
		PlaintextPassword: "hunter2",
	}

	credM := fromCredentialDomain(cred)
	require.NotNil(t, credM.PlaintextPassword)
	assert.Equal(t, "hunter2", *credM.PlaintextPassword)

	back := toCredentialDomain(credM)
	assert.Equal(t, "hunter2", back.PlaintextPassword)
}

func TestCredentialMappers_Nil(t *testing.T) {
	assert.Nil(t, fromCredentialDomain(nil))
	assert.Nil(t, toCredentialDomain(nil))
}

func TestCredentialModel_TableName(t *testing.T) {
	assert.Equal(t, "credentials", model.CredentialModel{}.TableName())
}
