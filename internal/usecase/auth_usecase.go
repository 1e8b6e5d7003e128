// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"secureauth/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new credential pair.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Password string `json:"password" validate:"required,min=1,max=128"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HashPreviewInput carries an arbitrary secret for the hashing demonstration.
type HashPreviewInput struct {
	Secret string `json:"secret" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly stored credential's basic information.
type RegisterOutput struct {
	Credential *entity.Credential
}

// LoginOutput returns the issued session after a successful login.
type LoginOutput struct {
	Session  *entity.Session
	Username string
}

// HashPreviewOutput returns two independent salted digests of the same secret.
type HashPreviewOutput struct {
	Secret  string
	HashOne string
	HashTwo string
}

// AuthUsecase defines the interface for credential-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	ListCredentials(ctx context.Context) ([]*entity.Credential, error)
	HashPreview(ctx context.Context, input *HashPreviewInput) (*HashPreviewOutput, error)
}
