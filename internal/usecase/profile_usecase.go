// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"secureauth/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, username string) (*entity.Profile, error)
}
