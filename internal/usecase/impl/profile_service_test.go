package impl

import (
	"context"
	"testing"
	"time"

	"secureauth/internal/domain/entity"
	domainerrors "secureauth/internal/domain/errors"
	"secureauth/internal/domain/repository"
	mockRepo "secureauth/internal/mocks/repository"
	"secureauth/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileServiceForTest(t *testing.T) (usecase.ProfileUsecase, *mockRepo.MockCredentialRepository) {
	t.Helper()

	credRepo := mockRepo.NewMockCredentialRepository(t)
	svc := NewProfileService(ProfileServiceParams{
		CredentialRepo: credRepo,
		Logger:         newTestLogger(),
	})

	return svc, credRepo
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	svc, credRepo := newProfileServiceForTest(t)
	ctx := context.Background()

	registeredAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	credRepo.EXPECT().FindByUsername(ctx, "alice").Return(&entity.Credential{
		ID:           1,
		Username:     "alice",
		UsernameHash: "uh",
		PasswordHash: "ph",
		CreatedAt:    registeredAt,
	}, nil)

	profile, err := svc.GetProfile(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, registeredAt, profile.RegisteredAt)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	svc, credRepo := newProfileServiceForTest(t)
	ctx := context.Background()

	credRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrCredentialNotFound)

	profile, err := svc.GetProfile(ctx, "ghost")

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProfileService_GetProfile_StoreFailure(t *testing.T) {
	svc, credRepo := newProfileServiceForTest(t)
	ctx := context.Background()

	credRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, assert.AnError)

	profile, err := svc.GetProfile(ctx, "alice")

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrStoreFailed)
}
