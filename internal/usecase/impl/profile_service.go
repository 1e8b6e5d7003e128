package impl

import (
	"context"
	"log/slog"

	deliverycontext "secureauth/internal/delivery/context"
	"secureauth/internal/domain/entity"
	domainerrors "secureauth/internal/domain/errors"
	"secureauth/internal/domain/repository"
	"secureauth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	credentialRepo repository.CredentialRepository
	logger         *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	Logger         *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		credentialRepo: params.CredentialRepo,
		logger:         params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile loads the public view of an account. The subject comes from the
// session, so a missing record means the account was removed after login.
func (srv *profileService) GetProfile(ctx context.Context, username string) (*entity.Profile, error) {
	cred, err := srv.credentialRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			srv.log(ctx).Warn("Session subject has no credential record", slog.String("username", username))

			return nil, domainerrors.ErrNotFound.WrapMessage("account no longer exists")
		}
		srv.log(ctx).Error("Failed to load profile", slog.Any("error", err))

		return nil, domainerrors.ErrStoreFailed.WrapMessage("failed to load profile")
	}

	return &entity.Profile{
		Username:     cred.Username,
		RegisteredAt: cred.CreatedAt,
	}, nil
}
