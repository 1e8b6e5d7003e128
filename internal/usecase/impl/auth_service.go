// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"secureauth/config"
	deliverycontext "secureauth/internal/delivery/context"
	"secureauth/internal/domain/entity"
	domainerrors "secureauth/internal/domain/errors"
	"secureauth/internal/domain/repository"
	"secureauth/internal/domain/service"
	"secureauth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// verifyConcurrency bounds the number of in-flight bcrypt comparisons during
// a login scan. bcrypt is CPU-bound, so unbounded fan-out only adds scheduler
// pressure without finishing sooner.
const verifyConcurrency = 8

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	credentialRepo repository.CredentialRepository
	hasher         service.CredentialHasher
	sessions       usecase.SessionUsecase
	demoMode       bool
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CredentialRepo repository.CredentialRepository
	Hasher         service.CredentialHasher
	Sessions       usecase.SessionUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	demoMode := false
	if params.Config != nil && params.Config.Auth != nil {
		demoMode = params.Config.Auth.DemoMode
	}

	return &authService{
		txManager:      params.TxManager,
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		sessions:       params.Sessions,
		demoMode:       demoMode,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes both halves of the credential pair and persists the record.
// The username digest and the password digest are produced by two independent
// hashing runs, so each carries its own random salt.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidInput
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	usernameHash, err := srv.hasher.Hash(input.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to hash username during registration", slog.Any("error", err))

		return nil, domainerrors.ErrHashingFailed.WrapMessage("failed to hash username")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrHashingFailed.WrapMessage("failed to hash password")
	}

	cred := &entity.Credential{
		Username:     input.Username,
		UsernameHash: usernameHash,
		PasswordHash: passwordHash,
	}
	if srv.demoMode {
		// Demo retention: the walkthrough pages show the stored plaintext
		// next to its digests. Never enabled outside demo deployments.
		cred.PlaintextPassword = input.Password
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CredentialRepo().Insert(ctx, cred)
	})

	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			srv.log(ctx).Warn("Registration rejected for duplicate username", slog.String("username", input.Username))

			return nil, domainerrors.ErrUsernameTaken
		}
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, domainerrors.ErrRegistrationFailed.WrapMessage("failed to store credential")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("credentialID", cred.ID))

	return &usecase.RegisterOutput{Credential: cred}, nil
}

// Login authenticates a credential pair against the whole table.
//
// Both stored digests are salted, so no digest can be recomputed for an
// indexed lookup; the only sound strategy is to walk every record and run
// the two bcrypt comparisons against it. Every record receives the same
// amount of work whether or not an earlier record already matched, which
// keeps the scan's cost independent of where (or whether) the match sits.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidInput
	}

	srv.log(ctx).Debug("Starting login scan", slog.String("username", input.Username))

	creds, err := srv.credentialRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load credentials for login", slog.Any("error", err))

		return nil, domainerrors.ErrStoreFailed.WrapMessage("failed to load credentials")
	}

	matched, err := srv.scanForMatch(ctx, creds, input.Username, input.Password)
	if err != nil {
		return nil, err
	}
	if matched == nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	session, err := srv.sessions.Issue(ctx, matched.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session after login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("credentialID", matched.ID))

	return &usecase.LoginOutput{
		Session:  session,
		Username: matched.Username,
	}, nil
}

// scanForMatch runs both bcrypt comparisons against every record and only
// then inspects the results. Comparisons fan out across a bounded worker
// group; the group is joined before any verdict is formed.
func (srv *authService) scanForMatch(ctx context.Context, creds []*entity.Credential, username, password string) (*entity.Credential, error) {
	matches := make([]bool, len(creds))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(verifyConcurrency)

	for i, cred := range creds {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			// Evaluate both comparisons unconditionally. A short-circuit on
			// the username digest would leak, through timing, whether the
			// submitted username exists somewhere in the table.
			usernameOK := srv.hasher.Verify(username, cred.UsernameHash)
			passwordOK := srv.hasher.Verify(password, cred.PasswordHash)
			matches[i] = usernameOK && passwordOK

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "login scan aborted")
	}

	var matched *entity.Credential
	matchCount := 0
	for i, ok := range matches {
		if !ok {
			continue
		}
		matchCount++
		// ListAll orders by ascending id, so the first hit is the oldest
		// record and the tie-break is deterministic across restarts.
		if matched == nil {
			matched = creds[i]
		}
	}

	if matchCount > 1 {
		srv.log(ctx).Warn("Multiple credential records matched one login",
			slog.Int("matches", matchCount),
			slog.Int64("selectedCredentialID", matched.ID))
	}

	return matched, nil
}

// ListCredentials returns every stored record for the walkthrough's history
// view. Outside demo mode the plaintext column is stripped before the
// records leave the usecase layer.
func (srv *authService) ListCredentials(ctx context.Context) ([]*entity.Credential, error) {
	creds, err := srv.credentialRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list credentials", slog.Any("error", err))

		return nil, domainerrors.ErrStoreFailed.WrapMessage("failed to list credentials")
	}

	if !srv.demoMode {
		for i, cred := range creds {
			creds[i] = cred.Redacted()
		}
	}

	return creds, nil
}

// HashPreview hashes the same secret twice so the caller can observe two
// different digests for identical input. This is the interactive half of the
// salting demonstration.
func (srv *authService) HashPreview(ctx context.Context, input *usecase.HashPreviewInput) (*usecase.HashPreviewOutput, error) {
	hashOne, err := srv.hasher.Hash(input.Secret)
	if err != nil {
		return nil, domainerrors.ErrHashingFailed.WrapMessage("failed to hash secret")
	}

	hashTwo, err := srv.hasher.Hash(input.Secret)
	if err != nil {
		return nil, domainerrors.ErrHashingFailed.WrapMessage("failed to hash secret")
	}

	srv.log(ctx).Debug("Produced hash preview")

	return &usecase.HashPreviewOutput{
		Secret:  input.Secret,
		HashOne: hashOne,
		HashTwo: hashTwo,
	}, nil
}
