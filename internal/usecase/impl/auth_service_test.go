package impl

import (
	"context"
	"testing"
	"time"

	"secureauth/internal/domain/entity"
	domainerrors "secureauth/internal/domain/errors"
	"secureauth/internal/domain/repository"
	mockRepo "secureauth/internal/mocks/repository"
	mockService "secureauth/internal/mocks/service"
	mockUsecase "secureauth/internal/mocks/usecase"
	"secureauth/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(t *testing.T, demoMode bool) (usecase.AuthUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockCredentialRepository, *mockService.MockCredentialHasher, *mockUsecase.MockSessionUsecase) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	credRepo := mockRepo.NewMockCredentialRepository(t)
	hasher := mockService.NewMockCredentialHasher(t)
	sessions := mockUsecase.NewMockSessionUsecase(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:      txManager,
		CredentialRepo: credRepo,
		Hasher:         hasher,
		Sessions:       sessions,
		Config:         newTestConfig(demoMode),
		Logger:         newTestLogger(),
	})

	return service, txManager, credRepo, hasher, sessions
}

func TestAuthService_Register_Success(t *testing.T) {
	service, txManager, _, hasher, _ := newAuthServiceForTest(t, false)
	ctx := context.Background()

	hasher.EXPECT().Hash("alice").Return("$2a$10$username-digest", nil)
	hasher.EXPECT().Hash("s3cret").Return("$2a$10$password-digest", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().
				Insert(ctx, mock.AnythingOfType("*entity.Credential")).
				Run(func(ctx context.Context, cred *entity.Credential) {
					cred.ID = 7
					cred.CreatedAt = time.Now()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	out, err := service.Register(ctx, &usecase.RegisterInput{Username: "alice", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), out.Credential.ID)
	assert.Equal(t, "alice", out.Credential.Username)
	assert.Equal(t, "$2a$10$username-digest", out.Credential.UsernameHash)
	assert.Equal(t, "$2a$10$password-digest", out.Credential.PasswordHash)
	assert.Empty(t, out.Credential.PlaintextPassword)
}

func TestAuthService_Register_DemoModeRetainsPlaintext(t *testing.T) {
	service, txManager, _, hasher, _ := newAuthServiceForTest(t, true)
	ctx := context.Background()

	hasher.EXPECT().Hash("bob").Return("uh", nil)
	hasher.EXPECT().Hash("hunter2").Return("ph", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockCredRepo.EXPECT().
				Insert(ctx, mock.AnythingOfType("*entity.Credential")).
				Run(func(ctx context.Context, cred *entity.Credential) {
					assert.Equal(t, "hunter2", cred.PlaintextPassword)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	out, err := service.Register(ctx, &usecase.RegisterInput{Username: "bob", Password: "hunter2"})

	require.NoError(t, err)
	assert.Equal(t, "hunter2", out.Credential.PlaintextPassword)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	service, txManager, _, hasher, _ := newAuthServiceForTest(t, false)
	ctx := context.Background()

	hasher.EXPECT().Hash("alice").Return("uh", nil)
	hasher.EXPECT().Hash("pw").Return("ph", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicateUsername)

	out, err := service.Register(ctx, &usecase.RegisterInput{Username: "alice", Password: "pw"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	service, _, _, hasher, _ := newAuthServiceForTest(t, false)
	ctx := context.Background()

	hasher.EXPECT().Hash("alice").Return("", assert.AnError)

	out, err := service.Register(ctx, &usecase.RegisterInput{Username: "alice", Password: "pw"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrHashingFailed)
}

func TestAuthService_Login_Success(t *testing.T) {
	service, _, credRepo, hasher, sessions := newAuthServiceForTest(t, false)
	ctx := context.Background()

	creds := []*entity.Credential{
		{ID: 1, Username: "alice", UsernameHash: "uh1", PasswordHash: "ph1"},
		{ID: 2, Username: "bob", UsernameHash: "uh2", PasswordHash: "ph2"},
	}
	credRepo.EXPECT().ListAll(ctx).Return(creds, nil)

	hasher.EXPECT().Verify("bob", "uh1").Return(false)
	hasher.EXPECT().Verify("hunter2", "ph1").Return(false)
	hasher.EXPECT().Verify("bob", "uh2").Return(true)
	hasher.EXPECT().Verify("hunter2", "ph2").Return(true)

	issued := &entity.Session{ID: "sess-1", SubjectUsername: "bob", Authenticated: true}
	sessions.EXPECT().Issue(mock.Anything, "bob").Return(issued, nil)

	out, err := service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: "hunter2"})

	require.NoError(t, err)
	assert.Equal(t, "bob", out.Username)
	assert.Equal(t, "sess-1", out.Session.ID)
	assert.True(t, out.Session.Authenticated)
}

func TestAuthService_Login_NoMatch(t *testing.T) {
	service, _, credRepo, hasher, _ := newAuthServiceForTest(t, false)
	ctx := context.Background()

	creds := []*entity.Credential{
		{ID: 1, Username: "alice", UsernameHash: "uh1", PasswordHash: "ph1"},
	}
	credRepo.EXPECT().ListAll(ctx).Return(creds, nil)

	hasher.EXPECT().Verify("mallory", "uh1").Return(false)
	hasher.EXPECT().Verify("guess", "ph1").Return(false)

	out, err := service.Login(ctx, &usecase.LoginInput{Username: "mallory", Password: "guess"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPasswordMatchingUsername(t *testing.T) {
	service, _, credRepo, hasher, _ := newAuthServiceForTest(t, false)
	ctx := context.Background()

	creds := []*entity.Credential{
		{ID: 1, Username: "alice", UsernameHash: "uh1", PasswordHash: "ph1"},
	}
	credRepo.EXPECT().ListAll(ctx).Return(creds, nil)

	// Username digest matches but the password digest does not. The caller
	// must see the same rejection as a wholly unknown username.
	hasher.EXPECT().Verify("alice", "uh1").Return(true)
	hasher.EXPECT().Verify("wrong", "ph1").Return(false)

	out, err := service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_EmptyTable(t *testing.T) {
	service, _, credRepo, _, _ := newAuthServiceForTest(t, false)
	ctx := context.Background()

	credRepo.EXPECT().ListAll(ctx).Return([]*entity.Credential{}, nil)

	out, err := service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "pw"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_MultipleMatchesPicksLowestID(t *testing.T) {
	service, _, credRepo, hasher, sessions := newAuthServiceForTest(t, false)
	ctx := context.Background()

	// Registering the same pair twice under demo data produces two records
	// that both verify. The oldest record must win, deterministically.
	creds := []*entity.Credential{
		{ID: 3, Username: "alice", UsernameHash: "uh3", PasswordHash: "ph3"},
		{ID: 9, Username: "alice2", UsernameHash: "uh9", PasswordHash: "ph9"},
	}
	credRepo.EXPECT().ListAll(ctx).Return(creds, nil)

	hasher.EXPECT().Verify("alice", "uh3").Return(true)
	hasher.EXPECT().Verify("pw", "ph3").Return(true)
	hasher.EXPECT().Verify("alice", "uh9").Return(true)
	hasher.EXPECT().Verify("pw", "ph9").Return(true)

	issued := &entity.Session{ID: "sess-3", SubjectUsername: "alice", Authenticated: true}
	sessions.EXPECT().Issue(mock.Anything, "alice").Return(issued, nil)

	out, err := service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "alice", out.Username)
}

func TestAuthService_Login_AllRecordsComparedEvenAfterMatch(t *testing.T) {
	service, _, credRepo, hasher, sessions := newAuthServiceForTest(t, false)
	ctx := context.Background()

	creds := []*entity.Credential{
		{ID: 1, Username: "alice", UsernameHash: "uh1", PasswordHash: "ph1"},
		{ID: 2, Username: "bob", UsernameHash: "uh2", PasswordHash: "ph2"},
		{ID: 3, Username: "carol", UsernameHash: "uh3", PasswordHash: "ph3"},
	}
	credRepo.EXPECT().ListAll(ctx).Return(creds, nil)

	// The match sits on the first record; the later records must still
	// receive both comparisons before any verdict is formed.
	for _, cred := range creds {
		hasher.EXPECT().Verify("alice", cred.UsernameHash).Return(cred.ID == 1).Once()
		hasher.EXPECT().Verify("pw", cred.PasswordHash).Return(cred.ID == 1).Once()
	}

	issued := &entity.Session{ID: "sess-1", SubjectUsername: "alice", Authenticated: true}
	sessions.EXPECT().Issue(mock.Anything, "alice").Return(issued, nil)

	out, err := service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "alice", out.Username)
	hasher.AssertNumberOfCalls(t, "Verify", 6)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	service, _, credRepo, _, _ := newAuthServiceForTest(t, false)
	ctx := context.Background()

	credRepo.EXPECT().ListAll(ctx).Return(nil, assert.AnError)

	out, err := service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "pw"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrStoreFailed)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_ListCredentials_RedactsOutsideDemoMode(t *testing.T) {
	service, _, credRepo, _, _ := newAuthServiceForTest(t, false)
	ctx := context.Background()

	credRepo.EXPECT().ListAll(ctx).Return([]*entity.Credential{
		{ID: 1, Username: "alice", UsernameHash: "uh", PasswordHash: "ph", PlaintextPassword: "pw"},
	}, nil)

	creds, err := service.ListCredentials(ctx)

	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.Empty(t, creds[0].PlaintextPassword)
	assert.Equal(t, "uh", creds[0].UsernameHash)
}

func TestAuthService_ListCredentials_DemoModeKeepsPlaintext(t *testing.T) {
	service, _, credRepo, _, _ := newAuthServiceForTest(t, true)
	ctx := context.Background()

	credRepo.EXPECT().ListAll(ctx).Return([]*entity.Credential{
		{ID: 1, Username: "alice", PlaintextPassword: "pw"},
	}, nil)

	creds, err := service.ListCredentials(ctx)

	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.Equal(t, "pw", creds[0].PlaintextPassword)
}

func TestAuthService_HashPreview(t *testing.T) {
	service, _, _, hasher, _ := newAuthServiceForTest(t, false)
	ctx := context.Background()

	hasher.EXPECT().Hash("secret").Return("digest-one", nil).Once()
	hasher.EXPECT().Hash("secret").Return("digest-two", nil).Once()

	out, err := service.HashPreview(ctx, &usecase.HashPreviewInput{Secret: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "secret", out.Secret)
	assert.Equal(t, "digest-one", out.HashOne)
	assert.Equal(t, "digest-two", out.HashTwo)
	assert.NotEqual(t, out.HashOne, out.HashTwo)
}
