package impl

import (
	"context"
	"testing"
	"time"

	"secureauth/internal/domain/entity"
	domainerrors "secureauth/internal/domain/errors"
	"secureauth/internal/domain/service"
	mockService "secureauth/internal/mocks/service"
	"secureauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionServiceForTest(t *testing.T) (usecase.SessionUsecase, *mockService.MockSessionStore) {
	t.Helper()

	store := mockService.NewMockSessionStore(t)
	svc := NewSessionService(SessionServiceParams{
		Store:  store,
		Config: newTestConfig(false),
		Logger: newTestLogger(),
	})

	return svc, store
}

func TestSessionService_Issue_Success(t *testing.T) {
	svc, store := newSessionServiceForTest(t)
	ctx := context.Background()

	var stored *entity.Session
	store.EXPECT().
		Put(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			stored = session
		}).
		Return(nil)

	session, err := svc.Issue(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, stored, session)
	assert.Equal(t, "alice", session.SubjectUsername)
	assert.True(t, session.Authenticated)
	assert.True(t, session.ExpiresAt.After(session.IssuedAt))

	_, err = uuid.Parse(session.ID)
	assert.NoError(t, err, "session identifier should be an opaque UUID")
}

func TestSessionService_Issue_DistinctIdentifiers(t *testing.T) {
	svc, store := newSessionServiceForTest(t)
	ctx := context.Background()

	store.EXPECT().Put(ctx, mock.AnythingOfType("*entity.Session")).Return(nil).Twice()

	first, err := svc.Issue(ctx, "alice")
	require.NoError(t, err)
	second, err := svc.Issue(ctx, "alice")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestSessionService_Current_Success(t *testing.T) {
	svc, store := newSessionServiceForTest(t)
	ctx := context.Background()

	session := &entity.Session{ID: "sess", SubjectUsername: "alice", Authenticated: true, ExpiresAt: time.Now().Add(time.Hour)}
	store.EXPECT().Get(ctx, "sess").Return(session, nil)

	got, err := svc.Current(ctx, "sess")

	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestSessionService_Current_EmptyID(t *testing.T) {
	svc, _ := newSessionServiceForTest(t)

	got, err := svc.Current(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestSessionService_Current_Unknown(t *testing.T) {
	svc, store := newSessionServiceForTest(t)
	ctx := context.Background()

	store.EXPECT().Get(ctx, "gone").Return(nil, service.ErrSessionNotFound)

	got, err := svc.Current(ctx, "gone")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestSessionService_Destroy_Success(t *testing.T) {
	svc, store := newSessionServiceForTest(t)
	ctx := context.Background()

	store.EXPECT().Delete(ctx, "sess").Return(nil)

	require.NoError(t, svc.Destroy(ctx, "sess"))
}

func TestSessionService_Destroy_UnknownIsNoError(t *testing.T) {
	svc, store := newSessionServiceForTest(t)
	ctx := context.Background()

	store.EXPECT().Delete(ctx, "gone").Return(service.ErrSessionNotFound)

	require.NoError(t, svc.Destroy(ctx, "gone"))
}

func TestSessionService_Destroy_EmptyIDIsNoError(t *testing.T) {
	svc, _ := newSessionServiceForTest(t)

	require.NoError(t, svc.Destroy(context.Background(), ""))
}

func TestSessionService_RequireAuthenticated_Success(t *testing.T) {
	svc, store := newSessionServiceForTest(t)
	ctx := context.Background()

	session := &entity.Session{ID: "sess", SubjectUsername: "alice", Authenticated: true}
	store.EXPECT().Get(ctx, "sess").Return(session, nil)

	got, err := svc.RequireAuthenticated(ctx, "sess")

	require.NoError(t, err)
	assert.Equal(t, "alice", got.SubjectUsername)
}

func TestSessionService_RequireAuthenticated_NotAuthenticated(t *testing.T) {
	svc, store := newSessionServiceForTest(t)
	ctx := context.Background()

	session := &entity.Session{ID: "sess", Authenticated: false}
	store.EXPECT().Get(ctx, "sess").Return(session, nil)

	got, err := svc.RequireAuthenticated(ctx, "sess")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}
