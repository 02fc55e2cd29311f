package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"textlens/internal/apiclient"
)

// fakeClient implements Client for testing.
type fakeClient struct {
	loginFunc    func(ctx context.Context, email, password string) (apiclient.AuthResponse, error)
	registerFunc func(ctx context.Context, email, password, fullName string) (apiclient.AuthResponse, error)
	logoutErr    error
	currentUser  *apiclient.User
	currentCalls atomic.Int32
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (apiclient.AuthResponse, error) {
	if f.loginFunc != nil {
		return f.loginFunc(ctx, email, password)
	}
	return apiclient.AuthResponse{User: apiclient.User{ID: "u1", Email: email}}, nil
}

func (f *fakeClient) Register(ctx context.Context, email, password, fullName string) (apiclient.AuthResponse, error) {
	if f.registerFunc != nil {
		return f.registerFunc(ctx, email, password, fullName)
	}
	return apiclient.AuthResponse{User: apiclient.User{ID: "u2", Email: email, FullName: fullName}}, nil
}

func (f *fakeClient) Logout(ctx context.Context) error {
	return f.logoutErr
}

func (f *fakeClient) CurrentUser(ctx context.Context) *apiclient.User {
	f.currentCalls.Add(1)
	return f.currentUser
}

func TestLogin_SetsUser(t *testing.T) {
	s := NewStore(&fakeClient{}, zap.NewNop())
	require.False(t, s.IsAuthenticated())

	err := s.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	require.True(t, s.IsAuthenticated())

	u := s.CurrentUser()
	require.NotNil(t, u)
	assert.Equal(t, "a@b.c", u.Email)
	assert.False(t, s.Loading(), "loading must be cleared after the operation")
}

func TestLogin_FailureLeavesUserUnset(t *testing.T) {
	wantErr := errors.New("invalid credentials")
	c := &fakeClient{
		loginFunc: func(ctx context.Context, email, password string) (apiclient.AuthResponse, error) {
			return apiclient.AuthResponse{}, wantErr
		},
	}
	s := NewStore(c, zap.NewNop())

	err := s.Login(context.Background(), "a@b.c", "wrong")
	require.ErrorIs(t, err, wantErr)
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.CurrentUser())
	assert.False(t, s.Loading())
}

func TestRegister_SetsUser(t *testing.T) {
	s := NewStore(&fakeClient{}, zap.NewNop())

	err := s.Register(context.Background(), "new@b.c", "pw", "New User")
	require.NoError(t, err)
	require.True(t, s.IsAuthenticated())
	assert.Equal(t, "New User", s.CurrentUser().FullName)
}

func TestLogout_ClearsUserEvenWhenServerFails(t *testing.T) {
	c := &fakeClient{logoutErr: errors.New("network down")}
	s := NewStore(c, zap.NewNop())
	require.NoError(t, s.Login(context.Background(), "a@b.c", "pw"))
	require.True(t, s.IsAuthenticated())

	s.Logout(context.Background())
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.CurrentUser())
}

func TestLoadUser_RunsOnce(t *testing.T) {
	c := &fakeClient{currentUser: &apiclient.User{ID: "u9", Email: "x@y.z"}}
	s := NewStore(c, zap.NewNop())

	s.LoadUser(context.Background())
	s.LoadUser(context.Background())

	assert.Equal(t, int32(1), c.currentCalls.Load())
	require.True(t, s.IsAuthenticated())
	assert.Equal(t, "u9", s.CurrentUser().ID)
}

func TestLoadUser_NoUser(t *testing.T) {
	s := NewStore(&fakeClient{}, zap.NewNop())
	s.LoadUser(context.Background())
	assert.False(t, s.IsAuthenticated())
}

func TestSetOnline_IndependentSlice(t *testing.T) {
	s := NewStore(&fakeClient{}, zap.NewNop())
	require.True(t, s.Online(), "store starts online")

	s.SetOnline(false)
	assert.False(t, s.Online())
	s.SetOnline(true)
	assert.True(t, s.Online())

	// Connectivity never gates auth operations.
	s.SetOnline(false)
	require.NoError(t, s.Login(context.Background(), "a@b.c", "pw"))
	assert.True(t, s.IsAuthenticated())
}

func TestLogin_Serialized(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32
	c := &fakeClient{
		loginFunc: func(ctx context.Context, email, password string) (apiclient.AuthResponse, error) {
			n := inFlight.Add(1)
			if n > maxInFlight.Load() {
				maxInFlight.Store(n)
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
			return apiclient.AuthResponse{User: apiclient.User{ID: "u1", Email: email}}, nil
		},
	}
	s := NewStore(c, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Login(context.Background(), "a@b.c", "pw")
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInFlight.Load(), "logins must not overlap")
}

func TestCurrentUser_ReturnsCopy(t *testing.T) {
	s := NewStore(&fakeClient{}, zap.NewNop())
	require.NoError(t, s.Login(context.Background(), "a@b.c", "pw"))

	u := s.CurrentUser()
	u.Email = "mutated@b.c"
	assert.Equal(t, "a@b.c", s.CurrentUser().Email)
}
