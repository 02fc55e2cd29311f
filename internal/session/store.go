// Package session holds the process-wide auth and connectivity state:
// the signed-in user, a loading flag and an online flag. Views read it,
// and mutate it only through its exposed operations.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"textlens/internal/apiclient"
)

// Client is the slice of the API client the store needs for its auth
// operations.
type Client interface {
	// Login authenticates and returns the session user.
	Login(ctx context.Context, email, password string) (apiclient.AuthResponse, error)
	// Register creates an account and returns the session user.
	Register(ctx context.Context, email, password, fullName string) (apiclient.AuthResponse, error)
	// Logout drops the collaborator-side session; best effort.
	Logout(ctx context.Context) error
	// CurrentUser resolves the signed-in user, or nil. Never errors.
	CurrentUser(ctx context.Context) *apiclient.User
}

// Store is the single shared session holder. Created at application start
// and passed explicitly to every view; there is no package-level instance.
type Store struct {
	client Client
	log    *zap.Logger

	// opMu serializes login/register/logout so two concurrent auth
	// operations cannot interleave their state updates.
	opMu sync.Mutex

	// mu guards the state fields below.
	mu      sync.RWMutex
	user    *apiclient.User
	loading bool
	online  bool

	loadOnce sync.Once
}

// NewStore constructs a Store. The connectivity flag starts online and is
// updated by transport outcomes pushed through SetOnline.
func NewStore(client Client, log *zap.Logger) *Store {
	return &Store{
		client: client,
		log:    log,
		online: true,
	}
}

// Login authenticates against the collaborator. On success the user is
// set; on failure the user stays unset and the error propagates to the
// caller for inline rendering.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.setUser(&resp.User)
	return nil
}

// Register creates an account and signs the user in.
func (s *Store) Register(ctx context.Context, email, password, fullName string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.client.Register(ctx, email, password, fullName)
	if err != nil {
		return err
	}
	s.setUser(&resp.User)
	return nil
}

// Logout clears the local user unconditionally. The collaborator call is
// best effort: its failure is logged and never blocks the local clear.
func (s *Store) Logout(ctx context.Context) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.client.Logout(ctx); err != nil {
		s.log.Warn("logout request failed, clearing local session anyway", zap.Error(err))
	}
	s.setUser(nil)
}

// LoadUser resolves the signed-in user from the collaborator. It runs
// exactly once per process; later calls are no-ops.
func (s *Store) LoadUser(ctx context.Context) {
	s.loadOnce.Do(func() {
		s.setLoading(true)
		defer s.setLoading(false)
		s.setUser(s.client.CurrentUser(ctx))
	})
}

// SetOnline records a connectivity transition pushed by the transport.
// It is an independent state slice: it never gates or blocks operations.
func (s *Store) SetOnline(online bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.online = online
}

// Online reports the last known connectivity state.
func (s *Store) Online() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.online
}

// Loading reports whether an auth operation is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// IsAuthenticated is true exactly when a user is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (s *Store) CurrentUser() *apiclient.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) setUser(u *apiclient.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}
