// Package session keeps the dashboard's login state: where the token lives
// and what happens when the backend stops accepting it.
package session

import (
	"context"
	"sync"

	"github.com/botica-real/botica/internal/dashboard/gateway"
)

// Store persists the bearer token between dashboard visits.
type Store interface {
	Token() string
	SetToken(token string)
	Clear()
}

// MemoryStore is the in-process Store used by tests and the CLI shell.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *MemoryStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Navigator abstracts the dashboard shell's routing so the session manager
// can send the operator back to the login screen.
type Navigator interface {
	NavigateTo(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) NavigateTo(path string) { f(path) }

// Manager owns login, verification and logout for one dashboard instance.
type Manager struct {
	client *gateway.Client
	store  Store
	nav    Navigator
}

// NewManager wires a manager over an anonymous gateway client.
func NewManager(client *gateway.Client, store Store, nav Navigator) *Manager {
	return &Manager{client: client, store: store, nav: nav}
}

// Login authenticates and persists the token. On success the returned client
// carries the fresh session.
func (m *Manager) Login(ctx context.Context, username, password string) (*gateway.Client, error) {
	token, err := m.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	m.store.SetToken(token.AccessToken)
	return m.client.WithSession(gateway.NewSession(token.AccessToken)), nil
}

// Resume checks the stored token against the backend. Any failure of the
// verification call wipes the token and routes the operator to the login
// screen before the error is reported; an unreachable backend logs the
// operator out the same way a rejected token does. There is no retry.
func (m *Manager) Resume(ctx context.Context) (*gateway.Client, error) {
	token := m.store.Token()
	if token == "" {
		m.nav.NavigateTo("/")
		return nil, gateway.ErrUnauthenticated
	}

	verdict, err := m.client.VerifyToken(ctx, token)
	if err != nil || !verdict.Valid {
		m.store.Clear()
		m.nav.NavigateTo("/")
		if err == nil {
			err = gateway.ErrUnauthenticated
		}
		return nil, err
	}
	return m.client.WithSession(gateway.NewSession(token)), nil
}

// Logout drops the token and returns to the login screen.
func (m *Manager) Logout() {
	m.store.Clear()
	m.nav.NavigateTo("/")
}
