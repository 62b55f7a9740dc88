package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonathan/applytrack/internal/types"
)

// fakeBackend implements Backend with per-method hooks and call counting.
type fakeBackend struct {
	mu    sync.Mutex
	calls map[string]int

	loginFn       func(req types.LoginRequest) (*types.Profile, error)
	listFn        func(token string) ([]types.Application, error)
	createFn      func(token string, in types.ApplicationInput) (*types.Application, error)
	updateFn      func(token string, id int, patch map[string]any) (*types.Application, error)
	deleteFn      func(token string, id int) error
	seedFn        func(token string) ([]types.Application, error)
	adminUsersFn  func(token string) (*types.AdminUsersSnapshot, error)
	adminSaveFn   func(token string, in types.AdminUserInput) (*types.AdminUser, error)
	adminRemoveFn func(token, name string) error
	adminEventsFn func(token string, limit int) ([]types.AdminEvent, error)
	adminClearFn  func(token string) error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{calls: map[string]int{}}
}

func (f *fakeBackend) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeBackend) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeBackend) Login(_ context.Context, req types.LoginRequest) (*types.Profile, error) {
	f.record("Login")
	if f.loginFn == nil {
		return nil, fmt.Errorf("unexpected Login call")
	}
	return f.loginFn(req)
}

func (f *fakeBackend) ListApplications(_ context.Context, token string) ([]types.Application, error) {
	f.record("ListApplications")
	if f.listFn == nil {
		return nil, fmt.Errorf("unexpected ListApplications call")
	}
	return f.listFn(token)
}

func (f *fakeBackend) CreateApplication(_ context.Context, token string, in types.ApplicationInput) (*types.Application, error) {
	f.record("CreateApplication")
	if f.createFn == nil {
		return nil, fmt.Errorf("unexpected CreateApplication call")
	}
	return f.createFn(token, in)
}

func (f *fakeBackend) UpdateApplication(_ context.Context, token string, id int, patch map[string]any) (*types.Application, error) {
	f.record("UpdateApplication")
	if f.updateFn == nil {
		return nil, fmt.Errorf("unexpected UpdateApplication call")
	}
	return f.updateFn(token, id, patch)
}

func (f *fakeBackend) DeleteApplication(_ context.Context, token string, id int) error {
	f.record("DeleteApplication")
	if f.deleteFn == nil {
		return fmt.Errorf("unexpected DeleteApplication call")
	}
	return f.deleteFn(token, id)
}

func (f *fakeBackend) SeedSamples(_ context.Context, token string) ([]types.Application, error) {
	f.record("SeedSamples")
	if f.seedFn == nil {
		return nil, fmt.Errorf("unexpected SeedSamples call")
	}
	return f.seedFn(token)
}

func (f *fakeBackend) AdminUsers(_ context.Context, token string) (*types.AdminUsersSnapshot, error) {
	f.record("AdminUsers")
	if f.adminUsersFn == nil {
		return nil, fmt.Errorf("unexpected AdminUsers call")
	}
	return f.adminUsersFn(token)
}

func (f *fakeBackend) AdminSaveUser(_ context.Context, token string, in types.AdminUserInput) (*types.AdminUser, error) {
	f.record("AdminSaveUser")
	if f.adminSaveFn == nil {
		return nil, fmt.Errorf("unexpected AdminSaveUser call")
	}
	return f.adminSaveFn(token, in)
}

func (f *fakeBackend) AdminRemoveUser(_ context.Context, token, name string) error {
	f.record("AdminRemoveUser")
	if f.adminRemoveFn == nil {
		return fmt.Errorf("unexpected AdminRemoveUser call")
	}
	return f.adminRemoveFn(token, name)
}

func (f *fakeBackend) AdminEvents(_ context.Context, token string, limit int) ([]types.AdminEvent, error) {
	f.record("AdminEvents")
	if f.adminEventsFn == nil {
		return nil, fmt.Errorf("unexpected AdminEvents call")
	}
	return f.adminEventsFn(token, limit)
}

func (f *fakeBackend) AdminClearEvents(_ context.Context, token string) error {
	f.record("AdminClearEvents")
	if f.adminClearFn == nil {
		return fmt.Errorf("unexpected AdminClearEvents call")
	}
	return f.adminClearFn(token)
}

// memStore is an in-memory ProfileStore.
type memStore struct {
	mu      sync.Mutex
	profile *types.Profile
	saves   int
	clears  int
}

func (m *memStore) Load() (*types.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return nil, nil
	}
	clone := *m.profile
	return &clone, nil
}

func (m *memStore) Save(profile *types.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *profile
	m.profile = &clone
	m.saves++
	return nil
}

func (m *memStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = nil
	m.clears++
	return nil
}

func (m *memStore) stored() *types.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile
}
