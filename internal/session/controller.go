// Package session implements the client-side session and collection
// controller: it owns the active identity (member profile or admin token),
// the locally cached copy of each remote collection, and mediates every
// mutation through the backend API.
//
// The cached collections are never speculatively updated: a mutation's
// visible effect is the server-returned canonical record, committed only
// after the request succeeds. Reads degrade gracefully and keep the last
// good cache; writes are strict and leave the cache untouched on failure.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jonathan/applytrack/internal/status"
	"github.com/jonathan/applytrack/internal/types"
)

// adminAccountName is the single fixed admin account. The name check is
// local; the submitted password is validated implicitly by whether the
// privileged user load accepts it as a bearer token.
const adminAccountName = "trackeradmin"

// StatusFilterAll disables status filtering.
const StatusFilterAll = "all"

// Portal is one of the two disjoint top-level modes.
type Portal int

const (
	PortalMember Portal = iota
	PortalAdmin
)

// Backend is the remote service surface the controller drives. *api.Client
// satisfies it; tests substitute a fake.
type Backend interface {
	Login(ctx context.Context, req types.LoginRequest) (*types.Profile, error)
	ListApplications(ctx context.Context, token string) ([]types.Application, error)
	CreateApplication(ctx context.Context, token string, in types.ApplicationInput) (*types.Application, error)
	UpdateApplication(ctx context.Context, token string, id int, patch map[string]any) (*types.Application, error)
	DeleteApplication(ctx context.Context, token string, id int) error
	SeedSamples(ctx context.Context, token string) ([]types.Application, error)
	AdminUsers(ctx context.Context, token string) (*types.AdminUsersSnapshot, error)
	AdminSaveUser(ctx context.Context, token string, in types.AdminUserInput) (*types.AdminUser, error)
	AdminRemoveUser(ctx context.Context, token, name string) error
	AdminEvents(ctx context.Context, token string, limit int) ([]types.AdminEvent, error)
	AdminClearEvents(ctx context.Context, token string) error
}

// ProfileStore is the durable home of the member Profile. Admin sessions
// never pass through it.
type ProfileStore interface {
	Load() (*types.Profile, error)
	Save(profile *types.Profile) error
	Clear() error
}

// AdminSession is the in-memory admin identity. The token doubles as the
// bearer credential for admin calls and is never persisted.
type AdminSession struct {
	Token         string
	Authenticated bool
}

// Filter is the pure client-side view filter over the cached applications.
type Filter struct {
	Status string
	Text   string
}

func defaultFilter() Filter {
	return Filter{Status: StatusFilterAll}
}

// Controller owns session identity and the cached collections. It is safe
// for concurrent use; every network round-trip happens outside the lock and
// commits its result atomically under it.
type Controller struct {
	backend Backend
	store   ProfileStore
	log     zerolog.Logger

	mu     sync.Mutex
	portal Portal

	// gen is bumped on every identity change. A fetch started under an older
	// generation discards its result on completion instead of committing.
	gen uint64

	profile *types.Profile
	apps    []types.Application
	loading bool
	filter  Filter

	admin       AdminSession
	adminUsers  *types.AdminUsersSnapshot
	adminEvents []types.AdminEvent
}

// New creates a Controller in the member portal's logged-out state.
func New(backend Backend, store ProfileStore, log zerolog.Logger) *Controller {
	return &Controller{
		backend: backend,
		store:   store,
		log:     log,
		filter:  defaultFilter(),
	}
}

// bumpIdentityLocked invalidates any in-flight fetch scoped to the previous
// identity. Callers must hold c.mu.
func (c *Controller) bumpIdentityLocked() {
	c.gen++
	c.loading = false
}

// Restore adopts a previously persisted profile, if one exists. A missing or
// malformed store entry yields the logged-out state without error.
func (c *Controller) Restore() (*types.Profile, error) {
	profile, err := c.store.Load()
	if err != nil {
		return nil, err
	}
	if !profile.Authenticated() {
		return nil, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.bumpIdentityLocked()
	c.profile = profile
	c.apps = nil
	return cloneProfile(profile), nil
}

// Login exchanges member credentials for a fresh Profile, persists it, and
// makes it the active identity. On failure any prior session is untouched.
func (c *Controller) Login(ctx context.Context, req types.LoginRequest) (*types.Profile, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, &AuthError{Realm: "member", Cause: err}
	}

	profile, err := c.backend.Login(ctx, req)
	if err != nil {
		return nil, &AuthError{Realm: "member", Cause: err}
	}
	if !profile.Authenticated() {
		return nil, &AuthError{Realm: "member"}
	}

	c.mu.Lock()
	c.bumpIdentityLocked()
	c.profile = profile
	c.apps = nil
	c.filter = defaultFilter()
	c.mu.Unlock()

	if err := c.store.Save(profile); err != nil {
		c.log.Warn().Err(err).Msg("failed to persist profile")
	}
	return cloneProfile(profile), nil
}

// Logout clears the member identity from memory and durable storage.
func (c *Controller) Logout() error {
	c.mu.Lock()
	c.bumpIdentityLocked()
	c.profile = nil
	c.apps = nil
	c.filter = defaultFilter()
	c.mu.Unlock()

	return c.store.Clear()
}

// forceLogout drops the member session after a missing-token precheck. The
// durable copy goes too: a profile without a token is useless on restore.
func (c *Controller) forceLogout() {
	c.mu.Lock()
	c.bumpIdentityLocked()
	c.profile = nil
	c.apps = nil
	c.filter = defaultFilter()
	c.mu.Unlock()

	if err := c.store.Clear(); err != nil {
		c.log.Warn().Err(err).Msg("failed to clear stored profile")
	}
}

// memberToken returns the active member token, or a SessionExpiredError
// after forcing the logged-out state when no valid token is held.
func (c *Controller) memberToken() (string, error) {
	c.mu.Lock()
	authenticated := c.profile.Authenticated()
	var token string
	if authenticated {
		token = c.profile.Token
	}
	c.mu.Unlock()

	if !authenticated {
		c.forceLogout()
		return "", &SessionExpiredError{}
	}
	return token, nil
}

// RefreshApplications replaces the cached collection with the backend's
// current view. The fetch is scoped to the identity active when it starts:
// if the identity changes before the response lands, the stale result is
// discarded and the cache of the new identity is returned untouched.
func (c *Controller) RefreshApplications(ctx context.Context) ([]types.Application, error) {
	c.mu.Lock()
	if !c.profile.Authenticated() {
		c.mu.Unlock()
		c.forceLogout()
		return nil, &SessionExpiredError{}
	}
	gen := c.gen
	token := c.profile.Token
	c.loading = true
	c.mu.Unlock()

	items, err := c.backend.ListApplications(ctx, token)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		// Superseded: a newer identity owns the cache now.
		c.log.Debug().Msg("discarding stale application fetch")
		return cloneApps(c.apps), nil
	}
	c.loading = false
	if err != nil {
		// Keep the last good cache; surface a reachability error.
		return nil, &UnreachableError{Cause: err}
	}
	c.apps = items
	return cloneApps(c.apps), nil
}

// Profile returns a copy of the active member profile, or nil when logged
// out.
func (c *Controller) Profile() *types.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneProfile(c.profile)
}

// Loading reports whether a member fetch is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Applications returns a copy of the cached collection.
func (c *Controller) Applications() []types.Application {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneApps(c.apps)
}

// CreateApplication submits a new application and prepends the canonical
// record the backend returns. On failure the cache is untouched.
func (c *Controller) CreateApplication(ctx context.Context, in types.ApplicationInput) (*types.Application, error) {
	token, err := c.memberToken()
	if err != nil {
		return nil, err
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, &MutationError{Op: "create application", Cause: err}
	}

	created, err := c.backend.CreateApplication(ctx, token, in)
	if err != nil {
		return nil, &MutationError{Op: "create application", Cause: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen == c.genAtTokenCheck(token) {
		c.apps = append([]types.Application{*created}, c.apps...)
	}
	return created, nil
}

// genAtTokenCheck reports whether the given token still belongs to the
// active identity; a mutation that lands after logout or portal switch must
// not resurrect records into the new identity's cache. Callers hold c.mu.
func (c *Controller) genAtTokenCheck(token string) uint64 {
	if c.profile.Authenticated() && c.profile.Token == token {
		return c.gen
	}
	return c.gen + 1 // never matches
}

// UpdateApplication applies a partial field patch and replaces the single
// matching cached record with the server-returned canonical version.
func (c *Controller) UpdateApplication(ctx context.Context, id int, patch map[string]any) (*types.Application, error) {
	token, err := c.memberToken()
	if err != nil {
		return nil, err
	}

	updated, err := c.backend.UpdateApplication(ctx, token, id, patch)
	if err != nil {
		return nil, &MutationError{Op: "update application", Cause: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen == c.genAtTokenCheck(token) {
		for i := range c.apps {
			if c.apps[i].ID == updated.ID {
				c.apps[i] = *updated
				break
			}
		}
	}
	return updated, nil
}

// AdvanceApplication moves a cached application to the next pipeline stage
// via the generic update. Advancing past the terminal stage is a no-op and
// issues no request.
func (c *Controller) AdvanceApplication(ctx context.Context, id int) (*types.Application, error) {
	c.mu.Lock()
	var current *types.Application
	for i := range c.apps {
		if c.apps[i].ID == id {
			app := c.apps[i]
			current = &app
			break
		}
	}
	c.mu.Unlock()

	if current == nil {
		return nil, &MutationError{Op: "advance application", Cause: errNotCached(id)}
	}
	next := status.Next(status.Status(current.Status))
	if string(next) == current.Status {
		return current, nil
	}
	return c.UpdateApplication(ctx, id, map[string]any{"status": string(next)})
}

// RejectApplication marks an application rejected via the generic update.
func (c *Controller) RejectApplication(ctx context.Context, id int) (*types.Application, error) {
	return c.UpdateApplication(ctx, id, map[string]any{"status": string(status.Rejected)})
}

// DeleteApplication removes an application. "Deleted" and "not found" both
// mean the record no longer exists server-side, so either outcome removes
// it from the cache; any other failure leaves the cache untouched.
func (c *Controller) DeleteApplication(ctx context.Context, id int) error {
	token, err := c.memberToken()
	if err != nil {
		return err
	}

	if err := c.backend.DeleteApplication(ctx, token, id); err != nil {
		return &MutationError{Op: "delete application", Cause: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen == c.genAtTokenCheck(token) {
		kept := c.apps[:0]
		for _, app := range c.apps {
			if app.ID != id {
				kept = append(kept, app)
			}
		}
		c.apps = kept
	}
	return nil
}

// SeedSamples asks the backend for sample applications and prepends them.
func (c *Controller) SeedSamples(ctx context.Context) ([]types.Application, error) {
	token, err := c.memberToken()
	if err != nil {
		return nil, err
	}

	items, err := c.backend.SeedSamples(ctx, token)
	if err != nil {
		return nil, &MutationError{Op: "seed samples", Cause: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen == c.genAtTokenCheck(token) {
		c.apps = append(append([]types.Application{}, items...), c.apps...)
	}
	return items, nil
}

func errNotCached(id int) error {
	return fmt.Errorf("application %d is not in the local cache; refresh first", id)
}
