package session

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/applytrack/internal/api"
	"github.com/jonathan/applytrack/internal/types"
)

// AdminLogin authenticates the admin portal in two phases. The account name
// is normalized and compared against the single fixed admin account, and the
// password checked for presence, before any network traffic. Only when the
// privileged collection load accepts the password as a bearer token is the
// session considered authenticated and the token retained.
func (c *Controller) AdminLogin(ctx context.Context, name, password string) error {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized != adminAccountName || strings.TrimSpace(password) == "" {
		return &AuthError{Realm: "admin"}
	}

	users, events, err := c.fetchAdminCollections(ctx, password)
	if err != nil {
		// The load is the credential check: a rejected token means no
		// session and no token retained.
		return &AuthError{Realm: "admin", Cause: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.admin = AdminSession{Token: password, Authenticated: true}
	c.adminUsers = users
	c.adminEvents = events
	return nil
}

// AdminLogout drops the admin session and its cached collections.
func (c *Controller) AdminLogout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.admin = AdminSession{}
	c.adminUsers = nil
	c.adminEvents = nil
}

// fetchAdminCollections loads both admin-visible collections with the given
// bearer token. The two reads are independent, so they run concurrently.
func (c *Controller) fetchAdminCollections(ctx context.Context, token string) (*types.AdminUsersSnapshot, []types.AdminEvent, error) {
	var (
		users  *types.AdminUsersSnapshot
		events []types.AdminEvent
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snapshot, err := c.backend.AdminUsers(gctx, token)
		if err != nil {
			return err
		}
		users = snapshot
		return nil
	})
	g.Go(func() error {
		list, err := c.backend.AdminEvents(gctx, token, api.DefaultEventLimit)
		if err != nil {
			return err
		}
		events = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return users, events, nil
}

// adminToken returns the active admin bearer token, or an AuthError when no
// authenticated admin session exists.
func (c *Controller) adminToken() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.admin.Authenticated || c.admin.Token == "" {
		return "", &AuthError{Realm: "admin"}
	}
	return c.admin.Token, nil
}

// reloadAdmin unconditionally replaces both admin collections. Admin views
// are low frequency, so every successful mutation pays for a full reload
// instead of incremental patching.
func (c *Controller) reloadAdmin(ctx context.Context, token string) error {
	users, events, err := c.fetchAdminCollections(ctx, token)
	if err != nil {
		return &UnreachableError{Cause: err}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.admin.Authenticated || c.admin.Token != token {
		// Session torn down while the reload was in flight.
		return nil
	}
	c.adminUsers = users
	c.adminEvents = events
	return nil
}

// RefreshAdmin reloads both admin-visible collections.
func (c *Controller) RefreshAdmin(ctx context.Context) error {
	token, err := c.adminToken()
	if err != nil {
		return err
	}
	return c.reloadAdmin(ctx, token)
}

// AdminSaveUser creates or updates a managed member, then reloads the admin
// collections.
func (c *Controller) AdminSaveUser(ctx context.Context, in types.AdminUserInput) (*types.AdminUser, error) {
	token, err := c.adminToken()
	if err != nil {
		return nil, err
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, &MutationError{Op: "save user", Cause: err}
	}

	saved, err := c.backend.AdminSaveUser(ctx, token, in)
	if err != nil {
		return nil, &MutationError{Op: "save user", Cause: err}
	}
	if err := c.reloadAdmin(ctx, token); err != nil {
		return saved, err
	}
	return saved, nil
}

// AdminRemoveUser deletes a managed member, then reloads the admin
// collections.
func (c *Controller) AdminRemoveUser(ctx context.Context, name string) error {
	token, err := c.adminToken()
	if err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if err := c.backend.AdminRemoveUser(ctx, token, name); err != nil {
		return &MutationError{Op: "remove user", Cause: err}
	}
	return c.reloadAdmin(ctx, token)
}

// AdminClearEvents empties the audit log, then reloads the admin
// collections.
func (c *Controller) AdminClearEvents(ctx context.Context) error {
	token, err := c.adminToken()
	if err != nil {
		return err
	}

	if err := c.backend.AdminClearEvents(ctx, token); err != nil {
		return &MutationError{Op: "clear events", Cause: err}
	}
	return c.reloadAdmin(ctx, token)
}

// Admin returns the in-memory admin session.
func (c *Controller) Admin() AdminSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.admin
}

// AdminUsersSnapshot returns the cached admin user listing, or nil when none
// has been loaded.
func (c *Controller) AdminUsersSnapshot() *types.AdminUsersSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.adminUsers == nil {
		return nil
	}
	snapshot := *c.adminUsers
	snapshot.Users = append([]types.AdminUser{}, c.adminUsers.Users...)
	return &snapshot
}

// AdminEventLog returns a copy of the cached audit log.
func (c *Controller) AdminEventLog() []types.AdminEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]types.AdminEvent{}, c.adminEvents...)
}

// Portal returns the active portal.
func (c *Controller) Portal() Portal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.portal
}

// SwitchPortal fully tears down both sessions' caches and state, then
// activates the other portal's initial logged-out view. No partial
// carry-over: a residual member list or admin listing must never leak
// across an identity switch.
func (c *Controller) SwitchPortal(p Portal) error {
	c.mu.Lock()
	c.bumpIdentityLocked()
	c.profile = nil
	c.apps = nil
	c.filter = defaultFilter()
	c.admin = AdminSession{}
	c.adminUsers = nil
	c.adminEvents = nil
	c.portal = p
	c.mu.Unlock()

	return c.store.Clear()
}
