package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jonathan/applytrack/internal/types"
)

// DefaultEventLimit caps how many audit entries an event listing requests.
const DefaultEventLimit = 1000

// AdminUsers fetches the admin user listing with aggregate application
// counts. This is also the call that implicitly validates an admin token:
// a rejected token surfaces here as an *Error with HTTP 401.
func (c *Client) AdminUsers(ctx context.Context, token string) (*types.AdminUsersSnapshot, error) {
	var snapshot types.AdminUsersSnapshot
	_, err := c.do(ctx, "api.AdminUsers", http.MethodGet, "/api/admin/users", nil, adminHeader(token), nil, &snapshot, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// AdminSaveUser creates a managed member or updates an existing one. The
// backend requires a pin when the member does not exist yet.
func (c *Client) AdminSaveUser(ctx context.Context, token string, in types.AdminUserInput) (*types.AdminUser, error) {
	var saved types.AdminUser
	_, err := c.do(ctx, "api.AdminSaveUser", http.MethodPost, "/api/admin/users", nil, adminHeader(token), in, &saved, http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// AdminRemoveUser deletes a managed member and every application they own.
func (c *Client) AdminRemoveUser(ctx context.Context, token, name string) error {
	query := url.Values{"name": []string{name}}
	_, err := c.do(ctx, "api.AdminRemoveUser", http.MethodDelete, "/api/admin/users", query, adminHeader(token), nil, nil,
		http.StatusNoContent, http.StatusOK)
	return err
}

// eventsEnvelope wraps the audit log response: {"events": [...]}.
type eventsEnvelope struct {
	Events []types.AdminEvent `json:"events"`
}

// AdminEvents fetches the most recent audit log entries, newest first.
// A non-positive limit uses DefaultEventLimit.
func (c *Client) AdminEvents(ctx context.Context, token string, limit int) ([]types.AdminEvent, error) {
	if limit <= 0 {
		limit = DefaultEventLimit
	}
	query := url.Values{"limit": []string{strconv.Itoa(limit)}}
	var envelope eventsEnvelope
	_, err := c.do(ctx, "api.AdminEvents", http.MethodGet, "/api/admin/events", query, adminHeader(token), nil, &envelope, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return envelope.Events, nil
}

// AdminClearEvents empties the audit log.
func (c *Client) AdminClearEvents(ctx context.Context, token string) error {
	_, err := c.do(ctx, "api.AdminClearEvents", http.MethodDelete, "/api/admin/events/clear", nil, adminHeader(token), nil, nil,
		http.StatusOK, http.StatusNoContent)
	return err
}
