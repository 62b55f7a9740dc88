package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonathan/applytrack/internal/types"
)

// Login exchanges a member's name and PIN for a Profile carrying a fresh
// bearer token.
func (c *Client) Login(ctx context.Context, req types.LoginRequest) (*types.Profile, error) {
	var profile types.Profile
	_, err := c.do(ctx, "api.Login", http.MethodPost, "/api/auth/login", nil, nil, req, &profile, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// itemsEnvelope wraps collection responses: {"items": [...]}.
type itemsEnvelope struct {
	Items []types.Application `json:"items"`
}

// ListApplications fetches the owner-scoped application collection.
func (c *Client) ListApplications(ctx context.Context, token string) ([]types.Application, error) {
	var envelope itemsEnvelope
	_, err := c.do(ctx, "api.ListApplications", http.MethodGet, "/api/applications", nil, userHeader(token), nil, &envelope, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return envelope.Items, nil
}

// CreateApplication submits a new application and returns the canonical
// record the backend assigned (id, defaults, normalized fields).
func (c *Client) CreateApplication(ctx context.Context, token string, in types.ApplicationInput) (*types.Application, error) {
	var created types.Application
	_, err := c.do(ctx, "api.CreateApplication", http.MethodPost, "/api/applications", nil, userHeader(token), in, &created, http.StatusCreated, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateApplication applies a partial field patch and returns the canonical
// updated record. The patch is sent verbatim; the backend pins id and owner.
func (c *Client) UpdateApplication(ctx context.Context, token string, id int, patch map[string]any) (*types.Application, error) {
	var updated types.Application
	path := fmt.Sprintf("/api/applications/%d", id)
	_, err := c.do(ctx, "api.UpdateApplication", http.MethodPut, path, nil, userHeader(token), patch, &updated, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteApplication removes an application. A 404 is folded into success:
// either way the record no longer exists server-side.
func (c *Client) DeleteApplication(ctx context.Context, token string, id int) error {
	path := fmt.Sprintf("/api/applications/%d", id)
	_, err := c.do(ctx, "api.DeleteApplication", http.MethodDelete, path, nil, userHeader(token), nil, nil,
		http.StatusNoContent, http.StatusOK, http.StatusNotFound)
	return err
}

// SeedSamples asks the backend to create sample applications for the member.
// The backend refuses when the member already owns data.
func (c *Client) SeedSamples(ctx context.Context, token string) ([]types.Application, error) {
	var envelope itemsEnvelope
	_, err := c.do(ctx, "api.SeedSamples", http.MethodPost, "/api/seed", nil, userHeader(token), nil, &envelope, http.StatusCreated, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return envelope.Items, nil
}
