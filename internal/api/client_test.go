package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/applytrack/internal/types"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Options{BaseURL: server.URL, Logger: zerolog.Nop()})
	require.NoError(t, err)
	return client
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(Options{BaseURL: "not-a-url"})
	require.Error(t, err)

	var apiErr *Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Contains(t, err.Error(), "invalid base URL")
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	client, err := New(Options{BaseURL: "http://example.com/", Logger: zerolog.Nop()})
	require.NoError(t, err)
	assert.Equal(t, "http://example.com", client.baseURL)
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req types.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ada", req.Name)
		assert.Equal(t, "1234", req.Pin)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "ada", "location": "Berlin", "token": "tok-1", "pinSet": true}`))
	}))

	profile, err := client.Login(context.Background(), types.LoginRequest{Name: "ada", Pin: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "ada", profile.Name)
	assert.Equal(t, "tok-1", profile.Token)
	assert.True(t, profile.Authenticated())
}

func TestLogin_BadCredentials(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": "Invalid credentials"}`))
	}))

	_, err := client.Login(context.Background(), types.LoginRequest{Name: "ada", Pin: "0000"})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestListApplications(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/applications", r.URL.Path)
		assert.Equal(t, "tok-1", r.Header.Get("X-User-Token"))

		_, _ = w.Write([]byte(`{"items": [{"id": 2, "company": "Acme", "role": "Engineer", "status": "applied"}, {"id": 1, "company": "Initech", "role": "SRE", "status": "offer"}]}`))
	}))

	items, err := client.ListApplications(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].ID)
	assert.Equal(t, "Acme", items[0].Company)
	assert.Equal(t, "offer", items[1].Status)
}

func TestCreateApplication(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/applications", r.URL.Path)
		assert.Equal(t, "tok-1", r.Header.Get("X-User-Token"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 7, "company": "Acme", "role": "Engineer", "status": "applied", "createdAt": 1700000000000}`))
	}))

	created, err := client.CreateApplication(context.Background(), "tok-1", types.ApplicationInput{Company: "Acme", Role: "Engineer"})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, "applied", created.Status)
}

func TestUpdateApplication(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/applications/7", r.URL.Path)

		var patch map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		assert.Equal(t, "interview", patch["status"])

		_, _ = w.Write([]byte(`{"id": 7, "company": "Acme", "role": "Engineer", "status": "interview"}`))
	}))

	updated, err := client.UpdateApplication(context.Background(), "tok-1", 7, map[string]any{"status": "interview"})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.ID)
	assert.Equal(t, "interview", updated.Status)
}

func TestDeleteApplication_GoneEitherWay(t *testing.T) {
	for _, code := range []int{http.StatusNoContent, http.StatusNotFound} {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/applications/7", r.URL.Path)
			w.WriteHeader(code)
		}))

		assert.NoError(t, client.DeleteApplication(context.Background(), "tok-1", 7), "status %d means the record is gone", code)
	}
}

func TestDeleteApplication_HardFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": "Database unavailable"}`))
	}))

	err := client.DeleteApplication(context.Background(), "tok-1", 7)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "Database unavailable", apiErr.Message)
}

func TestSeedSamples(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/seed", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"items": [{"id": 1, "company": "Codex Labs", "role": "Frontend Engineer", "status": "interview"}]}`))
	}))

	items, err := client.SeedSamples(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Codex Labs", items[0].Company)
}

func TestAdminUsers(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/users", r.URL.Path)
		assert.Equal(t, "admin-tok", r.Header.Get("X-Admin-Token"))
		assert.Empty(t, r.Header.Get("X-User-Token"))

		_, _ = w.Write([]byte(`{"users": [{"name": "ada", "pinSet": true, "totalApplications": 3}], "unassignedApplications": 1, "totalApplications": 4}`))
	}))

	snapshot, err := client.AdminUsers(context.Background(), "admin-tok")
	require.NoError(t, err)
	require.Len(t, snapshot.Users, 1)
	assert.Equal(t, 3, snapshot.Users[0].TotalApplications)
	assert.Equal(t, 1, snapshot.UnassignedApplications)
	assert.Equal(t, 4, snapshot.TotalApplications)
}

func TestAdminUsers_RejectedToken(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "Admin token invalid"}`))
	}))

	_, err := client.AdminUsers(context.Background(), "wrong")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestAdminSaveUser(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/admin/users", r.URL.Path)

		var in types.AdminUserInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "grace", in.Name)

		_, _ = w.Write([]byte(`{"name": "grace", "pinSet": true}`))
	}))

	saved, err := client.AdminSaveUser(context.Background(), "admin-tok", types.AdminUserInput{Name: "grace", Pin: "9999"})
	require.NoError(t, err)
	assert.Equal(t, "grace", saved.Name)
	assert.True(t, saved.PinSet)
}

func TestAdminRemoveUser(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/admin/users", r.URL.Path)
		assert.Equal(t, "grace", r.URL.Query().Get("name"))
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.AdminRemoveUser(context.Background(), "admin-tok", "grace"))
}

func TestAdminEvents(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/events", r.URL.Path)
		assert.Equal(t, "1000", r.URL.Query().Get("limit"))

		_, _ = w.Write([]byte(`{"events": [{"type": "login", "owner": "ada", "timestamp": 1700000000000}]}`))
	}))

	events, err := client.AdminEvents(context.Background(), "admin-tok", 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "login", events[0].Type)
}

func TestAdminClearEvents(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/admin/events/clear", r.URL.Path)
		_, _ = w.Write([]byte(`{"status": "cleared"}`))
	}))

	require.NoError(t, client.AdminClearEvents(context.Background(), "admin-tok"))
}

func TestError_Unwrap(t *testing.T) {
	cause := context.Canceled
	err := &Error{Op: "api.ListApplications", Message: "request failed", Cause: cause}
	assert.ErrorIs(t, err, context.Canceled)
}
