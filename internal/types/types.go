// Package types provides type definitions for structured data exchanged with the tracker backend.
package types

import "strings"

// Application represents a single tracked job application.
// The backend is the source of truth for IDs and normalized fields; the
// client never synthesizes these values locally.
type Application struct {
	ID        int    `json:"id"`
	Company   string `json:"company"`
	Role      string `json:"role"`
	Link      string `json:"link,omitempty"`
	Date      string `json:"date,omitempty"` // ISO calendar date (YYYY-MM-DD) or empty
	Status    string `json:"status"`
	Location  string `json:"location,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Owner     string `json:"owner,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"` // Unix milliseconds
}

// Profile represents the signed-in member identity returned by login.
type Profile struct {
	Name      string `json:"name"`
	Location  string `json:"location,omitempty"`
	Token     string `json:"token"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	LastLogin int64  `json:"lastLogin,omitempty"`
	LastSeen  int64  `json:"lastSeen,omitempty"`
	PinSet    bool   `json:"pinSet,omitempty"`
}

// Authenticated reports whether the profile can be used for owner-scoped
// calls. A profile without a token is never treated as authenticated.
func (p *Profile) Authenticated() bool {
	return p != nil && strings.TrimSpace(p.Name) != "" && strings.TrimSpace(p.Token) != ""
}

// AdminUser is the read-only per-member view exposed to administrators.
type AdminUser struct {
	Name              string `json:"name"`
	Location          string `json:"location,omitempty"`
	CreatedAt         int64  `json:"createdAt,omitempty"`
	LastLogin         int64  `json:"lastLogin,omitempty"`
	LastSeen          int64  `json:"lastSeen,omitempty"`
	PinSet            bool   `json:"pinSet"`
	TotalApplications int    `json:"totalApplications"`
}

// AdminUsersSnapshot is the full admin user listing plus aggregate counts.
type AdminUsersSnapshot struct {
	Users                  []AdminUser `json:"users"`
	UnassignedApplications int         `json:"unassignedApplications"`
	TotalApplications      int         `json:"totalApplications"`
}

// AdminEvent is one append-only audit log entry emitted by the backend.
type AdminEvent struct {
	Type      string `json:"type"`
	Owner     string `json:"owner,omitempty"`
	ID        int    `json:"id,omitempty"`
	Count     int    `json:"count,omitempty"`
	IP        string `json:"ip,omitempty"`
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}
