package session

import (
	"strings"

	"github.com/jonathan/applytrack/internal/types"
)

// SetStatusFilter restricts the filtered view to one pipeline stage, or to
// every stage with StatusFilterAll.
func (c *Controller) SetStatusFilter(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		s = StatusFilterAll
	}
	c.filter.Status = s
}

// SetTextFilter restricts the filtered view to applications matching the
// given text.
func (c *Controller) SetTextFilter(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.Text = strings.TrimSpace(text)
}

// ResetFilters restores the default filter state.
func (c *Controller) ResetFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = defaultFilter()
}

// CurrentFilter returns the active filter state.
func (c *Controller) CurrentFilter() Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// FilteredApplications returns the cached applications that pass the active
// filter: status equality first, then a case-insensitive substring match
// over company, role, notes and location.
func (c *Controller) FilteredApplications() []types.Application {
	c.mu.Lock()
	filter := c.filter
	apps := cloneApps(c.apps)
	c.mu.Unlock()

	needle := strings.ToLower(filter.Text)
	var out []types.Application
	for _, app := range apps {
		if filter.Status != StatusFilterAll && app.Status != filter.Status {
			continue
		}
		if needle != "" && !matchesText(app, needle) {
			continue
		}
		out = append(out, app)
	}
	return out
}

func matchesText(app types.Application, needle string) bool {
	for _, field := range []string{app.Company, app.Role, app.Notes, app.Location} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func cloneApps(apps []types.Application) []types.Application {
	if apps == nil {
		return nil
	}
	return append([]types.Application{}, apps...)
}

func cloneProfile(p *types.Profile) *types.Profile {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}
