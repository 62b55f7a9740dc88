// Package display provides formatted plain-text output for the CLI.
package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/applytrack/internal/status"
	"github.com/jonathan/applytrack/internal/types"
)

// columnWidth caps individual table cells.
const columnWidth = 28

// Printer handles formatted output for the CLI.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}

func formatMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}

// PrintProfile outputs the signed-in member identity.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		fmt.Fprintln(p.out, "Not logged in.")
		return
	}
	fmt.Fprintf(p.out, "Logged in as %s", profile.Name)
	if profile.Location != "" {
		fmt.Fprintf(p.out, " (%s)", profile.Location)
	}
	fmt.Fprintln(p.out)
	if profile.LastLogin != 0 {
		fmt.Fprintf(p.out, "Last login: %s\n", formatMillis(profile.LastLogin))
	}
}

// PrintApplications outputs the application collection as a table.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintApplications(apps []types.Application) {
	if len(apps) == 0 {
		fmt.Fprintln(p.out, "No applications.")
		return
	}
	fmt.Fprintf(p.out, "%-6s %-*s %-*s %-10s %-12s %s\n", "ID", columnWidth, "COMPANY", columnWidth, "ROLE", "STATUS", "DATE", "LOCATION")
	for _, app := range apps {
		date := app.Date
		if date == "" {
			date = "-"
		}
		fmt.Fprintf(p.out, "%-6d %-*s %-*s %-10s %-12s %s\n",
			app.ID,
			columnWidth, truncate(app.Company, columnWidth),
			columnWidth, truncate(app.Role, columnWidth),
			app.Status,
			date,
			app.Location,
		)
	}
}

// PrintBoard outputs per-stage counts in pipeline order.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBoard(apps []types.Application) {
	counts := make(map[status.Status]int)
	for _, app := range apps {
		counts[status.Status(app.Status)]++
	}
	var parts []string
	for _, st := range status.All() {
		parts = append(parts, fmt.Sprintf("%s %d", st.Label(), counts[st]))
	}
	fmt.Fprintf(p.out, "%s | total %d\n", strings.Join(parts, " | "), len(apps))
}

// PrintAdminUsers outputs the admin user listing with aggregate counts.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintAdminUsers(snapshot *types.AdminUsersSnapshot) {
	if snapshot == nil || len(snapshot.Users) == 0 {
		fmt.Fprintln(p.out, "No users.")
		return
	}
	fmt.Fprintf(p.out, "%-*s %-*s %-6s %-7s %-17s %s\n", columnWidth, "NAME", columnWidth, "LOCATION", "APPS", "PIN", "LAST LOGIN", "LAST SEEN")
	for _, user := range snapshot.Users {
		pin := "no"
		if user.PinSet {
			pin = "yes"
		}
		fmt.Fprintf(p.out, "%-*s %-*s %-6d %-7s %-17s %s\n",
			columnWidth, truncate(user.Name, columnWidth),
			columnWidth, truncate(user.Location, columnWidth),
			user.TotalApplications,
			pin,
			formatMillis(user.LastLogin),
			formatMillis(user.LastSeen),
		)
	}
	fmt.Fprintf(p.out, "Total applications: %d (unassigned: %d)\n", snapshot.TotalApplications, snapshot.UnassignedApplications)
}

// PrintAdminEvents outputs the audit log, newest first.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintAdminEvents(events []types.AdminEvent) {
	if len(events) == 0 {
		fmt.Fprintln(p.out, "No events.")
		return
	}
	fmt.Fprintf(p.out, "%-17s %-20s %-*s %s\n", "TIMESTAMP", "TYPE", columnWidth, "OWNER", "DETAIL")
	for _, event := range events {
		detail := ""
		if event.ID != 0 {
			detail = fmt.Sprintf("id=%d", event.ID)
		}
		if event.Count != 0 {
			detail = fmt.Sprintf("count=%d", event.Count)
		}
		fmt.Fprintf(p.out, "%-17s %-20s %-*s %s\n",
			formatMillis(event.Timestamp),
			event.Type,
			columnWidth, truncate(event.Owner, columnWidth),
			detail,
		)
	}
}
