// Package status defines the application pipeline stages.
//
// Stage order:
//
//	wishlist ──► applied ──► interview ──► offer ──► rejected
//
// Advance walks the sequence left to right; rejected is terminal.
package status

import "fmt"

// Status values mirror the status strings stored by the backend.
type Status string

const (
	Wishlist  Status = "wishlist"
	Applied   Status = "applied"
	Interview Status = "interview"
	Offer     Status = "offer"
	Rejected  Status = "rejected"
)

// Default is the status assigned by the backend when a create omits one.
const Default = Applied

// order lists every stage in advance order.
var order = []Status{Wishlist, Applied, Interview, Offer, Rejected}

// labels maps each stage to its display name.
var labels = map[Status]string{
	Wishlist:  "Wishlist",
	Applied:   "Applied",
	Interview: "Interview",
	Offer:     "Offer",
	Rejected:  "Rejected",
}

// All returns every stage in board order.
func All() []Status {
	out := make([]Status, len(order))
	copy(out, order)
	return out
}

// Parse converts a raw string to a Status, returning an error for unknown
// values.
func Parse(s string) (Status, error) {
	st := Status(s)
	if st.Valid() {
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// Valid reports whether the status is one of the known stages.
func (s Status) Valid() bool {
	_, ok := labels[s]
	return ok
}

// Label returns the display name for the stage, or the raw value when the
// stage is unknown.
func (s Status) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

// Next returns the stage that follows s in the pipeline. Advancing past the
// last stage is a no-op: Next returns s unchanged for the terminal stage and
// for unknown values.
func Next(s Status) Status {
	for i, st := range order {
		if st == s {
			if i+1 < len(order) {
				return order[i+1]
			}
			return s
		}
	}
	return s
}
