// Copyright Skylark Drones Pvt. Ltd., 2026. All rights reserved.

// Package types holds the shared record types for the droneops roster:
// pilots, drones, and missions, plus the configuration structs consumed
// by the CLI and the stores.
package types

// PilotStatus indicates a pilot's current duty state.
type PilotStatus string

const (
	StatusAvailable PilotStatus = "Available"
	StatusAssigned  PilotStatus = "Assigned"
	StatusOnLeave   PilotStatus = "On Leave"
)

// Pilot holds one row of the pilot roster. Skills and Certifications are
// parsed once at load time from their comma-separated source fields; all
// membership tests are case-sensitive over the trimmed tokens.
type Pilot struct {
	// ID is the unique pilot identifier (e.g. "P1").
	ID string `json:"pilot_id" yaml:"pilot_id"`

	// Name is the pilot's display name.
	Name string `json:"name" yaml:"name"`

	// Status is the pilot's duty state. Only Available pilots pass the
	// availability check.
	Status PilotStatus `json:"status" yaml:"status"`

	// Location is the pilot's base city, matched verbatim against the
	// mission location.
	Location string `json:"location" yaml:"location"`

	// Skills lists the pilot's operational skills (e.g. "Survey", "Thermal").
	Skills []string `json:"skills" yaml:"skills"`

	// Certifications lists the pilot's regulatory certifications.
	Certifications []string `json:"certifications" yaml:"certifications"`

	// DailyRate is the pilot's day rate in INR.
	DailyRate float64 `json:"daily_rate_inr" yaml:"daily_rate_inr"`

	// CurrentAssignment is the project ID of the mission the pilot is
	// assigned to, or empty when unassigned.
	CurrentAssignment string `json:"current_assignment,omitempty" yaml:"current_assignment,omitempty"`
}

// HasAll reports whether the pilot token set have contains every token in
// want. An empty want set is trivially covered.
func HasAll(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(have))
	for _, t := range have {
		set[t] = struct{}{}
	}
	for _, t := range want {
		if _, ok := set[t]; !ok {
			return false
		}
	}
	return true
}

// Missing returns the tokens in want that are absent from have, in want order.
func Missing(have, want []string) []string {
	set := make(map[string]struct{}, len(have))
	for _, t := range have {
		set[t] = struct{}{}
	}
	var missing []string
	for _, t := range want {
		if _, ok := set[t]; !ok {
			missing = append(missing, t)
		}
	}
	return missing
}
