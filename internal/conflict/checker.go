// Copyright Skylark Drones Pvt. Ltd., 2026. All rights reserved.

// Package conflict evaluates a proposed pilot/drone/mission assignment
// against the six validity rules and reports every violation it finds.
// Evaluation is pure and read-only; rules run in a fixed order and each
// contributes at most one conflict (the weather rule contributes up to two:
// rain rating and maintenance).
package conflict

import (
	"fmt"
	"strings"

	"github.com/skylark/droneops/internal/roster"
	"github.com/skylark/droneops/pkg/types"
)

// Rule identifies which assignment-validity rule a conflict violates.
type Rule string

const (
	RuleAvailability  Rule = "availability"
	RuleSkills        Rule = "skills"
	RuleCertification Rule = "certification"
	RuleLocation      Rule = "location"
	RuleBudget        Rule = "budget"
	RuleWeather       Rule = "weather"
	RuleMaintenance   Rule = "maintenance"
)

// Conflict is one detected rule violation. Message names the violated
// constraint and the offending values.
type Conflict struct {
	Rule    Rule   `json:"rule" yaml:"rule"`
	Message string `json:"message" yaml:"message"`
}

// dateLayout matches the roster loader's calendar-date format.
const dateLayout = "2006-01-02"

// CheckAssignment resolves the three identifiers against the store and
// evaluates all rules. If any identifier fails to resolve the whole check
// aborts with an error wrapping roster.ErrNotFound: a missing record makes
// every rule meaningless, so no partial evaluation is reported.
func CheckAssignment(s *roster.Store, pilotID, droneID, projectID string) ([]Conflict, error) {
	pilot, ok := s.PilotByID(pilotID)
	if !ok {
		return nil, fmt.Errorf("pilot %s: %w", pilotID, roster.ErrNotFound)
	}
	drone, ok := s.DroneByID(droneID)
	if !ok {
		return nil, fmt.Errorf("drone %s: %w", droneID, roster.ErrNotFound)
	}
	mission, ok := s.MissionByID(projectID)
	if !ok {
		return nil, fmt.Errorf("mission %s: %w", projectID, roster.ErrNotFound)
	}
	return Check(pilot, drone, mission), nil
}

// Check evaluates the six rules over resolved records. The returned slice
// is ordered by rule: availability, skills, certifications, location,
// budget, weather, maintenance. An empty result means the assignment is
// safe.
func Check(pilot *types.Pilot, drone *types.Drone, mission *types.Mission) []Conflict {
	var conflicts []Conflict

	// 1. Availability.
	if pilot.Status != types.StatusAvailable {
		conflicts = append(conflicts, Conflict{
			Rule:    RuleAvailability,
			Message: fmt.Sprintf("Pilot %s is currently %s.", pilot.Name, pilot.Status),
		})
	}

	// 2. Skill coverage: the mission's required set must be a subset of
	// the pilot's set. Extra pilot skills are fine.
	if missing := types.Missing(pilot.Skills, mission.RequiredSkills); len(missing) > 0 {
		conflicts = append(conflicts, Conflict{
			Rule: RuleSkills,
			Message: fmt.Sprintf("Skill mismatch: mission requires %s (pilot %s lacks %s).",
				strings.Join(mission.RequiredSkills, ", "), pilot.Name, strings.Join(missing, ", ")),
		})
	}

	// 3. Certification coverage, same subset test. An empty required set
	// imposes nothing.
	if missing := types.Missing(pilot.Certifications, mission.RequiredCerts); len(missing) > 0 {
		conflicts = append(conflicts, Conflict{
			Rule: RuleCertification,
			Message: fmt.Sprintf("Certification mismatch: mission requires %s (pilot %s lacks %s).",
				strings.Join(mission.RequiredCerts, ", "), pilot.Name, strings.Join(missing, ", ")),
		})
	}

	// 4. Location: exact string equality, no normalization.
	if pilot.Location != mission.Location {
		conflicts = append(conflicts, Conflict{
			Rule: RuleLocation,
			Message: fmt.Sprintf("Location mismatch: pilot %s is in %s, mission is in %s.",
				pilot.Name, pilot.Location, mission.Location),
		})
	}

	// 5. Budget: inclusive day count times the day rate; exact equality
	// with the budget is not an overrun.
	totalCost := float64(mission.Days()) * pilot.DailyRate
	if totalCost > mission.Budget {
		conflicts = append(conflicts, Conflict{
			Rule: RuleBudget,
			Message: fmt.Sprintf("Budget overrun: pilot cost ₹%.0f exceeds mission budget ₹%.0f.",
				totalCost, mission.Budget),
		})
	}

	// 6a. Weather: a rainy forecast needs a rain-rated drone.
	if strings.EqualFold(mission.WeatherForecast, "rainy") &&
		!strings.Contains(strings.ToLower(drone.WeatherResistance), "rain") {
		conflicts = append(conflicts, Conflict{
			Rule:    RuleWeather,
			Message: fmt.Sprintf("Weather risk: drone %s is not rated for rainy conditions.", drone.Model),
		})
	}

	// 6b. Maintenance: due on or before mission start blocks the drone.
	if !drone.MaintenanceDue.After(mission.StartDate) {
		conflicts = append(conflicts, Conflict{
			Rule: RuleMaintenance,
			Message: fmt.Sprintf("Maintenance due: drone %s requires maintenance before mission start (due %s).",
				drone.Model, drone.MaintenanceDue.Format(dateLayout)),
		})
	}

	return conflicts
}
