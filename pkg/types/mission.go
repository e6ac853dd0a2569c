// Copyright Skylark Drones Pvt. Ltd., 2026. All rights reserved.

package types

import "time"

// MissionPriority indicates scheduling priority for a mission.
type MissionPriority string

const (
	PriorityStandard MissionPriority = "Standard"
	PriorityUrgent   MissionPriority = "Urgent"
)

// Mission holds one row of the missions table. RequiredSkills and
// RequiredCerts are parsed once at load time; an empty set means the
// mission imposes no requirement of that kind.
type Mission struct {
	// ProjectID is the unique mission identifier (e.g. "M2").
	ProjectID string `json:"project_id" yaml:"project_id"`

	// RequiredSkills lists the skills every assigned pilot must hold.
	RequiredSkills []string `json:"required_skills" yaml:"required_skills"`

	// RequiredCerts lists the certifications every assigned pilot must hold.
	RequiredCerts []string `json:"required_certs" yaml:"required_certs"`

	// Location is the mission site city, matched verbatim against the
	// pilot location.
	Location string `json:"location" yaml:"location"`

	// StartDate and EndDate bound the mission. The duration in days is
	// inclusive of both endpoints; EndDate is never before StartDate.
	StartDate time.Time `json:"start_date" yaml:"start_date"`
	EndDate   time.Time `json:"end_date" yaml:"end_date"`

	// Budget is the total mission budget in INR.
	Budget float64 `json:"mission_budget_inr" yaml:"mission_budget_inr"`

	// WeatherForecast is the free-text forecast for the mission window.
	WeatherForecast string `json:"weather_forecast" yaml:"weather_forecast"`

	// Priority is Standard or Urgent.
	Priority MissionPriority `json:"priority" yaml:"priority"`
}

// Days returns the mission duration as an inclusive day count: a mission
// starting and ending on the same date lasts one day.
func (m Mission) Days() int {
	return int(m.EndDate.Sub(m.StartDate)/(24*time.Hour)) + 1
}
