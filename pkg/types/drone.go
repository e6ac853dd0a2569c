// Copyright Skylark Drones Pvt. Ltd., 2026. All rights reserved.

package types

import "time"

// Drone holds one row of the drone fleet table.
type Drone struct {
	// ID is the unique drone identifier (e.g. "D1").
	ID string `json:"drone_id" yaml:"drone_id"`

	// Model is the airframe model name (e.g. "Mavic 3T").
	Model string `json:"model" yaml:"model"`

	// WeatherResistance is a free-text rating descriptor. A drone counts
	// as rain-capable when the descriptor contains "rain" in any case.
	WeatherResistance string `json:"weather_resistance" yaml:"weather_resistance"`

	// MaintenanceDue is the date the next scheduled maintenance falls due.
	MaintenanceDue time.Time `json:"maintenance_due" yaml:"maintenance_due"`
}
