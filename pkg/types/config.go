package types

import "time"

// HTTPConfig holds shared HTTP settings for components that call out over
// the network.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "droneops/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// StoreConfig holds settings for the local roster database.
type StoreConfig struct {
	// DBPath is the path of the SQLite roster database (default "droneops.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}

// RosterFilesConfig names the CSV source files the roster is seeded from.
type RosterFilesConfig struct {
	// PilotsCSV is the pilot roster CSV (default "data/pilot_roster.csv").
	PilotsCSV string `json:"pilots_csv" yaml:"pilots_csv"`

	// DronesCSV is the drone fleet CSV (default "data/drone_fleet.csv").
	DronesCSV string `json:"drones_csv" yaml:"drones_csv"`

	// MissionsCSV is the missions CSV (default "data/missions.csv").
	MissionsCSV string `json:"missions_csv" yaml:"missions_csv"`
}

// SheetSyncConfig holds settings for the spreadsheet write-back bridge.
// Sync is disabled when Endpoint is empty.
type SheetSyncConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint is the base URL of the sheet bridge service.
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Spreadsheet is the spreadsheet identifier rows are pushed to.
	Spreadsheet string `json:"spreadsheet" yaml:"spreadsheet"`

	// MaxRetries bounds retry attempts on throttled pushes (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// OpsConfig groups all droneops configuration.
type OpsConfig struct {
	Store  StoreConfig       `json:"store" yaml:"store"`
	Roster RosterFilesConfig `json:"roster" yaml:"roster"`
	Sync   SheetSyncConfig   `json:"sync" yaml:"sync"`
}
