// Copyright Skylark Drones Pvt. Ltd., 2026. All rights reserved.

// Package rosterdb persists the roster tables in a local SQLite database.
// The database is the session's external record store: the CSV import
// seeds it, commands load the in-memory roster from it, and pilot status
// updates are written back through the roster.Syncer interface.
package rosterdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/skylark/droneops/internal/roster"
	"github.com/skylark/droneops/pkg/types"
)

const dateLayout = "2006-01-02"

// DB wraps the SQLite roster database.
type DB struct {
	db *sql.DB
}

// Open opens or creates the roster database at path and ensures the schema
// exists.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	d := &DB{db: db}
	if err := d.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return d, nil
}

// Close releases the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS pilots (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			pilot_id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			status TEXT NOT NULL,
			location TEXT,
			skills TEXT,
			certifications TEXT,
			daily_rate_inr REAL NOT NULL,
			current_assignment TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS drones (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			drone_id TEXT NOT NULL UNIQUE,
			model TEXT NOT NULL,
			weather_resistance TEXT,
			maintenance_due TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS missions (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id TEXT NOT NULL UNIQUE,
			required_skills TEXT,
			required_certs TEXT,
			location TEXT,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			mission_budget_inr REAL NOT NULL,
			weather_forecast TEXT,
			priority TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := d.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IsPopulated reports whether the pilot table holds any rows.
func (d *DB) IsPopulated() (bool, error) {
	var ignored int
	err := d.db.QueryRow(`SELECT 1 FROM pilots LIMIT 1`).Scan(&ignored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking pilot table: %w", err)
	}
	return true, nil
}

// ImportRoster replaces the database contents with the given roster in a
// single transaction. Insertion order follows roster load order, so a
// later LoadRoster rebuilds the tables in the same order.
func (d *DB) ImportRoster(ctx context.Context, s *roster.Store) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"pilots", "drones", "missions"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO pilots (pilot_id, name, status, location, skills, certifications, daily_rate_inr, current_assignment)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing pilot insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range s.Pilots() {
		skillsJSON, _ := json.Marshal(p.Skills)
		certsJSON, _ := json.Marshal(p.Certifications)
		if _, err := stmt.ExecContext(ctx,
			p.ID, p.Name, string(p.Status), p.Location,
			string(skillsJSON), string(certsJSON), p.DailyRate, p.CurrentAssignment,
		); err != nil {
			return fmt.Errorf("inserting pilot %s: %w", p.ID, err)
		}
	}

	for _, dr := range s.Drones() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO drones (drone_id, model, weather_resistance, maintenance_due) VALUES (?, ?, ?, ?)`,
			dr.ID, dr.Model, dr.WeatherResistance, dr.MaintenanceDue.Format(dateLayout),
		); err != nil {
			return fmt.Errorf("inserting drone %s: %w", dr.ID, err)
		}
	}

	for _, m := range s.Missions() {
		skillsJSON, _ := json.Marshal(m.RequiredSkills)
		certsJSON, _ := json.Marshal(m.RequiredCerts)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO missions (project_id, required_skills, required_certs, location, start_date, end_date, mission_budget_inr, weather_forecast, priority)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ProjectID, string(skillsJSON), string(certsJSON), m.Location,
			m.StartDate.Format(dateLayout), m.EndDate.Format(dateLayout),
			m.Budget, m.WeatherForecast, string(m.Priority),
		); err != nil {
			return fmt.Errorf("inserting mission %s: %w", m.ProjectID, err)
		}
	}

	return tx.Commit()
}

// LoadRoster rebuilds an in-memory roster store from the database, in
// insertion order.
func (d *DB) LoadRoster(ctx context.Context) (*roster.Store, error) {
	pilots, err := d.loadPilots(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading pilots: %w", err)
	}
	drones, err := d.loadDrones(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading drones: %w", err)
	}
	missions, err := d.loadMissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading missions: %w", err)
	}
	return roster.New(pilots, drones, missions)
}

func (d *DB) loadPilots(ctx context.Context) ([]*types.Pilot, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT pilot_id, name, status, location, skills, certifications, daily_rate_inr, current_assignment
		 FROM pilots ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pilots []*types.Pilot
	for rows.Next() {
		var p types.Pilot
		var status, skillsJSON, certsJSON string
		if err := rows.Scan(&p.ID, &p.Name, &status, &p.Location,
			&skillsJSON, &certsJSON, &p.DailyRate, &p.CurrentAssignment); err != nil {
			return nil, err
		}
		p.Status = types.PilotStatus(status)
		if err := unmarshalList(skillsJSON, &p.Skills); err != nil {
			return nil, fmt.Errorf("pilot %s skills: %w", p.ID, err)
		}
		if err := unmarshalList(certsJSON, &p.Certifications); err != nil {
			return nil, fmt.Errorf("pilot %s certifications: %w", p.ID, err)
		}
		pilots = append(pilots, &p)
	}
	return pilots, rows.Err()
}

func (d *DB) loadDrones(ctx context.Context) ([]*types.Drone, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT drone_id, model, weather_resistance, maintenance_due FROM drones ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drones []*types.Drone
	for rows.Next() {
		var dr types.Drone
		var due string
		if err := rows.Scan(&dr.ID, &dr.Model, &dr.WeatherResistance, &due); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(dateLayout, due)
		if err != nil {
			return nil, fmt.Errorf("drone %s maintenance_due: %w", dr.ID, err)
		}
		dr.MaintenanceDue = parsed
		drones = append(drones, &dr)
	}
	return drones, rows.Err()
}

func (d *DB) loadMissions(ctx context.Context) ([]*types.Mission, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT project_id, required_skills, required_certs, location, start_date, end_date, mission_budget_inr, weather_forecast, priority
		 FROM missions ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var missions []*types.Mission
	for rows.Next() {
		var m types.Mission
		var skillsJSON, certsJSON, start, end, priority string
		if err := rows.Scan(&m.ProjectID, &skillsJSON, &certsJSON, &m.Location,
			&start, &end, &m.Budget, &m.WeatherForecast, &priority); err != nil {
			return nil, err
		}
		if err := unmarshalList(skillsJSON, &m.RequiredSkills); err != nil {
			return nil, fmt.Errorf("mission %s required_skills: %w", m.ProjectID, err)
		}
		if err := unmarshalList(certsJSON, &m.RequiredCerts); err != nil {
			return nil, fmt.Errorf("mission %s required_certs: %w", m.ProjectID, err)
		}
		startDate, err := time.Parse(dateLayout, start)
		if err != nil {
			return nil, fmt.Errorf("mission %s start_date: %w", m.ProjectID, err)
		}
		endDate, err := time.Parse(dateLayout, end)
		if err != nil {
			return nil, fmt.Errorf("mission %s end_date: %w", m.ProjectID, err)
		}
		m.StartDate, m.EndDate = startDate, endDate
		m.Priority = types.MissionPriority(priority)
		missions = append(missions, &m)
	}
	return missions, rows.Err()
}

// Name identifies the database in sync warnings.
func (d *DB) Name() string { return "roster database" }

// SyncPilots writes the pilot table back to the database in one
// transaction. It implements roster.Syncer for the status-update
// write-back path.
func (d *DB) SyncPilots(ctx context.Context, pilots []*types.Pilot) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`UPDATE pilots SET status = ?, current_assignment = ? WHERE pilot_id = ?`)
	if err != nil {
		return fmt.Errorf("preparing pilot update: %w", err)
	}
	defer stmt.Close()

	for _, p := range pilots {
		if _, err := stmt.ExecContext(ctx, string(p.Status), p.CurrentAssignment, p.ID); err != nil {
			return fmt.Errorf("updating pilot %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

// unmarshalList decodes a JSON-encoded string list column; empty or NULL
// columns decode to a nil slice.
func unmarshalList(s string, out *[]string) error {
	if s == "" || s == "null" {
		*out = nil
		return nil
	}
	return json.Unmarshal([]byte(s), out)
}
