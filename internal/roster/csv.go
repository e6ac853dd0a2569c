// Copyright Skylark Drones Pvt. Ltd., 2026. All rights reserved.

package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/skylark/droneops/pkg/types"
)

// dateLayout is the calendar-date format used across all roster files.
const dateLayout = "2006-01-02"

// LoadCSV reads the three roster CSV files and builds a validated store.
// Every row must parse completely; a malformed date or non-numeric amount
// aborts the load with the file and row identified.
func LoadCSV(pilotsPath, dronesPath, missionsPath string) (*Store, error) {
	pilots, err := loadPilotsCSV(pilotsPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", pilotsPath, err)
	}
	drones, err := loadDronesCSV(dronesPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", dronesPath, err)
	}
	missions, err := loadMissionsCSV(missionsPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", missionsPath, err)
	}
	return New(pilots, drones, missions)
}

// SplitList parses a comma-separated token field into a set-like slice:
// whitespace around each token is trimmed and empty tokens are dropped, so
// an empty or blank field yields no requirement at all.
func SplitList(s string) []string {
	var tokens []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// table holds one parsed CSV file: a header index and the data rows.
type table struct {
	cols map[string]int
	rows [][]string
}

// get returns the named column of row, or "" when the column is absent.
func (t *table) get(row []string, name string) string {
	i, ok := t.cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV file")
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.TrimSpace(name)] = i
	}
	return &table{cols: cols, rows: records[1:]}, nil
}

func loadPilotsCSV(path string) ([]*types.Pilot, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	pilots := make([]*types.Pilot, 0, len(t.rows))
	for n, row := range t.rows {
		rate, err := strconv.ParseFloat(t.get(row, "daily_rate_inr"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: daily_rate_inr: %w", n+2, err)
		}
		pilots = append(pilots, &types.Pilot{
			ID:                t.get(row, "pilot_id"),
			Name:              t.get(row, "name"),
			Status:            types.PilotStatus(t.get(row, "status")),
			Location:          t.get(row, "location"),
			Skills:            SplitList(t.get(row, "skills")),
			Certifications:    SplitList(t.get(row, "certifications")),
			DailyRate:         rate,
			CurrentAssignment: t.get(row, "current_assignment"),
		})
	}
	return pilots, nil
}

func loadDronesCSV(path string) ([]*types.Drone, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	drones := make([]*types.Drone, 0, len(t.rows))
	for n, row := range t.rows {
		due, err := time.Parse(dateLayout, t.get(row, "maintenance_due"))
		if err != nil {
			return nil, fmt.Errorf("row %d: maintenance_due: %w", n+2, err)
		}
		drones = append(drones, &types.Drone{
			ID:                t.get(row, "drone_id"),
			Model:             t.get(row, "model"),
			WeatherResistance: t.get(row, "weather_resistance"),
			MaintenanceDue:    due,
		})
	}
	return drones, nil
}

func loadMissionsCSV(path string) ([]*types.Mission, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	missions := make([]*types.Mission, 0, len(t.rows))
	for n, row := range t.rows {
		start, err := time.Parse(dateLayout, t.get(row, "start_date"))
		if err != nil {
			return nil, fmt.Errorf("row %d: start_date: %w", n+2, err)
		}
		end, err := time.Parse(dateLayout, t.get(row, "end_date"))
		if err != nil {
			return nil, fmt.Errorf("row %d: end_date: %w", n+2, err)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("row %d: end_date %s precedes start_date %s",
				n+2, end.Format(dateLayout), start.Format(dateLayout))
		}
		budget, err := strconv.ParseFloat(t.get(row, "mission_budget_inr"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: mission_budget_inr: %w", n+2, err)
		}
		missions = append(missions, &types.Mission{
			ProjectID:       t.get(row, "project_id"),
			RequiredSkills:  SplitList(t.get(row, "required_skills")),
			RequiredCerts:   SplitList(t.get(row, "required_certs")),
			Location:        t.get(row, "location"),
			StartDate:       start,
			EndDate:         end,
			Budget:          budget,
			WeatherForecast: t.get(row, "weather_forecast"),
			Priority:        types.MissionPriority(t.get(row, "priority")),
		})
	}
	return missions, nil
}
