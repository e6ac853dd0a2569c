package roster

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/skylark/droneops/pkg/types"
)

const (
	pilotsCSV = `pilot_id,name,status,location,skills,certifications,daily_rate_inr,current_assignment
P1,Anjali,Available,Bangalore,"Survey, Thermal",DGCA-Small,5000,
P2,Ravi,Assigned,Mumbai,"Survey,Mapping , LiDAR","DGCA-Small, DGCA-Medium",7500,M1
`
	dronesCSV = `drone_id,model,weather_resistance,maintenance_due
D1,Mavic 3T,"All-weather, rain-rated",2026-12-31
D2,Phantom 4,IP43,2026-03-01
`
	missionsCSV = `project_id,required_skills,required_certs,location,start_date,end_date,mission_budget_inr,weather_forecast,priority
M1,Survey,DGCA-Small,Mumbai,2026-09-01,2026-09-03,40000,Sunny,Standard
M2,"Survey, Thermal",,Bangalore,2026-09-05,2026-09-05,10000,Rainy,Urgent
`
)

func writeCSVs(t *testing.T, pilots, drones, missions string) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	paths := [3]string{
		filepath.Join(dir, "pilot_roster.csv"),
		filepath.Join(dir, "drone_fleet.csv"),
		filepath.Join(dir, "missions.csv"),
	}
	for i, content := range []string{pilots, drones, missions} {
		if err := os.WriteFile(paths[i], []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return paths[0], paths[1], paths[2]
}

func TestLoadCSV(t *testing.T) {
	s, err := LoadCSV(writeCSVs(t, pilotsCSV, dronesCSV, missionsCSV))
	if err != nil {
		t.Fatal(err)
	}

	if len(s.Pilots()) != 2 || len(s.Drones()) != 2 || len(s.Missions()) != 2 {
		t.Fatalf("loaded %d/%d/%d records, want 2/2/2",
			len(s.Pilots()), len(s.Drones()), len(s.Missions()))
	}

	p, ok := s.PilotByID("P2")
	if !ok {
		t.Fatal("P2 not loaded")
	}
	// Token sets are trimmed around commas regardless of spacing.
	if want := []string{"Survey", "Mapping", "LiDAR"}; !reflect.DeepEqual(p.Skills, want) {
		t.Errorf("P2 skills = %v, want %v", p.Skills, want)
	}
	if want := []string{"DGCA-Small", "DGCA-Medium"}; !reflect.DeepEqual(p.Certifications, want) {
		t.Errorf("P2 certifications = %v, want %v", p.Certifications, want)
	}
	if p.DailyRate != 7500 {
		t.Errorf("P2 daily rate = %f, want 7500", p.DailyRate)
	}
	if p.CurrentAssignment != "M1" {
		t.Errorf("P2 assignment = %q, want M1", p.CurrentAssignment)
	}

	m, ok := s.MissionByID("M2")
	if !ok {
		t.Fatal("M2 not loaded")
	}
	if len(m.RequiredCerts) != 0 {
		t.Errorf("empty required_certs should parse as no requirement, got %v", m.RequiredCerts)
	}
	if m.Days() != 1 {
		t.Errorf("same-day mission Days() = %d, want 1", m.Days())
	}
	if m.Priority != types.PriorityUrgent {
		t.Errorf("M2 priority = %s, want Urgent", m.Priority)
	}
}

func TestLoadCSVMalformedDate(t *testing.T) {
	bad := strings.Replace(dronesCSV, "2026-03-01", "01/03/2026", 1)
	_, err := LoadCSV(writeCSVs(t, pilotsCSV, bad, missionsCSV))
	if err == nil || !strings.Contains(err.Error(), "maintenance_due") {
		t.Errorf("err = %v, want a maintenance_due parse error", err)
	}
}

func TestLoadCSVNonNumericRate(t *testing.T) {
	bad := strings.Replace(pilotsCSV, "5000", "five thousand", 1)
	_, err := LoadCSV(writeCSVs(t, bad, dronesCSV, missionsCSV))
	if err == nil || !strings.Contains(err.Error(), "daily_rate_inr") {
		t.Errorf("err = %v, want a daily_rate_inr parse error", err)
	}
}

func TestLoadCSVEndBeforeStart(t *testing.T) {
	bad := strings.Replace(missionsCSV, "2026-09-01,2026-09-03", "2026-09-03,2026-09-01", 1)
	_, err := LoadCSV(writeCSVs(t, pilotsCSV, dronesCSV, bad))
	if err == nil || !strings.Contains(err.Error(), "precedes") {
		t.Errorf("err = %v, want an end-before-start error", err)
	}
}

func TestLoadCSVDuplicateID(t *testing.T) {
	bad := strings.Replace(pilotsCSV, "P2", "P1", 1)
	_, err := LoadCSV(writeCSVs(t, bad, dronesCSV, missionsCSV))
	if err == nil || !strings.Contains(err.Error(), "duplicate pilot ID") {
		t.Errorf("err = %v, want a duplicate-ID error", err)
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	p, d, m := writeCSVs(t, pilotsCSV, dronesCSV, missionsCSV)
	_, err := LoadCSV(p, d, filepath.Join(filepath.Dir(m), "nope.csv"))
	if err == nil {
		t.Error("a missing file should abort the load")
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Survey,Thermal", []string{"Survey", "Thermal"}},
		{" Survey , Thermal ", []string{"Survey", "Thermal"}},
		{"Survey", []string{"Survey"}},
		{"", nil},
		{"  ", nil},
		{"Survey,,Thermal", []string{"Survey", "Thermal"}},
	}
	for _, tt := range tests {
		if got := SplitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
