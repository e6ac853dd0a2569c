package reassign

import (
	"strings"
	"testing"
	"time"

	"github.com/skylark/droneops/internal/roster"
	"github.com/skylark/droneops/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mission(id string, priority types.MissionPriority) *types.Mission {
	return &types.Mission{
		ProjectID: id,
		Location:  "Bangalore",
		StartDate: date(2026, 9, 1),
		EndDate:   date(2026, 9, 3),
		Budget:    50000,
		Priority:  priority,
	}
}

func assignedPilot(id, name, assignment string) *types.Pilot {
	return &types.Pilot{
		ID:                id,
		Name:              name,
		Status:            types.StatusAssigned,
		CurrentAssignment: assignment,
		DailyRate:         5000,
	}
}

func mustStore(t *testing.T, pilots []*types.Pilot, missions []*types.Mission) *roster.Store {
	t.Helper()
	s, err := roster.New(pilots, nil, missions)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestAdviseUnknownProject(t *testing.T) {
	s := mustStore(t, nil, []*types.Mission{mission("M1", types.PriorityUrgent)})

	result := Advise(s, "M9")
	if result.Status != StatusFailed {
		t.Fatalf("status = %s, want Failed", result.Status)
	}
	if !strings.Contains(result.Reason, "M9") {
		t.Errorf("reason %q should name the unknown project", result.Reason)
	}
}

func TestAdviseNonUrgentMissionAlwaysFails(t *testing.T) {
	// Even with a preemptable pilot on the roster, a Standard mission is
	// never entitled to preemption.
	s := mustStore(t,
		[]*types.Pilot{assignedPilot("P1", "Ravi", "M1")},
		[]*types.Mission{
			mission("M1", types.PriorityStandard),
			mission("M2", types.PriorityStandard),
		},
	)

	result := Advise(s, "M2")
	if result.Status != StatusFailed {
		t.Fatalf("status = %s, want Failed", result.Status)
	}
	if !strings.Contains(result.Reason, "not Urgent") {
		t.Errorf("reason = %q, want a non-urgent explanation", result.Reason)
	}
}

func TestAdvisePriorityTestIsCaseInsensitive(t *testing.T) {
	s := mustStore(t,
		[]*types.Pilot{assignedPilot("P1", "Ravi", "M1")},
		[]*types.Mission{
			mission("M1", types.PriorityStandard),
			mission("M2", types.MissionPriority("urgent")),
		},
	)

	result := Advise(s, "M2")
	if result.Status != StatusSuccess {
		t.Fatalf("status = %s, want Success (reason: %s)", result.Status, result.Reason)
	}
}

func TestAdviseRecommendsFirstCandidateInRosterOrder(t *testing.T) {
	s := mustStore(t,
		[]*types.Pilot{
			{ID: "P1", Name: "Anjali", Status: types.StatusAvailable},
			assignedPilot("P2", "Ravi", "M1"),
			assignedPilot("P3", "Meera", "M1"),
		},
		[]*types.Mission{
			mission("M1", types.PriorityStandard),
			mission("M2", types.PriorityUrgent),
		},
	)

	result := Advise(s, "M2")
	if result.Status != StatusSuccess {
		t.Fatalf("status = %s, want Success (reason: %s)", result.Status, result.Reason)
	}
	if !strings.Contains(result.Recommendation, "Ravi") {
		t.Errorf("recommendation %q should pick the first assigned pilot, Ravi", result.Recommendation)
	}
	if !strings.Contains(result.Recommendation, "M1") || !strings.Contains(result.Recommendation, "M2") {
		t.Errorf("recommendation %q should name the current assignment and the urgent project", result.Recommendation)
	}
}

func TestAdviseSkipsPilotsOnUrgentMissions(t *testing.T) {
	// Pilots already serving urgent missions are not preemption candidates:
	// pulling them would just move the hole to another urgent mission.
	s := mustStore(t,
		[]*types.Pilot{
			assignedPilot("P1", "Ravi", "M3"),
			assignedPilot("P2", "Meera", "M1"),
		},
		[]*types.Mission{
			mission("M1", types.PriorityStandard),
			mission("M2", types.PriorityUrgent),
			mission("M3", types.PriorityUrgent),
		},
	)

	result := Advise(s, "M2")
	if result.Status != StatusSuccess {
		t.Fatalf("status = %s, want Success (reason: %s)", result.Status, result.Reason)
	}
	if !strings.Contains(result.Recommendation, "Meera") {
		t.Errorf("recommendation %q should skip the urgent-mission pilot and pick Meera", result.Recommendation)
	}
}

func TestAdviseNoCandidates(t *testing.T) {
	s := mustStore(t,
		[]*types.Pilot{
			{ID: "P1", Name: "Anjali", Status: types.StatusAvailable},
			{ID: "P2", Name: "Ravi", Status: types.StatusOnLeave},
			assignedPilot("P3", "Meera", "M3"), // assigned, but to an urgent mission
		},
		[]*types.Mission{
			mission("M2", types.PriorityUrgent),
			mission("M3", types.PriorityUrgent),
		},
	)

	result := Advise(s, "M2")
	if result.Status != StatusFailed {
		t.Fatalf("status = %s, want Failed", result.Status)
	}
	if !strings.Contains(result.Reason, "No preemptable") {
		t.Errorf("reason = %q, want a no-candidates explanation", result.Reason)
	}
}

func TestAdviseSkipsAssignedPilotWithDanglingAssignment(t *testing.T) {
	s := mustStore(t,
		[]*types.Pilot{assignedPilot("P1", "Ravi", "M-GONE")},
		[]*types.Mission{mission("M2", types.PriorityUrgent)},
	)

	result := Advise(s, "M2")
	if result.Status != StatusFailed {
		t.Fatalf("status = %s, want Failed: dangling assignments are not candidates", result.Status)
	}
}

func TestAdviseDoesNotMutateRoster(t *testing.T) {
	pilot := assignedPilot("P1", "Ravi", "M1")
	s := mustStore(t,
		[]*types.Pilot{pilot},
		[]*types.Mission{
			mission("M1", types.PriorityStandard),
			mission("M2", types.PriorityUrgent),
		},
	)

	Advise(s, "M2")
	if pilot.Status != types.StatusAssigned || pilot.CurrentAssignment != "M1" {
		t.Error("Advise must not change pilot state")
	}
}
