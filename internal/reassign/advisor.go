// Copyright Skylark Drones Pvt. Ltd., 2026. All rights reserved.

// Package reassign proposes preemption candidates for urgent missions. The
// advisor only recommends; it never mutates pilot or mission state.
package reassign

import (
	"fmt"
	"strings"

	"github.com/skylark/droneops/internal/roster"
	"github.com/skylark/droneops/pkg/types"
)

// Status tags the outcome of a reassignment request.
type Status string

const (
	StatusSuccess Status = "Success"
	StatusFailed  Status = "Failed"
)

// Result is the tagged outcome of Advise. Recommendation is set on
// success, Reason on failure.
type Result struct {
	Status         Status `json:"status" yaml:"status"`
	Recommendation string `json:"action_recommended,omitempty" yaml:"action_recommended,omitempty"`
	Reason         string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Advise finds a pilot who can be pulled off a Standard-priority mission to
// service the urgent mission identified by projectID. Only pilots whose
// current assignment resolves to a Standard mission are candidates: pulling
// a pilot off another urgent mission would just move the hole around. The
// first candidate in roster order is recommended; there is no ranking.
func Advise(s *roster.Store, projectID string) Result {
	mission, ok := s.MissionByID(projectID)
	if !ok {
		return Result{
			Status: StatusFailed,
			Reason: fmt.Sprintf("No mission found with project ID %s.", projectID),
		}
	}

	if !strings.EqualFold(string(mission.Priority), string(types.PriorityUrgent)) {
		return Result{
			Status: StatusFailed,
			Reason: fmt.Sprintf("Mission %s is not Urgent.", projectID),
		}
	}

	for _, pilot := range s.Pilots() {
		if pilot.Status != types.StatusAssigned || pilot.CurrentAssignment == "" {
			continue
		}
		current, ok := s.MissionByID(pilot.CurrentAssignment)
		if !ok || current.Priority != types.PriorityStandard {
			continue
		}
		return Result{
			Status: StatusSuccess,
			Recommendation: fmt.Sprintf("Preempt pilot %s from %s and reassign to %s.",
				pilot.Name, pilot.CurrentAssignment, projectID),
		}
	}

	return Result{
		Status: StatusFailed,
		Reason: "No preemptable standard assignments found.",
	}
}
