// Copyright Skylark Drones Pvt. Ltd., 2026. All rights reserved.

// Package roster holds the in-memory pilot/drone/mission tables shared by
// the conflict checker and the reassignment advisor. The store is owned by
// the caller and passed in explicitly; it assumes a single in-flight
// operation per session and takes no locks.
package roster

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/skylark/droneops/pkg/types"
)

// ErrNotFound is returned when an identifier resolves to no record.
var ErrNotFound = errors.New("record not found")

// Syncer receives the pilot table after an in-memory mutation and writes
// it back to an external store. Sync failures never roll back the
// in-memory change.
type Syncer interface {
	// Name identifies the sync target in warning messages.
	Name() string

	// SyncPilots persists the full pilot table.
	SyncPilots(ctx context.Context, pilots []*types.Pilot) error
}

// Store holds the three roster tables. Slices preserve load order so that
// full-table scans are deterministic; maps index by identifier.
type Store struct {
	pilots   []*types.Pilot
	drones   []*types.Drone
	missions []*types.Mission

	pilotIdx   map[string]int
	droneIdx   map[string]int
	missionIdx map[string]int

	syncers []Syncer
	warn    io.Writer
}

// New builds a store from loaded records, rejecting duplicate identifiers
// within any table.
func New(pilots []*types.Pilot, drones []*types.Drone, missions []*types.Mission) (*Store, error) {
	s := &Store{
		pilots:     pilots,
		drones:     drones,
		missions:   missions,
		pilotIdx:   make(map[string]int, len(pilots)),
		droneIdx:   make(map[string]int, len(drones)),
		missionIdx: make(map[string]int, len(missions)),
		warn:       io.Discard,
	}

	for i, p := range pilots {
		if _, dup := s.pilotIdx[p.ID]; dup {
			return nil, fmt.Errorf("duplicate pilot ID %q", p.ID)
		}
		s.pilotIdx[p.ID] = i
	}
	for i, d := range drones {
		if _, dup := s.droneIdx[d.ID]; dup {
			return nil, fmt.Errorf("duplicate drone ID %q", d.ID)
		}
		s.droneIdx[d.ID] = i
	}
	for i, m := range missions {
		if _, dup := s.missionIdx[m.ProjectID]; dup {
			return nil, fmt.Errorf("duplicate project ID %q", m.ProjectID)
		}
		s.missionIdx[m.ProjectID] = i
	}

	return s, nil
}

// AddSyncer registers a write-back target invoked after pilot mutations.
func (s *Store) AddSyncer(sync Syncer) {
	s.syncers = append(s.syncers, sync)
}

// SetWarnWriter directs sync-failure warnings to w (default: discarded).
func (s *Store) SetWarnWriter(w io.Writer) {
	s.warn = w
}

// PilotByID returns the pilot with the given identifier.
func (s *Store) PilotByID(id string) (*types.Pilot, bool) {
	i, ok := s.pilotIdx[id]
	if !ok {
		return nil, false
	}
	return s.pilots[i], true
}

// DroneByID returns the drone with the given identifier.
func (s *Store) DroneByID(id string) (*types.Drone, bool) {
	i, ok := s.droneIdx[id]
	if !ok {
		return nil, false
	}
	return s.drones[i], true
}

// MissionByID returns the mission with the given project identifier.
func (s *Store) MissionByID(id string) (*types.Mission, bool) {
	i, ok := s.missionIdx[id]
	if !ok {
		return nil, false
	}
	return s.missions[i], true
}

// Pilots returns the pilot table in load order. Callers must not reorder it.
func (s *Store) Pilots() []*types.Pilot { return s.pilots }

// Drones returns the drone table in load order.
func (s *Store) Drones() []*types.Drone { return s.drones }

// Missions returns the mission table in load order.
func (s *Store) Missions() []*types.Mission { return s.missions }

// UpdatePilotStatus sets the status of the identified pilot and pushes the
// pilot table to every registered syncer. The in-memory mutation is applied
// first; a failed write-back produces a warning, not an error.
func (s *Store) UpdatePilotStatus(ctx context.Context, id string, status types.PilotStatus) error {
	p, ok := s.PilotByID(id)
	if !ok {
		return fmt.Errorf("pilot %s: %w", id, ErrNotFound)
	}

	p.Status = status
	s.syncPilots(ctx)
	return nil
}

func (s *Store) syncPilots(ctx context.Context) {
	for _, sync := range s.syncers {
		if err := sync.SyncPilots(ctx, s.pilots); err != nil {
			fmt.Fprintf(s.warn, "warning: %s sync failed: %v\n", sync.Name(), err)
		}
	}
}
