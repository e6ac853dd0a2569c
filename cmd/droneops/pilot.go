// Copyright Skylark Drones Pvt. Ltd., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skylark/droneops/internal/roster"
	"github.com/skylark/droneops/pkg/types"
)

var pilotCmd = &cobra.Command{
	Use:   "pilot",
	Short: "Inspect and update the pilot roster",
}

var pilotStatusCmd = &cobra.Command{
	Use:   "status PILOT_ID NEW_STATUS",
	Short: "Update a pilot's status and sync it to the roster stores",
	Long: `Status sets the pilot's duty state (e.g. "Available", "Assigned",
"On Leave") in the roster and writes the change back to the roster database
and, when configured, the spreadsheet bridge. A failed write-back is
reported as a warning; the local update stands either way.`,
	Args: cobra.ExactArgs(2),
	RunE: runPilotStatus,
}

func runPilotStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, db, err := loadRoster(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	pilotID, newStatus := args[0], args[1]
	if err := store.UpdatePilotStatus(ctx, pilotID, types.PilotStatus(newStatus)); err != nil {
		if errors.Is(err, roster.ErrNotFound) {
			return fmt.Errorf("pilot %s not found", pilotID)
		}
		return err
	}

	fmt.Printf("Updated pilot %s status to %s.\n", pilotID, newStatus)
	return nil
}

var pilotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the pilot roster",
	RunE:  runPilotList,
}

func runPilotList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, db, err := loadRoster(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Printf("%-6s  %-20s  %-12s  %-14s  %10s  %s\n",
		"ID", "Name", "Status", "Location", "Rate (₹)", "Assignment")
	fmt.Println(strings.Repeat("-", 80))

	for _, p := range store.Pilots() {
		assignment := p.CurrentAssignment
		if assignment == "" {
			assignment = "-"
		}
		fmt.Printf("%-6s  %-20s  %-12s  %-14s  %10.0f  %s\n",
			p.ID, truncate(p.Name, 20), statusLabel(p.Status), truncate(p.Location, 14),
			p.DailyRate, assignment)
	}

	fmt.Printf("\n%d pilots\n", len(store.Pilots()))
	return nil
}

func statusLabel(s types.PilotStatus) string {
	switch s {
	case types.StatusAvailable:
		return color.New(color.FgGreen).Sprint(string(s))
	case types.StatusAssigned:
		return color.New(color.FgYellow).Sprint(string(s))
	default:
		return color.New(color.FgRed).Sprint(string(s))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func init() {
	pilotCmd.AddCommand(pilotStatusCmd)
	pilotCmd.AddCommand(pilotListCmd)

	rootCmd.AddCommand(pilotCmd)
}
