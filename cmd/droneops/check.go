// Copyright Skylark Drones Pvt. Ltd., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skylark/droneops/internal/conflict"
	"github.com/skylark/droneops/internal/roster"
)

var checkCmd = &cobra.Command{
	Use:   "check PILOT_ID DRONE_ID PROJECT_ID",
	Short: "Check a proposed assignment for scheduling conflicts",
	Long: `Check cross-references a pilot, a drone, and a mission against the
assignment rules: pilot availability, skill and certification coverage,
location match, budget, weather rating, and maintenance schedule. Every
violated rule is reported; an empty report means the assignment is safe.

If any of the three IDs does not resolve, no rules are evaluated and the
check reports invalid IDs.`,
	Args: cobra.ExactArgs(3),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, db, err := loadRoster(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	conflicts, err := conflict.CheckAssignment(store, args[0], args[1], args[2])
	if err != nil {
		if !errors.Is(err, roster.ErrNotFound) {
			return err
		}
		// A missing record makes every rule meaningless; report it as the
		// single conflict instead of failing the command.
		conflicts = []conflict.Conflict{{Rule: "lookup", Message: "Invalid IDs provided."}}
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		if conflicts == nil {
			conflicts = []conflict.Conflict{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(conflicts)
	}

	if len(conflicts) == 0 {
		fmt.Println(color.New(color.FgGreen).Sprint("No conflicts detected. Safe to assign."))
		return nil
	}

	for _, c := range conflicts {
		fmt.Printf("%s %s\n", color.New(color.FgRed).Sprint("✗"), c.Message)
	}
	fmt.Printf("\n%d conflict(s) found.\n", len(conflicts))
	return nil
}

func init() {
	checkCmd.Flags().Bool("json", false, "output conflicts as JSON")

	rootCmd.AddCommand(checkCmd)
}
