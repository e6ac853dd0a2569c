// Copyright Skylark Drones Pvt. Ltd., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skylark/droneops/internal/reassign"
)

var reassignCmd = &cobra.Command{
	Use:   "reassign PROJECT_ID",
	Short: "Propose a pilot to preempt for an urgent mission",
	Long: `Reassign scans pilots currently assigned to Standard-priority missions
and proposes the first one who could be pulled onto the given urgent
mission. The command only recommends; it never changes any assignment.

Requests for non-urgent missions always fail: preemption is reserved for
urgent work.`,
	Args: cobra.ExactArgs(1),
	RunE: runReassign,
}

func runReassign(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, db, err := loadRoster(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	result := reassign.Advise(store, args[0])

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if result.Status == reassign.StatusSuccess {
		fmt.Printf("%s %s\n", color.New(color.FgGreen).Sprint("→"), result.Recommendation)
		return nil
	}

	fmt.Printf("%s %s\n", color.New(color.FgYellow).Sprint("Failed:"), result.Reason)
	return nil
}

func init() {
	reassignCmd.Flags().Bool("json", false, "output the outcome as JSON")

	rootCmd.AddCommand(reassignCmd)
}
