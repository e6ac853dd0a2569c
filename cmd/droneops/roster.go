// Copyright Skylark Drones Pvt. Ltd., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/skylark/droneops/internal/roster"
	"github.com/skylark/droneops/internal/rosterdb"
	"github.com/skylark/droneops/pkg/types"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Import, inspect, and export the roster tables",
	Long: `Roster manages the three operational tables: the pilot roster, the
drone fleet, and the mission list. Import seeds the local database from the
operations CSV exports; show prints the tables; export writes a snapshot
for downstream tooling.`,
}

// --- import subcommand ---

var rosterImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Seed the roster database from the operations CSV files",
	RunE:  runRosterImport,
}

func runRosterImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	pilotsCSV := flagOrConfig(cmd, "pilots", "roster.pilots_csv")
	dronesCSV := flagOrConfig(cmd, "drones", "roster.drones_csv")
	missionsCSV := flagOrConfig(cmd, "missions", "roster.missions_csv")

	store, err := roster.LoadCSV(pilotsCSV, dronesCSV, missionsCSV)
	if err != nil {
		return err
	}

	db, err := rosterdb.Open(dbPath())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ImportRoster(ctx, store); err != nil {
		return err
	}

	fmt.Printf("Imported %d pilots, %d drones, %d missions into %s\n",
		len(store.Pilots()), len(store.Drones()), len(store.Missions()), dbPath())
	return nil
}

func flagOrConfig(cmd *cobra.Command, flag, key string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return viper.GetString(key)
}

// --- show subcommand ---

var rosterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the drone fleet and mission tables",
	RunE:  runRosterShow,
}

func runRosterShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, db, err := loadRoster(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Printf("%-6s  %-18s  %-26s  %s\n", "ID", "Model", "Weather resistance", "Maintenance due")
	fmt.Println(strings.Repeat("-", 70))
	for _, d := range store.Drones() {
		fmt.Printf("%-6s  %-18s  %-26s  %s\n",
			d.ID, truncate(d.Model, 18), truncate(d.WeatherResistance, 26),
			d.MaintenanceDue.Format("2006-01-02"))
	}

	fmt.Printf("\n%-6s  %-22s  %-14s  %-10s  %-10s  %12s  %-8s  %s\n",
		"ID", "Required skills", "Location", "Start", "End", "Budget (₹)", "Priority", "Forecast")
	fmt.Println(strings.Repeat("-", 110))
	for _, m := range store.Missions() {
		fmt.Printf("%-6s  %-22s  %-14s  %-10s  %-10s  %12.0f  %-8s  %s\n",
			m.ProjectID, truncate(strings.Join(m.RequiredSkills, ","), 22),
			truncate(m.Location, 14),
			m.StartDate.Format("2006-01-02"), m.EndDate.Format("2006-01-02"),
			m.Budget, m.Priority, m.WeatherForecast)
	}

	fmt.Printf("\n%d drones, %d missions (see \"droneops pilot list\" for the pilot roster)\n",
		len(store.Drones()), len(store.Missions()))
	return nil
}

// --- export subcommand ---

// rosterSnapshot is the export file layout.
type rosterSnapshot struct {
	Pilots   []*types.Pilot   `json:"pilots" yaml:"pilots"`
	Drones   []*types.Drone   `json:"drones" yaml:"drones"`
	Missions []*types.Mission `json:"missions" yaml:"missions"`
}

var rosterExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the roster tables to a YAML or JSON snapshot",
	RunE:  runRosterExport,
}

func runRosterExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, db, err := loadRoster(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	snapshot := rosterSnapshot{
		Pilots:   store.Pilots(),
		Drones:   store.Drones(),
		Missions: store.Missions(),
	}

	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	var data []byte
	switch format {
	case "yaml", "":
		if out == "" {
			out = "roster-export.yaml"
		}
		data, err = yaml.Marshal(snapshot)
	case "json":
		if out == "" {
			out = "roster-export.json"
		}
		data, err = json.MarshalIndent(snapshot, "", "  ")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Exported roster to %s\n", out)
	return nil
}

func init() {
	rosterImportCmd.Flags().String("pilots", "", "pilot roster CSV (default from config)")
	rosterImportCmd.Flags().String("drones", "", "drone fleet CSV (default from config)")
	rosterImportCmd.Flags().String("missions", "", "missions CSV (default from config)")

	rosterExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	rosterExportCmd.Flags().String("out", "", "output path (default roster-export.yaml|json)")

	rosterCmd.AddCommand(rosterImportCmd)
	rosterCmd.AddCommand(rosterShowCmd)
	rosterCmd.AddCommand(rosterExportCmd)

	rootCmd.AddCommand(rosterCmd)
}
