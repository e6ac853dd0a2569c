// Copyright Skylark Drones Pvt. Ltd., 2026. All rights reserved.

// Package main is the entry point for the droneops CLI: a typed
// function-call surface over the roster store. Commands check assignment
// conflicts, propose urgent-mission preemptions, and update pilot status;
// all natural-language front-ends live outside this binary.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skylark/droneops/internal/roster"
	"github.com/skylark/droneops/internal/rosterdb"
	"github.com/skylark/droneops/internal/secrets"
	"github.com/skylark/droneops/internal/sheetsync"
	"github.com/skylark/droneops/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the droneops CLI.
var rootCmd = &cobra.Command{
	Use:   "droneops",
	Short: "Assignment checking and reassignment for drone field operations",
	Long: `droneops manages the pilot roster, drone fleet, and mission tables for
field operations. It validates proposed pilot/drone/mission assignments
against the scheduling rules, proposes preemption candidates for urgent
missions, and keeps pilot status in step with the external roster stores.

The roster lives in a local SQLite database seeded from the operations CSV
exports (see "droneops roster import"). Status updates are written back to
the database and, when configured, to the spreadsheet bridge.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./droneops.yaml or ~/.config/droneops/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "roster database path (default: droneops.db)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("droneops")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "droneops"))
		}
	}

	viper.SetDefault("store.db_path", "droneops.db")
	viper.SetDefault("roster.pilots_csv", filepath.Join("data", "pilot_roster.csv"))
	viper.SetDefault("roster.drones_csv", filepath.Join("data", "drone_fleet.csv"))
	viper.SetDefault("roster.missions_csv", filepath.Join("data", "missions.csv"))
	viper.SetDefault("sync.timeout", 15*time.Second)
	viper.SetDefault("sync.user_agent", "droneops/0.1")
	viper.SetDefault("sync.max_retries", 5)

	viper.SetEnvPrefix("DRONEOPS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// dbPath resolves the roster database path from the --db flag or config.
func dbPath() string {
	if p, _ := rootCmd.PersistentFlags().GetString("db"); p != "" {
		return p
	}
	return viper.GetString("store.db_path")
}

// syncConfig assembles the spreadsheet bridge settings from config.
func syncConfig() types.SheetSyncConfig {
	return types.SheetSyncConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("sync.timeout"),
			UserAgent: viper.GetString("sync.user_agent"),
		},
		Endpoint:    viper.GetString("sync.endpoint"),
		Spreadsheet: viper.GetString("sync.spreadsheet"),
		MaxRetries:  viper.GetInt("sync.max_retries"),
	}
}

// loadRoster opens the roster database, rebuilds the in-memory store, and
// registers the write-back syncers: the database always, the spreadsheet
// bridge when an endpoint is configured. The caller closes the returned DB.
func loadRoster(ctx context.Context) (*roster.Store, *rosterdb.DB, error) {
	db, err := rosterdb.Open(dbPath())
	if err != nil {
		return nil, nil, err
	}

	populated, err := db.IsPopulated()
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	if !populated {
		db.Close()
		return nil, nil, fmt.Errorf("roster database %s is empty: run \"droneops roster import\" first", dbPath())
	}

	store, err := db.LoadRoster(ctx)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	store.SetWarnWriter(os.Stderr)
	store.AddSyncer(db)
	if cfg := syncConfig(); cfg.Endpoint != "" {
		store.AddSyncer(sheetsync.NewClient(cfg, loadedSecrets[secrets.SheetSyncToken]))
	}

	return store, db, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
