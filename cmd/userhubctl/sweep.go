package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/davidosoro/userhub/pkg/config"
	"github.com/davidosoro/userhub/pkg/db"
	gormstore "github.com/davidosoro/userhub/pkg/server/store/gorm"
	"github.com/davidosoro/userhub/pkg/sweep"
)

// sweepCmd represents the sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run a one-shot retention sweep",
	Long: `Run a one-shot retention sweep.

Removes user records older than the configured retention age
(retention_age, default 7 days). The running server performs the same
sweep on its own interval; this command is for operators and cron jobs.

Example:
  userhubctl sweep`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()

		gormDB, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		sweeper := sweep.New(gormstore.NewUsersStore(gormDB), cfg.SweepEvery(), cfg.RetentionMaxAge())
		removed, err := sweeper.RunOnce()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Sweep failed:", err)
			os.Exit(1)
		}

		fmt.Printf("Removed %d record(s)\n", removed)
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}
