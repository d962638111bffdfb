package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/violintec/common-login/internal/user"
	userpg "github.com/violintec/common-login/internal/user/postgres"
	"github.com/violintec/common-login/pkg/logger"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Deactivate users whose left date has passed",
	Long:  `Run one lifecycle reconciliation pass: scan for active users past their left date and deactivate them.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		logger.Init(cfg.Logging.Level, cfg.Logging.Format)

		_, gormDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		svc := user.NewService(userpg.NewUserRepository(gormDB), logger.LoggerWrapper())
		deactivated, err := svc.ReconcileLifecycle()
		if err != nil {
			log.Fatalf("reconciliation failed: %v", err)
		}

		fmt.Printf("Reconciliation complete: %d user(s) deactivated\n", deactivated)
	},
}
