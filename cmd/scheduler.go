package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-co-op/gocron/v2"
	"github.com/spf13/cobra"
	"github.com/violintec/common-login/internal/user"
	userpg "github.com/violintec/common-login/internal/user/postgres"
	"github.com/violintec/common-login/pkg/logger"
)

var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Run the background job scheduler",
	Long:  `Run lifecycle reconciliation on a fixed interval until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		runScheduler()
	},
}

func runScheduler() {
	cfg, err := loadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	lg := logger.LoggerWrapper()

	_, gormDB, err := initDB(cfg.Database)
	if err != nil {
		log.Fatalf("failed to init db: %v", err)
	}

	svc := user.NewService(userpg.NewUserRepository(gormDB), lg)

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("failed to create scheduler: %v", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(cfg.Scheduler.ReconcileInterval),
		gocron.NewTask(func() {
			deactivated, err := svc.ReconcileLifecycle()
			if err != nil {
				lg.Error("scheduled reconciliation failed", "error", err)
				return
			}
			lg.Info("scheduled reconciliation complete", "deactivated", deactivated)
		}),
		gocron.WithName("lifecycle-reconcile"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Fatalf("failed to register reconcile job: %v", err)
	}

	scheduler.Start()
	lg.Info("scheduler started", "interval", cfg.Scheduler.ReconcileInterval)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	lg.Info("received signal, stopping scheduler", "signal", sig)

	if err := scheduler.Shutdown(); err != nil {
		lg.Error("scheduler shutdown error", "error", err)
	}
}
