package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-onboarding/internal/app"
	"go-onboarding/internal/config"
	"go-onboarding/internal/shared/apperror"
	"go-onboarding/internal/shared/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	outputFormat string
	pruneDays    int

	adminName     string
	adminEmail    string
	adminPassword string

	rootCmd = &cobra.Command{
		Use:           "onboardctl",
		Short:         "Maintenance commands for the onboarding platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withInfra(cmd.Context(), false, func(_ context.Context, infra *app.Infra) error {
				return app.Migrate(infra)
			})
		},
	}

	createAdminCmd = &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withInfra(cmd.Context(), false, func(ctx context.Context, infra *app.Infra) error {
				u, err := app.CreateAdmin(ctx, infra, app.AdminAccount{
					Name:     adminName,
					Email:    adminEmail,
					Password: adminPassword,
				})
				if err != nil {
					return err
				}
				return printResult(map[string]string{
					"id":            u.ID.String(),
					"email":         u.Email,
					"employee_code": u.EmployeeCode,
				})
			})
		},
	}

	sweepOverdueCmd = &cobra.Command{
		Use:   "sweep-overdue",
		Short: "Mark unfinished tasks past their due date as overdue",
		RunE: runJob(func(ctx context.Context, jobs *app.Jobs) (any, error) {
			return jobs.MarkOverdue(ctx)
		}),
	}

	sendRemindersCmd = &cobra.Command{
		Use:   "send-reminders",
		Short: "Notify and email employees about their overdue tasks",
		RunE: runJob(func(ctx context.Context, jobs *app.Jobs) (any, error) {
			return jobs.SendReminders(ctx)
		}),
	}

	pruneActivityCmd = &cobra.Command{
		Use:   "prune-activity",
		Short: "Delete activity log entries older than the retention window",
		RunE: runJob(func(ctx context.Context, jobs *app.Jobs) (any, error) {
			return jobs.PruneActivity(ctx, pruneDays)
		}),
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json or yaml)")

	createAdminCmd.Flags().StringVar(&adminName, "name", "Administrator", "Display name")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Login email")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Initial password (min 8 characters)")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")

	pruneActivityCmd.Flags().IntVar(&pruneDays, "older-than-days", 0, "Retention in days (0 uses the default)")

	rootCmd.AddCommand(migrateCmd, createAdminCmd, sweepOverdueCmd, sendRemindersCmd, pruneActivityCmd)
}

// withInfra memuat config, membuka koneksi, lalu menjalankan fn.
func withInfra(ctx context.Context, withRedis bool, fn func(context.Context, *app.Infra) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		return err
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	infra, err := app.Connect(cfg, log, withRedis)
	if err != nil {
		return err
	}
	defer infra.Close()

	return fn(ctx, infra)
}

func runJob(job func(context.Context, *app.Jobs) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return withInfra(cmd.Context(), true, func(ctx context.Context, infra *app.Infra) error {
			jobs, err := app.NewJobs(infra)
			if err != nil {
				return err
			}
			result, err := job(ctx, jobs)
			if err != nil {
				return err
			}
			return printResult(result)
		})
	}
}

func printResult(v any) error {
	var (
		out []byte
		err error
	)
	switch outputFormat {
	case "json":
		out, err = json.MarshalIndent(v, "", "  ")
	case "yaml":
		out, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	_ = godotenv.Load()
	apperror.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
