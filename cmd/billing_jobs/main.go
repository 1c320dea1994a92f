package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	portssvc "github.com/finbooks/billing_backoffice/internal/core/ports/services"
	"github.com/finbooks/billing_backoffice/internal/core/services"
	"github.com/finbooks/billing_backoffice/internal/middleware"
	"github.com/finbooks/billing_backoffice/internal/platform/config"
	"github.com/finbooks/billing_backoffice/internal/repositories/database/pgsql"
	"github.com/finbooks/billing_backoffice/pkg/database"
	"github.com/spf13/cobra"
)

// dateFlag holds the --date value shared by all generation commands.
// Empty means today in UTC.
var dateFlag string

func main() {
	rootCmd := &cobra.Command{
		Use:   "billing_jobs",
		Short: "Scheduled billing jobs for the billing backoffice",
		Long:  "Runs the recurring billing generators that the API server does not trigger itself. Intended to be invoked daily from cron.",
	}

	rootCmd.PersistentFlags().StringVar(&dateFlag, "date", "", "Generation date in YYYY-MM-DD format (defaults to today in UTC)")

	rootCmd.AddCommand(newGenerateInvoicesCmd())
	rootCmd.AddCommand(newGenerateExpensesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newGenerateInvoicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-invoices",
		Short: "Generate invoices from due recurring invoice profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerator(cmd, "invoices", func(sc *portssvc.ServiceContainer) portssvc.InvoiceGeneratorSvc {
				return sc.InvoiceGenerator
			})
		},
	}
}

func newGenerateExpensesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-expenses",
		Short: "Generate expenses from due recurring expense profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerator(cmd, "expenses", func(sc *portssvc.ServiceContainer) portssvc.ExpenseGeneratorSvc {
				return sc.ExpenseGenerator
			})
		},
	}
}

// generatorSvc is the shape shared by both generators.
type generatorSvc interface {
	Run(ctx context.Context, today time.Time) (int, error)
}

func runGenerator[T generatorSvc](cmd *cobra.Command, kind string, pick func(*portssvc.ServiceContainer) T) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	today, err := resolveDate()
	if err != nil {
		return err
	}

	ctx := middleware.ContextWithLogger(cmd.Context(), logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize database pool: %w", err)
	}
	defer database.ClosePgxPool(dbPool)

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	logger.Info("Starting generation run", slog.String("kind", kind), slog.Time("date", today))

	count, err := pick(serviceContainer).Run(ctx, today)
	if err != nil {
		logger.Error("Generation run failed", slog.String("kind", kind), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Generation run complete", slog.String("kind", kind), slog.Int("generated", count))
	fmt.Printf("Generated %d %s for %s\n", count, kind, today.Format("2006-01-02"))
	return nil
}

// resolveDate parses the --date flag, defaulting to today at midnight UTC.
func resolveDate() (time.Time, error) {
	if dateFlag == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	today, err := time.Parse("2006-01-02", dateFlag)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q, expected YYYY-MM-DD: %w", dateFlag, err)
	}
	return today, nil
}
