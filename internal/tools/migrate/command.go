package migrate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/sandeepkv93/volunteer-management-backend/internal/config"
	"github.com/sandeepkv93/volunteer-management-backend/internal/database"
	"github.com/sandeepkv93/volunteer-management-backend/internal/observability"
	"github.com/sandeepkv93/volunteer-management-backend/internal/tools/common"
	"github.com/sandeepkv93/volunteer-management-backend/internal/tools/ui"
)

const toolName = "migrate"

type options struct {
	envFile string
	timeout time.Duration
	ci      bool
	open    func(envFile string) (*config.Config, *gorm.DB, func(), error)
}

type action func(ctx context.Context, cfg *config.Config, db *gorm.DB) ([]string, error)

func NewRootCommand() *cobra.Command {
	opts := &options{open: common.OpenDatabase}
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tooling",
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to env file")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "operation timeout")
	cmd.PersistentFlags().BoolVar(&opts.ci, "ci", false, "non-interactive machine-readable output")

	cmd.AddCommand(
		newSubcommand(opts, "up", "Apply schema migrations", upAction),
		newSubcommand(opts, "status", "Check database connectivity and schema", statusAction),
		newSubcommand(opts, "plan", "Show migration plan (dry-run)", planAction),
		newSeedCommand(opts),
	)
	return cmd
}

func newSubcommand(opts *options, use, short string, fn action) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := run(opts, use, fn)
			common.Finish(opts.ci, toolName+" "+use, details, err)
			return nil
		},
	}
}

func newSeedCommand(opts *options) *cobra.Command {
	var userEmail string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the default pricing catalog and optional demo activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := run(opts, "seed", func(ctx context.Context, _ *config.Config, db *gorm.DB) ([]string, error) {
				return seedAction(ctx, db, userEmail)
			})
			common.Finish(opts.ci, toolName+" seed", details, err)
			return nil
		},
	}
	cmd.Flags().StringVar(&userEmail, "user-email", "", "attach demo notifications and volunteer history to this account")
	return cmd
}

func upAction(_ context.Context, cfg *config.Config, db *gorm.DB) ([]string, error) {
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return []string{
		"schema migration applied",
		"tables: " + strings.Join(database.TableNames(db), ", "),
		"service: " + cfg.OTELServiceName,
	}, nil
}

func statusAction(ctx context.Context, cfg *config.Config, db *gorm.DB) ([]string, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	details := []string{"database reachable", "service: " + cfg.OTELServiceName}
	missing := 0
	for _, name := range database.TableNames(db) {
		if db.Migrator().HasTable(name) {
			details = append(details, "present: "+name)
			continue
		}
		missing++
		details = append(details, "missing: "+name)
	}
	if missing > 0 {
		details = append(details, fmt.Sprintf("%d table(s) pending, run migrate up", missing))
	}
	return details, nil
}

func planAction(ctx context.Context, _ *config.Config, db *gorm.DB) ([]string, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return []string{
		"would apply AutoMigrate for domain models",
		strings.Join(database.TableNames(db), ", "),
		"no mutation executed in plan mode",
	}, nil
}

func seedAction(ctx context.Context, db *gorm.DB, userEmail string) ([]string, error) {
	report, err := database.SeedSampleData(db.WithContext(ctx), userEmail)
	if err != nil {
		return nil, err
	}
	if report.Noop {
		return []string{"sample data already present"}, nil
	}
	return []string{
		fmt.Sprintf("pricing entries created: %d", report.CreatedPricing),
		fmt.Sprintf("volunteer history created: %d", report.CreatedHistory),
		fmt.Sprintf("notifications created: %d", report.CreatedNotifications),
	}, nil
}

// run opens the database, runs fn and records the command outcome. In CI
// mode it runs inline; otherwise behind the TUI spinner.
func run(opts *options, command string, fn action) ([]string, error) {
	exec := func(ctx context.Context) ([]string, error) {
		start := time.Now()
		cfg, db, closeDB, err := opts.open(opts.envFile)
		if err != nil {
			return nil, err
		}
		defer closeDB()
		flush := common.StartToolMetrics(ctx, cfg)
		defer flush()

		details, err := fn(ctx, cfg, db)
		status := "success"
		if err != nil {
			status = "error"
		}
		observability.RecordToolCommandRun(ctx, toolName, command, status)
		observability.RecordToolCommandDuration(ctx, toolName, command, status, time.Since(start))
		return details, err
	}
	if opts.ci {
		ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
		defer cancel()
		return exec(ctx)
	}
	return ui.Run(toolName+" "+command, opts.timeout, exec)
}
