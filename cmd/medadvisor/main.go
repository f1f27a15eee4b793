package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medadvisor/medadvisor/internal/advisor"
	"github.com/medadvisor/medadvisor/internal/config"
	"github.com/medadvisor/medadvisor/internal/domain/diagnosis"
	"github.com/medadvisor/medadvisor/internal/domain/encounter"
	"github.com/medadvisor/medadvisor/internal/domain/identity"
	"github.com/medadvisor/medadvisor/internal/platform/db"
	"github.com/medadvisor/medadvisor/internal/platform/prompt"
	"github.com/medadvisor/medadvisor/internal/platform/secrets"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "medadvisor",
		Short: "Student health-advisory assistant",
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(recordsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	var log zerolog.Logger
	if cfg.IsDev() {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	} else {
		log = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return log.With().Str("run_id", uuid.NewString()).Logger()
}

// openPool resolves the database credentials from the parameter store and
// verifies connectivity before handing back the pool.
func openPool(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*pgxpool.Pool, error) {
	provider, err := secrets.NewProvider(ctx, cfg.AWSRegion, cfg.SSMUsernameParam, cfg.SSMPasswordParam)
	if err != nil {
		return nil, fmt.Errorf("init parameter store client: %w", err)
	}
	creds, err := provider.DatabaseCredentials(ctx)
	if err != nil {
		return nil, err
	}
	dsn, err := cfg.DSN(creds.Username, creds.Password)
	if err != nil {
		return nil, err
	}

	pool, err := db.NewPool(ctx, dsn, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("open database pool: %w", err)
	}

	log.Info().Msg("testing database connection")
	if err := db.Check(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive advisor",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := newLogger(cfg)
			ctx := cmd.Context()

			httpClient := &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second}
			identityClient := identity.NewClient(cfg.PersonsAPIURL, cfg.VaccineAPIURL, httpClient)
			engineClient := diagnosis.NewClient(cfg.DiagnosisAPIURL, httpClient, log, cfg.TermsFailClosedEnabled())

			pool, err := openPool(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer pool.Close()

			records := encounter.NewService(encounter.NewRepo(pool), cfg.MaxSavedDiagnoses)
			ui := prompt.New(os.Stdout)

			app := advisor.New(
				ui,
				identityClient,
				advisor.EngineClient{Client: engineClient},
				records,
				os.Stdout,
				log,
			)
			return app.Run(ctx)
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := newLogger(cfg)
			ctx := cmd.Context()

			pool, err := openPool(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := newLogger(cfg)
			ctx := cmd.Context()

			pool, err := openPool(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}
