package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"dalarosa-be/internal/logger"
	"dalarosa-be/internal/user"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Swapped in tests.
var openDB = func(url string) (*sql.DB, error) {
	return sql.Open("postgres", url)
}

type rootOptions struct {
	DBURL string
	Dir   string
}

func main() {
	_ = godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		logger.L().Fatal("migrate failed", zap.Error(err))
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the storefront database schema and admin accounts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.DBURL, "db-url", os.Getenv("DB_URL"), "postgres connection URL (default $DB_URL)")
	cmd.PersistentFlags().StringVar(&opts.Dir, "dir", "./migrations", "directory holding *.sql migrations")

	cmd.AddCommand(newUpCommand(opts))
	cmd.AddCommand(newDownCommand(opts))
	cmd.AddCommand(newCreateAdminCommand(opts))
	return cmd
}

func newUpCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply every migration not yet recorded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(opts, func(db *sql.DB) error {
				return run(db, "up", opts.Dir, cmd.OutOrStdout())
			})
		},
	}
}

func newDownCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recently applied migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(opts, func(db *sql.DB) error {
				return run(db, "down", opts.Dir, cmd.OutOrStdout())
			})
		},
	}
}

func newCreateAdminCommand(opts *rootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("ADMIN_PASSWORD")
			}
			return withDB(opts, func(db *sql.DB) error {
				return createAdmin(cmd.Context(), db, email, password, cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password (default $ADMIN_PASSWORD)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func withDB(opts *rootOptions, fn func(db *sql.DB) error) error {
	if opts.DBURL == "" {
		return errors.New("DB_URL not set in environment")
	}

	db, err := openDB(opts.DBURL)
	if err != nil {
		return fmt.Errorf("failed to connect db: %w", err)
	}
	defer db.Close()

	return fn(db)
}

func createAdmin(ctx context.Context, db *sql.DB, email, password string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Signing is never needed here, so the service gets no secret.
	svc := user.NewService(user.NewRepository(db), "", 0)
	u, err := svc.CreateAdmin(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "✅ Admin created: %s (%s)\n", u.Email, u.ID)
	return nil
}

func run(db *sql.DB, mode, migrationsDir string, out io.Writer) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	// file names carry a sortable timestamp prefix
	slices.Sort(files)

	switch mode {
	case "up":
		return runMigrationsUp(db, files, out)
	case "down":
		return runMigrationsDown(db, files, out)
	default:
		return fmt.Errorf("unknown mode: %s (use 'up' or 'down')", mode)
	}
}

func runMigrationsUp(db *sql.DB, files []string, out io.Writer) error {
	for _, file := range files {
		version := filepath.Base(file)

		var exists bool
		err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if exists {
			fmt.Fprintf(out, "⏭ Skipping already applied migration: %s\n", version)
			continue
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		upSQL := extractMigrationPart(string(content), "Up")
		fmt.Fprintf(out, "🚀 Applying migration: %s\n", version)

		if _, err := db.Exec(upSQL); err != nil {
			return fmt.Errorf("❌ Migration failed (%s): %w", version, err)
		}

		_, err = db.Exec(`INSERT INTO schema_migrations (version) VALUES ($1)`, version)
		if err != nil {
			return fmt.Errorf("failed to record migration version: %w", err)
		}
	}
	fmt.Fprintln(out, "✅ All new migrations applied successfully.")
	return nil
}

func runMigrationsDown(db *sql.DB, files []string, out io.Writer) error {
	var lastVersion string
	err := db.QueryRow(`SELECT version FROM schema_migrations ORDER BY applied_at DESC, version DESC LIMIT 1`).Scan(&lastVersion)
	if errors.Is(err, sql.ErrNoRows) {
		fmt.Fprintln(out, "⚠️  No migrations to roll back.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get last applied migration: %w", err)
	}

	i := slices.IndexFunc(files, func(f string) bool { return filepath.Base(f) == lastVersion })
	if i < 0 {
		return fmt.Errorf("migration file not found for version: %s", lastVersion)
	}
	filePath := files[i]

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	downSQL := extractMigrationPart(string(content), "Down")
	fmt.Fprintf(out, "🧹 Rolling back migration: %s\n", lastVersion)

	if _, err := db.Exec(downSQL); err != nil {
		return fmt.Errorf("❌ Rollback failed (%s): %w", filePath, err)
	}

	_, err = db.Exec(`DELETE FROM schema_migrations WHERE version = $1`, lastVersion)
	if err != nil {
		return fmt.Errorf("failed to remove migration record: %w", err)
	}

	fmt.Fprintln(out, "✅ Rollback successful.")
	return nil
}

func extractMigrationPart(content string, section string) string {
	var part strings.Builder
	var inPart bool

	for line := range strings.Lines(content) {
		if strings.Contains(line, "-- +migrate "+section) {
			inPart = true
			continue
		}
		if inPart && strings.HasPrefix(line, "-- +migrate") {
			break
		}
		if inPart {
			part.WriteString(line)
		}
	}
	return part.String()
}
