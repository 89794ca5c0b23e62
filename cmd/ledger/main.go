// Command ledger exports stored submissions in the plain-text credentials
// ledger format: five labeled lines per submission followed by a line of
// forty '=' characters. Passwords are masked unless --reveal is given.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/ericfisherdev/deploydrop/internal/adapter/driven/ledger"
	"github.com/ericfisherdev/deploydrop/internal/adapter/driven/secret"
	sqliteadapter "github.com/ericfisherdev/deploydrop/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/deploydrop/internal/application"
	"github.com/ericfisherdev/deploydrop/internal/config"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		slog.Error("ledger export failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := pflag.NewFlagSet("ledger", pflag.ContinueOnError)
	dbPath := fs.String("db", cfg.DBPath, "submission database path")
	out := fs.StringP("out", "o", ledger.DefaultPath, `ledger file to write, "-" for stdout`)
	reveal := fs.Bool("reveal", false, "decrypt passwords (requires DEPLOYDROP_SECRET_KEY)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := sqliteadapter.NewDB(ctx, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}

	sealer, err := secret.NewAESGCMSealer(cfg.SecretKey)
	if err != nil {
		return err
	}
	svc := application.NewSubmissionService(sqliteadapter.NewSubmissionRepo(db), sealer)

	entries, err := svc.Ledger(ctx, *reveal)
	if err != nil {
		return err
	}

	if *out == "-" {
		return ledger.Write(stdout, entries)
	}
	if err := ledger.WriteFile(*out, entries); err != nil {
		return err
	}
	slog.Info("ledger written", "path", *out, "submissions", len(entries), "revealed", *reveal)
	return nil
}
