package main

import (
	"context"
	"fmt"
	"os"

	"lexicon/internal/app/bootstrap"
	"lexicon/internal/platform/config"
	"lexicon/internal/platform/logging"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "lexicon-seed",
		Usage: "Load default languages and bootstrap an administrator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML configuration file",
				Sources: cli.EnvVars("LEXICON_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:  "admin-username",
				Usage: "Administrator username (overrides SEED_ADMIN_USERNAME)",
			},
			&cli.StringFlag{
				Name:  "admin-email",
				Usage: "Administrator email (overrides SEED_ADMIN_EMAIL)",
			},
			&cli.StringFlag{
				Name:  "admin-password",
				Usage: "Administrator password (overrides SEED_ADMIN_PASSWORD)",
			},
		},
		Action: runSeed,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
}

func runSeed(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String("config"); path != "" {
		if err := os.Setenv("LEXICON_CONFIG_FILE", path); err != nil {
			return err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyAdminFlags(&cfg.SeedAdmin, cmd)

	logger := logging.New(os.Stderr, cfg.LogLevel).With("service", cfg.ServiceName, "process", "seed")
	rt, err := bootstrap.BuildRuntime(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := rt.Close(); err != nil {
			logger.Error("seed close failed", "error", err)
		}
	}()

	report, err := bootstrap.NewSeeder(rt.Modules, cfg.SeedAdmin, logger).Run(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.Root().Writer, "languages created: %d\n", report.LanguagesCreated)
	switch {
	case report.AdminSkipped:
		fmt.Fprintln(cmd.Root().Writer, "admin: not configured")
	case report.AdminCreated:
		fmt.Fprintln(cmd.Root().Writer, "admin: created")
	default:
		fmt.Fprintln(cmd.Root().Writer, "admin: already present")
	}
	return nil
}

func applyAdminFlags(seed *config.AdminSeed, cmd *cli.Command) {
	if value := cmd.String("admin-username"); value != "" {
		seed.Username = value
	}
	if value := cmd.String("admin-email"); value != "" {
		seed.Email = value
	}
	if value := cmd.String("admin-password"); value != "" {
		seed.Password = value
	}
}
