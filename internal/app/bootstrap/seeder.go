package bootstrap

import (
	"context"
	"log/slog"

	identitycommands "lexicon/contexts/identity-access/identity-service/application/commands"
	"lexicon/internal/platform/config"
	"lexicon/internal/platform/httpserver"
)

// SeedReport summarises one seeding pass.
type SeedReport struct {
	LanguagesCreated int
	AdminCreated     bool
	AdminSkipped     bool
}

// Seeder loads the default languages and, when configured, an administrator.
// Both steps are idempotent.
type Seeder struct {
	modules httpserver.Modules
	admin   config.AdminSeed
	logger  *slog.Logger
}

func NewSeeder(modules httpserver.Modules, admin config.AdminSeed, logger *slog.Logger) Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return Seeder{modules: modules, admin: admin, logger: logger}
}

func (s Seeder) Run(ctx context.Context) (SeedReport, error) {
	var report SeedReport

	created, err := s.modules.Catalog.Handler.SeedLanguages.Execute(ctx)
	if err != nil {
		return report, err
	}
	report.LanguagesCreated = created

	if !s.admin.Configured() {
		report.AdminSkipped = true
	} else {
		result, err := s.modules.Identity.Handler.EnsureAdmin.Execute(ctx, identitycommands.EnsureAdminCommand{
			Username: s.admin.Username,
			Email:    s.admin.Email,
			Password: s.admin.Password,
		})
		if err != nil {
			return report, err
		}
		report.AdminCreated = result.Created
	}

	s.logger.Info("seed completed",
		"event", "bootstrap_seed_completed",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"languages_created", report.LanguagesCreated,
		"admin_created", report.AdminCreated,
		"admin_skipped", report.AdminSkipped,
	)
	return report, nil
}
