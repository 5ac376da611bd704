package authorization

import (
	"log/slog"

	httpadapter "lexicon/contexts/identity-access/authorization-service/adapters/http"
	"lexicon/contexts/identity-access/authorization-service/adapters/system"
	"lexicon/contexts/identity-access/authorization-service/application/queries"
	"lexicon/contexts/identity-access/authorization-service/ports"
)

// Module is the authorization-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Clock  ports.Clock
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	checkPermission := queries.CheckPermissionUseCase{
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			CheckPermission: checkPermission,
			Logger:          deps.Logger,
		},
	}
}

// NewInMemoryModule builds the module on the system clock. The policy table is
// static so there is no store to swap.
func NewInMemoryModule(logger *slog.Logger) Module {
	return NewModule(Dependencies{
		Clock:  system.SystemClock{},
		Logger: logger,
	})
}
