package app

import (
	"log/slog"
	"os"

	"github.com/anshy0304/veggiefinder/internal/favorite"
	"github.com/anshy0304/veggiefinder/internal/identity"
	"github.com/anshy0304/veggiefinder/internal/notification"
	"github.com/anshy0304/veggiefinder/internal/recipe"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.identity.enabled") {
		if err := identity.New(identity.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Messaging:  a.messaging,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			UUID:       a.uuid,
			Hasher:     a.hasher,
			OTP:        a.otp,
			Clock:      a.clock,
			Validator:  a.validator,
			JWT:        a.jwt,
		}); err != nil {
			slog.Error("failed to init module identity", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.notification.enabled") {
		if err := notification.New(notification.Dependency{
			Ctx:         a.ctx,
			Messaging:   a.messaging,
			Idempotency: a.idemp,
			Config:      a.config,
			Instrument:  a.ins,
			UUID:        a.oid,
			Goroutine:   a.goroutine,
			Validator:   a.validator,
			Mail:        a.mail,
		}); err != nil {
			slog.Error("failed to init module notification", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.recipe.enabled") {
		if err := recipe.New(recipe.Dependency{
			DBConn:     a.dbConn,
			CacheConn:  a.cacheConn,
			Router:     a.router,
			Storage:    a.storage,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			UUID:       a.uuid,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module recipe", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.favorite.enabled") {
		if err := favorite.New(favorite.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Instrument: a.ins,
			UID:        a.uid,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module favorite", "error", err)
			os.Exit(1)
		}
	}
}
