package app

import (
	"context"
	"net/http"

	"github.com/anshy0304/veggiefinder/internal/pkg/clock"
	"github.com/anshy0304/veggiefinder/internal/pkg/config"
	"github.com/anshy0304/veggiefinder/internal/pkg/goroutine"
	"github.com/anshy0304/veggiefinder/internal/pkg/hash"
	"github.com/anshy0304/veggiefinder/internal/pkg/idempotency"
	"github.com/anshy0304/veggiefinder/internal/pkg/instrument"
	"github.com/anshy0304/veggiefinder/internal/pkg/jwt"
	"github.com/anshy0304/veggiefinder/internal/pkg/mail"
	"github.com/anshy0304/veggiefinder/internal/pkg/messaging"
	"github.com/anshy0304/veggiefinder/internal/pkg/otp"
	"github.com/anshy0304/veggiefinder/internal/pkg/router"
	"github.com/anshy0304/veggiefinder/internal/pkg/storage"
	"github.com/anshy0304/veggiefinder/internal/pkg/uid"
	"github.com/anshy0304/veggiefinder/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App owns every shared dependency and drives startup and shutdown.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	config config.Config
	ins    instrument.Instrumentation

	// stateless helpers
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	hasher    hash.Hash
	uid       uid.NumberID
	oid       uid.StringID
	uuid      uid.StringID
	otp       otp.Generator
	jwt       jwt.JWT

	// external connections
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	idemp     idempotency.Idempotency
	mail      mail.Mail
	messaging messaging.Messaging
	storage   storage.Storage

	// http surface
	router     *router.Router
	httpServer *http.Server

	closers []closer
}

// closer is a named shutdown hook executed during Stop.
type closer struct {
	name string
	fn   func(context.Context) error
}

// New builds the full dependency graph. Any init step that fails logs
// and exits, the service cannot run partially wired.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initStorage()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
