package main

import (
	"context"
	"time"

	"github.com/anshy0304/veggiefinder/internal/app"
)

// @title           VeggieFinder API
// @version         1.0
// @description     VeggieFinder provides authentication, vegetarian recipe and meal browsing APIs.
// @termsOfService  https://veggiefinder.app/terms
// @contact.name    Contact Support
// @contact.url     https://veggiefinder.app/contact
// @contact.email   support@veggiefinder.app
// @license.name    MIT
// @license.url     https://mit-license.org/
// @server          http://localhost:8080
// @server          https://localhost:8080
// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT.
func main() {
	application := app.New()

	// Start returns a channel that fires on SIGINT/SIGTERM.
	<-application.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx)
}
