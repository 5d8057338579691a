// Command sessionsctl is an interactive shell for the session service:
// browse scheduled sessions, join or leave them, and (for admins) manage
// them. Session state lives only for the lifetime of the process.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/zenstudio/sessions-client/internal/core/service"
	"github.com/zenstudio/sessions-client/internal/infrastructure/api"
	"github.com/zenstudio/sessions-client/internal/infrastructure/config"
	"github.com/zenstudio/sessions-client/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	state := service.NewSessionState()
	client, err := api.NewClient(cfg.API.BaseURL, state, cfg.API.Timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("building api client failed")
	}

	app := newApp(appDeps{
		state:       state,
		guard:       service.NewAccessGuard(state),
		coordinator: service.NewParticipationCoordinator(api.NewSessionClient(client), log),
		identity:    api.NewIdentityClient(client),
		sessions:    api.NewSessionClient(client),
		users:       api.NewUserClient(client),
		teachers:    api.NewTeacherClient(client),
		logger:      log,
		out:         os.Stdout,
	})

	app.run(os.Stdin)
}
