package client

import (
	"context"
	"fmt"

	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/logger"
	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/service"
	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/tui"
)

// App is the interactive application: the account/session store behind a
// terminal UI.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run seeds the default accounts on first start, restores a persisted
// session if one exists (an active session survives restarts), and hands
// control to the UI.
func (a *App) Run() error {
	ctx := context.Background()

	if err := a.services.AuthService.EnsureSeeded(ctx); err != nil {
		return fmt.Errorf("seed default accounts: %w", err)
	}

	startPage := "menu"
	authenticated, err := a.services.AuthService.IsAuthenticated(ctx)
	if err != nil {
		// A corrupt session record should not brick the app; start at the
		// menu where a reset is available.
		a.logger.Err(err).Msg("error restoring session")
	} else if authenticated {
		session, _ := a.services.AuthService.CurrentSession(ctx)
		a.logger.Info().Str("email", session.Email).Msg("active session found")
		startPage = "home"
	}

	return a.tui.Run(ctx, startPage)
}
