package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/logger"
	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/service"
)

var ErrUserQuit = errors.New("user quit the program")

// TUI owns the terminal user interface of the demo. It is pure UI plumbing:
// it reads form input, invokes the store operations, and renders the
// structured results; every rule lives below it in the service layer.
type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// Run starts the interface at startPage ("menu" for an anonymous visitor,
// "home" when a session was restored) and blocks until the user quits.
func (t *TUI) Run(ctx context.Context, startPage string) error {
	auth := t.services.AuthService

	pages := map[string]tea.Model{
		"menu":     NewMenuModel(ctx, auth),
		"login":    NewLoginModel(ctx, auth),
		"register": NewRegisterModel(ctx, auth),
		"home":     NewHomeModel(ctx, auth),
		"accounts": NewAccountsModel(ctx, auth),
	}

	root := NewRootModel(pages, startPage)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	if _, ok := finalModel.(RootModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
