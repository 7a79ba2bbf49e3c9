package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/service"
)

// MenuModel is the welcome page shown when no session is active. It offers
// login, registration, and the demo data reset.
type MenuModel struct {
	ctx  context.Context
	auth service.AuthService

	items  []string
	idx    int
	status string
	errMsg string
}

func NewMenuModel(ctx context.Context, auth service.AuthService) *MenuModel {
	return &MenuModel{
		ctx:   ctx,
		auth:  auth,
		items: []string{"Login", "Register", "Reset demo data"},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ResetSuccessNotice:
		m.status = "All data cleared and reset to defaults"
		return m, nil

	case resetDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeAuthError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "All data cleared and reset to defaults"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "q":
		return m, tea.Quit
	case "enter":
		m.status = ""
		switch m.idx {
		case 0:
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
		case 1:
			return m, func() tea.Msg { return NavigateTo{Page: "register"} }
		case 2:
			return m, m.cmdReset()
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(statusStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString("Choose an action:\n\n")
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, item))
	}

	return renderPage("WELCOME", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ q: quit")
}

func (m *MenuModel) cmdReset() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return resetDoneMsg{err: auth.ResetAllData(ctx)}
	}
}
