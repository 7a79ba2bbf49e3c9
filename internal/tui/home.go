package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/service"
	"github.com/pulkit-sachdeva-dev/quantumTimes/models"
)

// HomeModel is the page shown while a session is active. It renders the
// session snapshot and a toggleable navigation menu: "m" opens it, esc or
// navigating away closes it.
type HomeModel struct {
	ctx  context.Context
	auth service.AuthService

	session models.Session
	loaded  bool

	menuOpen  bool
	menuIdx   int
	menuItems []string

	status string
	errMsg string
}

func NewHomeModel(ctx context.Context, auth service.AuthService) *HomeModel {
	return &HomeModel{
		ctx:  ctx,
		auth: auth,
	}
}

// Init implements [tea.Model]. Reloads the persisted session so the page is
// correct both after a fresh login and after a restart with a restored
// session.
func (m *HomeModel) Init() tea.Cmd {
	m.menuOpen = false
	m.menuIdx = 0
	return m.cmdLoadSession()
}

// Update implements [tea.Model]. Handled messages:
//   - sessionLoadedMsg  — stores the session snapshot; with no active
//     session the page gives way to the welcome menu.
//   - AuthSuccessNotice — shows the transient status line.
//   - logoutDoneMsg     — navigates back to the welcome menu.
//   - m                 — toggles the navigation menu.
//   - esc               — closes the navigation menu.
//   - up/down/enter     — navigate and select within the open menu.
func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionLoadedMsg:
		if msg.err != nil {
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		}
		m.session = msg.session
		m.loaded = true
		m.menuItems = []string{"Home", "Logout"}
		if m.session.Role == models.RoleAdmin {
			m.menuItems = []string{"Home", "Accounts", "Logout"}
		}
		return m, nil

	case AuthSuccessNotice:
		m.status = msg.Message
		return m, nil

	case logoutDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeAuthError(msg.err)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if !m.menuOpen {
		switch {
		case key.Matches(keyMsg, keys.menu):
			m.menuOpen = true
			m.menuIdx = 0
		case key.Matches(keyMsg, keys.quit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.menuOpen = false
	case key.Matches(keyMsg, keys.up):
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menuIdx < len(m.menuItems)-1 {
			m.menuIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.menuOpen = false
		switch m.menuItems[m.menuIdx] {
		case "Accounts":
			return m, func() tea.Msg { return NavigateTo{Page: "accounts"} }
		case "Logout":
			return m, m.cmdLogout()
		}
	}

	return m, nil
}

// View implements [tea.Model]. Renders the session snapshot table and, when
// open, the navigation menu box.
func (m *HomeModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(statusStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n\n")
	}

	if !m.loaded {
		b.WriteString("Loading session...\n")
		return renderPage("HOME", strings.TrimRight(b.String(), "\n"), "")
	}

	b.WriteString(fmt.Sprintf("Welcome, %s!\n\n", m.session.Name))
	b.WriteString("Field       │ Value\n")
	b.WriteString("────────────┼──────────────────────────────────────\n")
	b.WriteString(fmt.Sprintf("Email       │ %s\n", m.session.Email))
	b.WriteString(fmt.Sprintf("Username    │ %s\n", m.session.Username))
	b.WriteString(fmt.Sprintf("Role        │ %s\n", m.session.Role))
	b.WriteString(fmt.Sprintf("Login time  │ %s\n", m.session.LoginTime.Format("2006-01-02 15:04:05")))

	if m.menuOpen {
		var menu strings.Builder
		menu.WriteString("Navigation\n")
		for i, item := range m.menuItems {
			cursor := "  "
			if i == m.menuIdx {
				cursor = "> "
			}
			menu.WriteString(cursor + item + "\n")
		}
		b.WriteString("\n")
		b.WriteString(menuBoxStyle.Render(strings.TrimRight(menu.String(), "\n")))
	}

	hotKeys := "m: menu │ q: quit"
	if m.menuOpen {
		hotKeys = "esc: close menu │ ↑/↓: navigate │ enter: select"
	}
	return renderPage("HOME", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *HomeModel) cmdLoadSession() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.CurrentSession(ctx)
		return sessionLoadedMsg{session: session, err: err}
	}
}

func (m *HomeModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}
