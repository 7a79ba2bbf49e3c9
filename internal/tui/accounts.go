package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/service"
	"github.com/pulkit-sachdeva-dev/quantumTimes/models"
)

// AccountsModel is the admin page listing every registered account without
// passwords. "c" copies the selected email to the system clipboard.
type AccountsModel struct {
	ctx  context.Context
	auth service.AuthService

	summaries []models.AccountSummary
	idx       int
	loading   bool
	status    string
	errMsg    string
}

func NewAccountsModel(ctx context.Context, auth service.AuthService) *AccountsModel {
	return &AccountsModel{
		ctx:  ctx,
		auth: auth,
	}
}

func (m *AccountsModel) Init() tea.Cmd {
	m.loading = true
	m.status = ""
	m.errMsg = ""
	return m.cmdLoadAccounts()
}

func (m *AccountsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case accountsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeAuthError(msg.err)
			return m, nil
		}
		m.summaries = msg.summaries
		if m.idx >= len(m.summaries) {
			m.idx = 0
		}
		return m, nil

	case copiedMsg:
		m.status = "Email copied to clipboard"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: "home"} }
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.summaries)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.copy):
		if m.idx < len(m.summaries) {
			return m, m.cmdCopyEmail(m.summaries[m.idx].Email)
		}
	}

	return m, nil
}

func (m *AccountsModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(statusStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Loading accounts...\n")
	case len(m.summaries) == 0:
		b.WriteString("No registered accounts\n")
	default:
		b.WriteString(fmt.Sprintf("  %-30s │ %-15s │ %s\n", "Email", "Username", "Role"))
		b.WriteString("  " + strings.Repeat("─", 60) + "\n")
		for i, summary := range m.summaries {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-30s │ %-15s │ %s\n",
				cursor, fitText(summary.Email, 30), fitText(summary.Username, 15), summary.Role))
		}
	}

	return renderPage("ACCOUNTS", strings.TrimRight(b.String(), "\n"), "esc: back │ ↑/↓: navigate │ c: copy email")
}

func (m *AccountsModel) cmdLoadAccounts() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		summaries, err := auth.AccountSummaries(ctx)
		return accountsLoadedMsg{summaries: summaries, err: err}
	}
}

func (m *AccountsModel) cmdCopyEmail(email string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(email); err != nil {
			return accountsLoadedMsg{summaries: m.summaries}
		}
		return copiedMsg{}
	}
}
