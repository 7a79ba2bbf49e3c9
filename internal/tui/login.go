package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/service"
	"github.com/pulkit-sachdeva-dev/quantumTimes/models"
)

// LoginModel is the Bubble Tea model for the login page. It renders the
// email and password inputs plus a remember-me checkbox and dispatches an
// async login command on form submission. The email field is pre-filled
// from the remembered-email preference when one is stored.
type LoginModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	focus      int
	rememberMe bool
	submitting bool
	errMsg     string
}

// Focus positions of the login form. The checkbox participates in the tab
// order after the two text inputs.
const (
	loginFocusEmail = iota
	loginFocusPassword
	loginFocusRemember
)

// NewLoginModel creates a [LoginModel] with pre-configured email and
// password inputs. The email field receives focus immediately; the password
// field uses masked echo.
func NewLoginModel(ctx context.Context, auth service.AuthService) *LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 64
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{emailInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation and loads
// the remembered email, if any.
func (m *LoginModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoadRememberedEmail())
}

// Update implements [tea.Model]. Handled messages:
//   - rememberedEmailMsg — pre-fills the email input and ticks the checkbox.
//   - loginResultMsg     — clears submitting state; on a credential error the
//     password input is cleared so it must be retyped; on success navigates
//     to the home page.
//   - esc                — cancels and navigates back to the welcome menu.
//   - tab / shift+tab    — moves focus through inputs and the checkbox.
//   - space              — toggles the checkbox when it has focus.
//   - enter              — dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rememberedEmailMsg:
		if msg.email != "" && m.inputs[loginFocusEmail].Value() == "" {
			m.inputs[loginFocusEmail].SetValue(msg.email)
			m.rememberMe = true
		}
		return m, nil

	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeAuthError(msg.err)
			if errors.Is(msg.err, service.ErrInvalidCredentials) {
				m.inputs[loginFocusPassword].SetValue("")
			}
			return m, nil
		}

		m.errMsg = ""
		m.inputs[loginFocusPassword].SetValue("")
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    "home",
				Payload: AuthSuccessNotice{Message: "Login successful!"},
			}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case " ":
			if m.focus == loginFocusRemember {
				m.rememberMe = !m.rememberMe
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[loginFocusEmail].Value())
			pass := m.inputs[loginFocusPassword].Value()

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, pass, m.rememberMe)
		}
	}

	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements [tea.Model]. Renders the login form as a two-column table
// with email and password inputs, the remember-me checkbox, a submission
// indicator, and an optional error message.
func (m *LoginModel) View() string {
	checkbox := "[ ]"
	if m.rememberMe {
		checkbox = "[x]"
	}
	checkboxCursor := " "
	if m.focus == loginFocusRemember {
		checkboxCursor = ">"
	}

	var b strings.Builder
	b.WriteString("Field        │ Value\n")
	b.WriteString("─────────────┼────────────────────────────────────────\n")
	b.WriteString("Email        │ [")
	b.WriteString(m.inputs[loginFocusEmail].View())
	b.WriteString("]\n")
	b.WriteString("Password     │ [")
	b.WriteString(m.inputs[loginFocusPassword].View())
	b.WriteString("]\n")
	b.WriteString("Remember me  │ ")
	b.WriteString(checkboxCursor)
	b.WriteString(" ")
	b.WriteString(checkbox)
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Submitting...]\n")
	} else {
		b.WriteString("\n[Submit]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("LOGIN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ space: toggle │ enter: submit")
}

func (m *LoginModel) cmdLogin(email, pass string, rememberMe bool) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Login(ctx, models.Credentials{
			Email:      email,
			Password:   pass,
			RememberMe: rememberMe,
		})
		return loginResultMsg{session: session, err: err}
	}
}

func (m *LoginModel) cmdLoadRememberedEmail() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		email, err := auth.RememberedEmail(ctx)
		if err != nil {
			return rememberedEmailMsg{}
		}
		return rememberedEmailMsg{email: email}
	}
}

func (m *LoginModel) focusNext() {
	m.setFocus((m.focus + 1) % (len(m.inputs) + 1))
}

func (m *LoginModel) focusPrev() {
	m.setFocus((m.focus + len(m.inputs)) % (len(m.inputs) + 1))
}

func (m *LoginModel) setFocus(focus int) {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = focus
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}
