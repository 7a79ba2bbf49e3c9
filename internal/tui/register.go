package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/service"
	"github.com/pulkit-sachdeva-dev/quantumTimes/models"
)

// RegisterModel is the Bubble Tea model for the registration page. It
// renders four text inputs (username, email, password, password
// confirmation) and dispatches an async registration command on form
// submission. On success the form is reset and the session opened for the
// new account takes the user to the home page.
type RegisterModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with four pre-configured text
// inputs. The username field receives focus immediately; the password
// fields use masked echo.
func NewRegisterModel(ctx context.Context, auth service.AuthService) *RegisterModel {
	fields := make([]textinput.Model, 4)

	fields[0] = textinput.New()
	fields[0].Placeholder = "username"
	fields[0].CharLimit = 32
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "email"
	fields[1].CharLimit = 64
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "password"
	fields[2].EchoMode = textinput.EchoPassword
	fields[2].EchoCharacter = '*'
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "repeat password"
	fields[3].EchoMode = textinput.EchoPassword
	fields[3].EchoCharacter = '*'
	fields[3].Width = 40

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - registerResultMsg — clears submitting state; on error, populates
//     errMsg; on success, resets the form and navigates to the home page.
//   - esc               — cancels and navigates back to the welcome menu.
//   - tab / shift+tab   — moves focus between inputs.
//   - enter             — dispatches the async registration command.
//
// All other key events are forwarded to the focused input widget. All field
// validation happens in the service layer; the form submits raw values and
// renders whatever failure comes back.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(registerResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeAuthError(result.err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    "home",
				Payload: AuthSuccessNotice{Message: "Registration successful!"},
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
		case "enter":
			if m.submitting {
				return m, nil
			}

			reg := models.Registration{
				Username:        strings.TrimSpace(m.inputs[0].Value()),
				Email:           strings.TrimSpace(m.inputs[1].Value()),
				Password:        m.inputs[2].Value(),
				ConfirmPassword: m.inputs[3].Value(),
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(reg)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the registration form as a
// two-column table with all four input fields, a submission indicator, and
// an optional error message.
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼────────────────────────────────────\n")
	b.WriteString("Username         │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email            │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Password         │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Repeat password  │ [")
	b.WriteString(m.inputs[3].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(reg models.Registration) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Register(ctx, reg)
		return registerResultMsg{session: session, err: err}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
