package tui

import "github.com/pulkit-sachdeva-dev/quantumTimes/models"

// NavigateTo switches the root router to another page. An optional Payload
// is re-dispatched as a message to the target page.
type NavigateTo struct {
	Page    string
	Payload any
}

// AuthSuccessNotice is carried to the home page after a successful login or
// registration and rendered as a transient status line.
type AuthSuccessNotice struct {
	Message string
}

// ResetSuccessNotice is carried to the welcome menu after a demo data reset.
type ResetSuccessNotice struct{}

type loginResultMsg struct {
	session models.Session
	err     error
}

type registerResultMsg struct {
	session models.Session
	err     error
}

type sessionLoadedMsg struct {
	session models.Session
	err     error
}

type rememberedEmailMsg struct {
	email string
}

type logoutDoneMsg struct {
	err error
}

type resetDoneMsg struct {
	err error
}

type accountsLoadedMsg struct {
	summaries []models.AccountSummary
	err       error
}

type copiedMsg struct{}
