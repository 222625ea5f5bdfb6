package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/medichat/go-medichat/models"
)

// NavigateTo switches the root router to another page. Payload, when set,
// is re-dispatched as a message to the opened page.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// authDoneMsg ends the login flow after a token was obtained.
type authDoneMsg struct {
	username string
}

// RegisterSuccessNotice is shown on the menu after a successful
// registration.
type RegisterSuccessNotice struct {
	Username string
}

// loginResultMsg carries the outcome of an async login or register call.
type loginResultMsg struct {
	username string
	err      error
}

// chatReplyMsg carries the outcome of an async chat completion.
type chatReplyMsg struct {
	response models.ChatResponse
	err      error
}

// historyLoadedMsg delivers the locally stored transcript on chat startup.
type historyLoadedMsg struct {
	turns []models.ChatTurn
	err   error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
