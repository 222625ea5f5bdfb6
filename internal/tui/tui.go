// Package tui is the terminal chat client: a welcome menu, login and
// registration forms, and a chat screen with local transcript history.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/medichat/go-medichat/internal/adapter"
	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/store"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	server  adapter.ServerAdapter
	history store.HistoryStore
}

func New(server adapter.ServerAdapter, history store.HistoryStore, _ *logger.Logger) (*TUI, error) {
	return &TUI{server: server, history: history}, nil
}

// LoginFlow runs the menu/login/register screens until the user has a
// valid token or quits. The obtained token is installed on the server
// adapter by the login command itself.
func (t *TUI) LoginFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.server),
		"register": NewRegisterModel(ctx, t.server),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

// ChatLoop runs the chat screen until the user logs out or quits.
func (t *TUI) ChatLoop(ctx context.Context) (logout bool, err error) {
	model := newChatModel(ctx, t.server, t.history)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(*ChatModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	return result.logout, nil
}
