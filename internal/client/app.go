package client

import (
	"context"
	"errors"

	"github.com/medichat/go-medichat/internal/adapter"
	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/tui"
)

// App drives the terminal client: the login flow runs until a token is
// obtained, then the chat loop runs until logout or quit. Logging out
// drops the token and returns to the login flow.
type App struct {
	server adapter.ServerAdapter
	ui     *tui.TUI
	logger *logger.Logger
}

func NewApp(ui *tui.TUI, server adapter.ServerAdapter, log *logger.Logger) (*App, error) {
	return &App{server: server, ui: ui, logger: log}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	for {
		if err := a.ui.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		a.logger.Info().Msg("login flow finished, opening chat")

		logout, err := a.ui.ChatLoop(ctx)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		a.logger.Info().Msg("user logged out")
		a.server.SetToken("")
	}
}
