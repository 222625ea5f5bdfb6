// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medichat/go-medichat/models"
)

// ─────────────────────────────────────────────
// Mock: adapter.ServerAdapter
// ─────────────────────────────────────────────

type mockServerAdapter struct {
	registerFn func(ctx context.Context, user models.User) (models.Token, error)
	loginFn    func(ctx context.Context, user models.User) (models.Token, error)
	chatFn     func(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)
	token      string
}

func (m *mockServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, user)
	}
	return models.Token{}, nil
}

func (m *mockServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, user)
	}
	return models.Token{}, nil
}

func (m *mockServerAdapter) Profile(ctx context.Context) (models.Profile, error) {
	return models.Profile{}, nil
}

func (m *mockServerAdapter) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	if m.chatFn != nil {
		return m.chatFn(ctx, req)
	}
	return models.ChatResponse{}, nil
}

func (m *mockServerAdapter) SetToken(token string) { m.token = token }
func (m *mockServerAdapter) Token() string         { return m.token }

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestMenuModel_EnterNavigates(t *testing.T) {
	tests := []struct {
		name      string
		downMoves int
		wantPage  string
	}{
		{name: "first item opens login", downMoves: 0, wantPage: "login"},
		{name: "second item opens register", downMoves: 1, wantPage: "register"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var model tea.Model = NewMenuModel()
			for i := 0; i < tt.downMoves; i++ {
				model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
			}

			_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
			require.NotNil(t, cmd)

			nav, ok := cmd().(NavigateTo)
			require.True(t, ok)
			assert.Equal(t, tt.wantPage, nav.Page)
		})
	}
}

func TestLoginModel_RequiresCredentials(t *testing.T) {
	m := NewLoginModel(context.Background(), &mockServerAdapter{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "login and password are required")
}

func TestLoginModel_SuccessEndsFlow(t *testing.T) {
	m := NewLoginModel(context.Background(), &mockServerAdapter{})

	model, cmd := m.Update(loginResultMsg{username: "ivan"})
	require.NotNil(t, cmd)

	done, ok := cmd().(authDoneMsg)
	require.True(t, ok)
	assert.Equal(t, "ivan", done.username)

	login := model.(*LoginModel)
	assert.False(t, login.submitting)
}

func TestLoginModel_ErrorIsShown(t *testing.T) {
	m := NewLoginModel(context.Background(), &mockServerAdapter{})

	model, _ := m.Update(loginResultMsg{err: errors.New("wrong password")})

	assert.Contains(t, model.View(), "wrong password")
}

func TestRegisterModel_PasswordsMustMatch(t *testing.T) {
	m := NewRegisterModel(context.Background(), &mockServerAdapter{})
	m.inputs[0].SetValue("Ivan")
	m.inputs[1].SetValue("ivan")
	m.inputs[2].SetValue("secret-one")
	m.inputs[3].SetValue("secret-two")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "passwords do not match")
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{"menu": NewMenuModel()}, "menu")

	model, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)

	result := model.(RootModel)
	assert.True(t, result.quitByUser)
}

func TestRootModel_AuthDoneQuitsAuthorized(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{"menu": NewMenuModel()}, "menu")

	model, cmd := root.Update(authDoneMsg{username: "ivan"})
	require.NotNil(t, cmd)

	result := model.(RootModel)
	assert.True(t, result.authorized)
	assert.False(t, result.quitByUser)
}

func TestChatModel_SendAppendsUserTurn(t *testing.T) {
	server := &mockServerAdapter{
		chatFn: func(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
			assert.Equal(t, "I have a headache", req.Message)
			assert.Equal(t, "en", req.Language)
			return models.ChatResponse{Reply: "Rest in a dark room."}, nil
		},
	}
	m := newChatModel(context.Background(), server, nil)

	m.input.SetValue("I have a headache")
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	chat := model.(*ChatModel)
	require.Len(t, chat.turns, 1)
	assert.Equal(t, "user", chat.turns[0].Role)
	assert.True(t, chat.waiting)
}

func TestChatModel_ReplyAppendsAssistantTurn(t *testing.T) {
	m := newChatModel(context.Background(), &mockServerAdapter{}, nil)
	m.waiting = true

	model, _ := m.Update(chatReplyMsg{response: models.ChatResponse{Reply: "Drink fluids."}})

	chat := model.(*ChatModel)
	assert.False(t, chat.waiting)
	require.Len(t, chat.turns, 1)
	assert.Equal(t, "assistant", chat.turns[0].Role)
	assert.Equal(t, "Drink fluids.", chat.lastReply)
	assert.Contains(t, chat.transcript(), "Drink fluids.")
}

func TestChatModel_LanguageCycles(t *testing.T) {
	m := newChatModel(context.Background(), &mockServerAdapter{}, nil)

	seen := []string{chatLanguages[m.language]}
	for i := 0; i < len(chatLanguages); i++ {
		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
		m = model.(*ChatModel)
		seen = append(seen, chatLanguages[m.language])
	}

	assert.Equal(t, []string{"en", "hi", "mr", "en"}, seen)
}

func TestChatModel_EscLogsOut(t *testing.T) {
	m := newChatModel(context.Background(), &mockServerAdapter{}, nil)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	chat := model.(*ChatModel)
	assert.True(t, chat.logout)
}

func TestChatModel_EmptyMessageIsIgnored(t *testing.T) {
	m := newChatModel(context.Background(), &mockServerAdapter{}, nil)

	m.input.SetValue("   ")
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	chat := model.(*ChatModel)
	assert.Nil(t, cmd)
	assert.Empty(t, chat.turns)
	assert.False(t, chat.waiting)
}

func TestHumanizeConnectionError(t *testing.T) {
	err := errors.New("dial tcp 127.0.0.1:8000: connect: connection refused")
	msg := humanizeConnectionError(err)

	assert.True(t, strings.Contains(msg, "unreachable"))
	assert.Equal(t, "login already exists", humanizeConnectionError(errors.New("login already exists")))
}
