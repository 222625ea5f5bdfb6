// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/medichat/go-medichat/internal/adapter"
	"github.com/medichat/go-medichat/internal/store"
	"github.com/medichat/go-medichat/models"
)

// historyWindow is how many stored turns are replayed into the transcript
// when the chat screen opens.
const historyWindow = 50

// chatLanguages are the reply languages the ctrl+l hotkey cycles through.
var chatLanguages = []string{"en", "hi", "mr"}

// ChatModel is the Bubble Tea model for the chat screen: a scrollable
// transcript viewport, a message input, and a spinner while a reply is in
// flight. The transcript is mirrored into the local history store so it
// survives restarts.
type ChatModel struct {
	ctx     context.Context
	server  adapter.ServerAdapter
	history store.HistoryStore

	viewport  viewport.Model
	input     textinput.Model
	spinner   spinner.Model
	turns     []models.ChatTurn
	language  int
	waiting   bool
	ready     bool
	logout    bool
	status    string
	errMsg    string
	lastReply string
}

func newChatModel(ctx context.Context, server adapter.ServerAdapter, history store.HistoryStore) *ChatModel {
	input := textinput.New()
	input.Placeholder = "describe your symptoms or ask a question"
	input.CharLimit = 500
	input.Width = 60
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &ChatModel{
		ctx:     ctx,
		server:  server,
		history: history,
		input:   input,
		spinner: sp,
	}
}

func (m *ChatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoadHistory())
}

// Update implements [tea.Model]. Handled messages:
//   - [historyLoadedMsg] — replays the stored transcript into the viewport.
//   - [chatReplyMsg]     — appends the assistant reply or shows the error.
//   - [copiedMsg]        — flashes a short confirmation in the status line.
//   - enter              — sends the typed message.
//   - ctrl+y             — copies the last assistant reply to the clipboard.
//   - ctrl+l             — cycles the reply language (en, hi, mr).
//   - esc                — logs out and quits the chat loop.
func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case historyLoadedMsg:
		if msg.err == nil {
			m.turns = msg.turns
			m.refreshTranscript()
		}
		return m, nil

	case chatReplyMsg:
		m.waiting = false
		if msg.err != nil {
			m.errMsg = humanizeConnectionError(msg.err)
			return m, nil
		}

		m.errMsg = ""
		m.lastReply = msg.response.Reply
		m.appendTurn("assistant", msg.response.Reply)
		return m, nil

	case copiedMsg:
		m.status = "reply copied to clipboard"
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.logout = msg.String() == "esc"
			return m, tea.Quit
		case "ctrl+y":
			if m.lastReply == "" {
				return m, nil
			}
			return m, m.cmdCopy(m.lastReply)
		case "ctrl+l":
			m.language = (m.language + 1) % len(chatLanguages)
			return m, nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case "enter":
			if m.waiting {
				return m, nil
			}
			message := strings.TrimSpace(m.input.Value())
			if message == "" {
				return m, nil
			}

			m.input.Reset()
			m.errMsg = ""
			m.waiting = true
			m.appendTurn("user", message)
			return m, tea.Batch(m.spinner.Tick, m.cmdSend(message))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChatModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("MEDICAL CHAT"))
	b.WriteString(helpStyle.Render("  [" + chatLanguages[m.language] + "]"))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.transcript())
	}
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if m.waiting {
		b.WriteString(m.spinner.View())
		b.WriteString(" waiting for a reply...\n")
	} else {
		b.WriteString("> ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(helpStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter: send │ ctrl+l: language │ ctrl+y: copy reply │ ↑/↓: scroll │ esc: log out"))
	b.WriteString("\n")
	b.WriteString(disclaimerStyle.Render("This assistant is for informational purposes only and is not a substitute for professional medical advice."))

	return b.String()
}

func (m *ChatModel) resize(width, height int) {
	// Reserve lines for the title, dividers, input, status, and help.
	viewHeight := height - 9
	if viewHeight < 3 {
		viewHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(width, viewHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = viewHeight
	}

	m.input.Width = width - 4
	m.refreshTranscript()
}

func (m *ChatModel) appendTurn(role, content string) {
	m.turns = append(m.turns, models.ChatTurn{
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
	m.refreshTranscript()
}

func (m *ChatModel) refreshTranscript() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.transcript())
	m.viewport.GotoBottom()
}

func (m *ChatModel) transcript() string {
	if len(m.turns) == 0 {
		return helpStyle.Render("No messages yet. Describe your symptoms to get started.")
	}

	width := 76
	if m.ready && m.viewport.Width > 4 {
		width = m.viewport.Width - 2
	}
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	for i, turn := range m.turns {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch turn.Role {
		case "user":
			b.WriteString(userStyle.Render("You: "))
		default:
			b.WriteString(assistantStyle.Render("Assistant: "))
		}
		b.WriteString(wrap.Render(turn.Content))
	}

	return b.String()
}

func (m *ChatModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	history := m.history

	return func() tea.Msg {
		if history == nil {
			return historyLoadedMsg{}
		}
		turns, err := history.Recent(ctx, historyWindow)
		return historyLoadedMsg{turns: turns, err: err}
	}
}

func (m *ChatModel) cmdSend(message string) tea.Cmd {
	ctx := m.ctx
	server := m.server
	history := m.history
	language := chatLanguages[m.language]

	return func() tea.Msg {
		if history != nil {
			_ = history.Append(ctx, models.ChatTurn{Role: "user", Content: message, CreatedAt: time.Now()})
		}

		resp, err := server.Chat(ctx, models.ChatRequest{Message: message, Language: language})
		if err == nil && history != nil {
			_ = history.Append(ctx, models.ChatTurn{Role: "assistant", Content: resp.Reply, CreatedAt: time.Now()})
		}

		return chatReplyMsg{response: resp, err: err}
	}
}

func (m *ChatModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return chatReplyMsg{err: err}
		}
		return copiedMsg{}
	}
}
