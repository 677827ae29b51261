// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/memu-tui/internal/session"
	"github.com/jeranaias/memu-tui/internal/store"
	"github.com/jeranaias/memu-tui/internal/ui/styles"
)

// =============================================================================
// VIEW MODES
// =============================================================================

// mode is the active surface: the chat itself or one of its overlays.
type mode int

const (
	modeChat mode = iota
	modeConversations
	modeSettings
)

// settingsFocus tracks which settings control has keyboard focus.
type settingsFocus int

const (
	focusName settingsFocus = iota
	focusColors
)

// =============================================================================
// MESSAGES
// =============================================================================

// RefreshMsg tells the view to re-read engine and store state. The
// session engine's change callback feeds it in through Program.Send.
type RefreshMsg struct{}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// Surface state
	mode  mode
	ready bool

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Domain state
	engine        *session.Engine
	conversations *store.ConversationStore
	settings      *store.SettingsStore

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	// Key bindings
	keyMap KeyMap

	// Conversations overlay
	convCursor int
	metas      []store.Meta

	// Settings overlay
	nameInput   textinput.Model
	colorCursor int
	focus       settingsFocus
}

// New creates the chat model wired to the engine and stores.
func New(engine *session.Engine, conversations *store.ConversationStore, settings *store.SettingsStore) Model {
	prefs := settings.Get()
	theme := styles.NewTheme(prefs.AccentColor)

	input := textinput.New()
	input.Placeholder = "Mesajını yaz..."
	input.Prompt = "> "
	input.PromptStyle = theme.InputPrompt
	input.CharLimit = 0
	input.Focus()

	nameInput := textinput.New()
	nameInput.Prompt = "İsim: "
	nameInput.CharLimit = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Composing

	return Model{
		mode:          modeChat,
		theme:         theme,
		engine:        engine,
		conversations: conversations,
		settings:      settings,
		input:         input,
		nameInput:     nameInput,
		spinner:       sp,
		keyMap:        DefaultKeyMap(),
	}
}

// Init starts the spinner ticking.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// refreshMetas re-reads the conversation listing for the overlay,
// clamping the cursor to the new bounds.
func (m *Model) refreshMetas() {
	m.metas = m.conversations.List()
	if m.convCursor >= len(m.metas) {
		m.convCursor = len(m.metas) - 1
	}
	if m.convCursor < 0 {
		m.convCursor = 0
	}
}

// openSettings seeds the settings overlay from the current preferences.
func (m *Model) openSettings() {
	prefs := m.settings.Get()
	m.nameInput.SetValue(prefs.UserName)
	m.colorCursor = 0
	for i, c := range store.AccentColorOptions {
		if c == prefs.AccentColor {
			m.colorCursor = i
			break
		}
	}
	m.focus = focusName
	m.nameInput.Focus()
	m.input.Blur()
	m.mode = modeSettings
}

// applySettings persists the overlay state and re-themes the view.
func (m *Model) applySettings() {
	prefs := store.UserSettings{
		UserName:    m.nameInput.Value(),
		AccentColor: store.AccentColorOptions[m.colorCursor],
	}
	if prefs.UserName == "" {
		prefs.UserName = store.DefaultUserName
	}
	m.settings.Set(prefs)
	m.theme.SetAccent(prefs.AccentColor)
	m.input.PromptStyle = m.theme.InputPrompt
	m.spinner.Style = m.theme.Composing
}
