// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file contains the Update function and its mode-specific key
// handlers. All domain mutation goes through the engine and the stores;
// the model itself only holds presentation state.
package chat

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/memu-tui/internal/store"
)

// Update handles incoming messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case RefreshMsg:
		m.syncViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keyMap.Quit) {
			m.engine.Cancel()
			return m, tea.Quit
		}
		switch m.mode {
		case modeConversations:
			return m.updateConversations(msg)
		case modeSettings:
			return m.updateSettings(msg)
		default:
			return m.updateChat(msg)
		}
	}

	return m, nil
}

// handleResize recomputes the layout. The viewport takes everything not
// used by the header, input and status rows.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	chrome := 5 // header, input border, input, status, spacer
	vh := msg.Height - chrome
	if vh < 1 {
		vh = 1
	}

	if !m.ready {
		m.viewport = viewport.New(msg.Width, vh)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = vh
	}
	m.input.Width = msg.Width - 4
	m.syncViewport()
	return m, nil
}

// =============================================================================
// CHAT MODE
// =============================================================================

func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Submit):
		text := m.input.Value()
		m.input.Reset()
		m.engine.Submit(text)
		m.syncViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.Cancel):
		m.engine.Cancel()
		return m, nil

	case key.Matches(msg, m.keyMap.NewChat):
		m.engine.Cancel()
		m.conversations.StartNew()
		m.syncViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.Conversations):
		m.refreshMetas()
		m.input.Blur()
		m.mode = modeConversations
		return m, nil

	case key.Matches(msg, m.keyMap.Settings):
		m.openSettings()
		return m, textinput.Blink

	case key.Matches(msg, m.keyMap.PageUp), key.Matches(msg, m.keyMap.PageDown),
		key.Matches(msg, m.keyMap.Up), key.Matches(msg, m.keyMap.Down):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// CONVERSATIONS OVERLAY
// =============================================================================

func (m Model) updateConversations(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Back):
		m.mode = modeChat
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keyMap.Up):
		if m.convCursor > 0 {
			m.convCursor--
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		if m.convCursor < len(m.metas)-1 {
			m.convCursor++
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		if len(m.metas) > 0 {
			m.engine.Cancel()
			m.conversations.Load(m.metas[m.convCursor].ID)
		}
		m.mode = modeChat
		m.input.Focus()
		m.syncViewport()
		return m, textinput.Blink

	case key.Matches(msg, m.keyMap.Delete):
		if len(m.metas) > 0 {
			m.engine.Cancel()
			m.conversations.Delete(m.metas[m.convCursor].ID)
			m.refreshMetas()
			m.syncViewport()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.NewChat):
		m.engine.Cancel()
		m.conversations.StartNew()
		m.mode = modeChat
		m.input.Focus()
		m.syncViewport()
		return m, textinput.Blink
	}

	return m, nil
}

// =============================================================================
// SETTINGS OVERLAY
// =============================================================================

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Back):
		m.applySettings()
		m.mode = modeChat
		m.nameInput.Blur()
		m.input.Focus()
		return m, textinput.Blink

	case msg.String() == "tab":
		if m.focus == focusName {
			m.focus = focusColors
			m.nameInput.Blur()
		} else {
			m.focus = focusName
			m.nameInput.Focus()
		}
		return m, textinput.Blink

	case m.focus == focusColors && key.Matches(msg, m.keyMap.Up):
		if m.colorCursor > 0 {
			m.colorCursor--
		}
		return m, nil

	case m.focus == focusColors && key.Matches(msg, m.keyMap.Down):
		if m.colorCursor < len(store.AccentColorOptions)-1 {
			m.colorCursor++
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		m.applySettings()
		m.mode = modeChat
		m.nameInput.Blur()
		m.input.Focus()
		return m, textinput.Blink
	}

	if m.focus == focusName {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// syncViewport re-renders the transcript and pins the view to the
// latest message.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
