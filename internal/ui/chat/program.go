// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/memu-tui/internal/session"
	"github.com/jeranaias/memu-tui/internal/store"
)

// Run starts the full-screen chat program and blocks until it exits.
// Engine state changes arrive as RefreshMsg through Program.Send, which
// is safe from the engine's worker goroutine.
func Run(engine *session.Engine, conversations *store.ConversationStore, settings *store.SettingsStore) error {
	m := New(engine, conversations, settings)
	p := tea.NewProgram(m, tea.WithAltScreen())

	engine.OnChange(func() {
		p.Send(RefreshMsg{})
	})

	_, err := p.Run()
	return err
}
