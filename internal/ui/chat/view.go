// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file renders the chat surface: the transcript with its
// marker-based presentation formats, the input row, and the
// conversations and settings overlays.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/memu-tui/internal/format"
	"github.com/jeranaias/memu-tui/internal/model"
	"github.com/jeranaias/memu-tui/internal/session"
	"github.com/jeranaias/memu-tui/internal/store"
	"github.com/jeranaias/memu-tui/internal/util"
)

// View renders the full application surface.
func (m Model) View() string {
	if !m.ready {
		return "yükleniyor..."
	}

	switch m.mode {
	case modeConversations:
		return m.viewConversations()
	case modeSettings:
		return m.viewSettings()
	default:
		return m.viewChat()
	}
}

// =============================================================================
// CHAT SURFACE
// =============================================================================

func (m Model) viewChat() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.engine.IsComposing() {
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.Composing.Render("Memu yazıyor..."))
	}
	b.WriteString("\n")

	b.WriteString(m.theme.InputContainer.Width(m.width).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

func (m Model) renderHeader() string {
	title := model.DefaultTitle
	if buf := m.conversations.Buffer(); len(buf) > 0 {
		title = buf[0].Preview(model.TitleRunes)
	}
	title = runewidth.Truncate(title, m.width-10, "…")

	brand := m.theme.Header.Render("Memu")
	return lipgloss.JoinHorizontal(lipgloss.Top, brand, " ", m.theme.HeaderTitle.Render(title))
}

func (m Model) renderStatusBar() string {
	var parts []string
	for _, binding := range m.keyMap.ShortHelp() {
		h := binding.Help()
		parts = append(parts, m.theme.Shortcut.Render(h.Key)+" "+h.Desc)
	}
	return m.theme.StatusBar.Width(m.width).Render(strings.Join(parts, "  "))
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// renderTranscript renders the active buffer. Assistant replies go
// through the format parser so lists and game recommendations get their
// dedicated layouts.
func (m Model) renderTranscript() string {
	buf := m.conversations.Buffer()
	if len(buf) == 0 {
		return m.theme.ItemMeta.Render("Yeni bir sohbete başla: mesajını yaz ve Enter'a bas.")
	}

	userName := m.settings.Get().UserName
	var b strings.Builder
	for i, msg := range buf {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.renderMessage(msg, userName))
	}
	return b.String()
}

func (m Model) renderMessage(msg model.Message, userName string) string {
	var b strings.Builder

	label := m.theme.AssistantLabel.Render(model.RoleAssistant.DisplayLabel())
	if msg.Role == model.RoleUser {
		name := userName
		if name == "" {
			name = msg.Role.DisplayLabel()
		}
		label = m.theme.UserLabel.Render(name)
	}
	b.WriteString(label)
	b.WriteString(" ")
	b.WriteString(m.theme.Timestamp.Render(msg.Timestamp.Format("15:04")))
	b.WriteString("\n")

	if msg.Role == model.RoleUser {
		b.WriteString(m.theme.MessageText.Render(msg.Content))
		return b.String()
	}
	if msg.Content == session.Apology {
		b.WriteString(m.theme.ApologyText.Render(msg.Content))
		return b.String()
	}

	parsed := format.Parse(msg.Content)
	switch parsed.Format.Kind {
	case model.FormatList:
		b.WriteString(m.renderList(parsed.Format.Items))
	case model.FormatGameRecommendation:
		b.WriteString(m.renderGames(parsed.Format.Games))
	default:
		b.WriteString(m.theme.MessageText.Render(msg.Content))
	}
	return b.String()
}

func (m Model) renderList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.theme.ListBullet.Render("•"))
		b.WriteString(" ")
		b.WriteString(m.theme.ListItem.Render(item))
	}
	return b.String()
}

func (m Model) renderGames(games []model.Game) string {
	cards := make([]string, 0, len(games))
	for _, g := range games {
		var b strings.Builder
		b.WriteString(m.theme.GameName.Render(g.Name))
		if g.Platform != "" {
			b.WriteString("\n")
			b.WriteString(m.theme.GameField.Render("Platform: "))
			b.WriteString(m.theme.GameValue.Render(g.Platform))
		}
		if g.Genre != "" {
			b.WriteString("\n")
			b.WriteString(m.theme.GameField.Render("Tür: "))
			b.WriteString(m.theme.GameValue.Render(g.Genre))
		}
		if g.Description != "" {
			b.WriteString("\n")
			b.WriteString(m.theme.MessageText.Render(g.Description))
		}
		cards = append(cards, m.theme.GameCard.Render(b.String()))
	}
	return strings.Join(cards, "\n")
}

// =============================================================================
// OVERLAYS
// =============================================================================

func (m Model) viewConversations() string {
	var b strings.Builder
	b.WriteString(m.theme.OverlayTitle.Render("Sohbetler"))
	b.WriteString("\n\n")

	if len(m.metas) == 0 {
		b.WriteString(m.theme.ItemMeta.Render("Henüz sohbet yok."))
	}
	for i, meta := range m.metas {
		if i > 0 {
			b.WriteString("\n")
		}
		line := meta.Title
		marker := "  "
		if meta.Selected {
			marker = "* "
		}
		style := m.theme.Item
		if i == m.convCursor {
			style = m.theme.ItemSelected
		}
		b.WriteString(style.Render(marker + line))
		b.WriteString(" ")
		b.WriteString(m.theme.ItemMeta.Render(countLabel(meta)))
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderOverlayHelp())
	return m.overlay(b.String())
}

func countLabel(meta store.Meta) string {
	return "(" + util.IntToStr(meta.MessageCount) + " mesaj)"
}

func (m Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(m.theme.OverlayTitle.Render("Ayarlar"))
	b.WriteString("\n\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.theme.Item.Render("Tema rengi:"))
	b.WriteString("\n")

	for i, hex := range store.AccentColorOptions {
		if i > 0 {
			b.WriteString("\n")
		}
		marker := "  "
		if i == m.colorCursor {
			marker = "> "
		}
		swatch := m.theme.Swatch.Foreground(lipgloss.Color("#" + hex)).Render("██")
		style := m.theme.Item
		if i == m.colorCursor {
			style = m.theme.ItemSelected
		}
		b.WriteString(style.Render(marker))
		b.WriteString(swatch)
		b.WriteString(" ")
		b.WriteString(style.Render("#" + hex))
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.ItemMeta.Render("Tab: alan değiştir · Enter: kaydet · Esc: geri"))
	return m.overlay(b.String())
}

// overlay centers boxed content on the full surface.
func (m Model) overlay(content string) string {
	box := m.theme.OverlayBox.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderOverlayHelp() string {
	var parts []string
	for _, binding := range m.keyMap.OverlayHelp() {
		h := binding.Help()
		parts = append(parts, m.theme.Shortcut.Render(h.Key)+" "+h.Desc)
	}
	return m.theme.ItemMeta.Render(strings.Join(parts, "  "))
}
