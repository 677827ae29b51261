// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive plain-text chat REPL.
//
// Handles the "memu chat" command: a readline-style loop for terminals
// where the full-screen interface is unwanted or unavailable.
//
// Interactive commands (during chat):
//   /yeni            Start a new conversation
//   /sohbetler       List saved conversations
//   /ayarlar         Show current settings
//   /çıkış, /q       Exit
//   Ctrl+C, Ctrl+D   Exit
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/jeranaias/memu-tui/internal/config"
	"github.com/jeranaias/memu-tui/internal/format"
	"github.com/jeranaias/memu-tui/internal/model"
	"github.com/jeranaias/memu-tui/internal/session"
	"github.com/jeranaias/memu-tui/internal/store"
	"github.com/jeranaias/memu-tui/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	userStyle = lipgloss.NewStyle().
			Foreground(styles.DefaultAccent).
			Bold(true)

	assistantStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald).
			Bold(true)

	apologyStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a new ChatCLI with input history support.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	dir, err := config.Dir()
	if err != nil {
		dir = os.TempDir()
	}

	c := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(dir, "chat_history"),
	}
	c.LoadHistory()
	return c
}

// LoadHistory loads input history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line with history navigation.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists input history with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	if err := os.MkdirAll(filepath.Dir(c.historyFile), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and releases the terminal.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// REPL
// =============================================================================

// RunChat runs the plain-text chat loop until the user exits.
func RunChat(engine *session.Engine, conversations *store.ConversationStore, settings *store.SettingsStore) error {
	input := NewChatCLI()
	defer input.Close()

	fmt.Println(infoStyle.Render("Memu hazır. /çıkış ile çıkabilirsin."))

	for {
		line, err := input.ReadInput("> ")
		if err != nil {
			// Ctrl+C aborts the prompt, Ctrl+D closes stdin. Both exit.
			if errors.Is(err, liner.ErrPromptAborted) {
				return nil
			}
			return nil
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "/") {
			if done := runCommand(trimmed, conversations, settings); done {
				return nil
			}
			continue
		}

		before := len(conversations.Buffer())
		engine.Submit(trimmed)
		engine.Wait()
		printNewMessages(conversations, settings, before)
	}
}

// runCommand handles slash commands; returns true when the loop should
// exit.
func runCommand(cmd string, conversations *store.ConversationStore, settings *store.SettingsStore) bool {
	switch cmd {
	case "/çıkış", "/cikis", "/q", "/quit":
		return true
	case "/yeni":
		conversations.StartNew()
		fmt.Println(infoStyle.Render("Yeni sohbet başlatıldı."))
	case "/sohbetler":
		printSessions(conversations, os.Stdout)
	case "/ayarlar":
		prefs := settings.Get()
		fmt.Println(infoStyle.Render("İsim: " + prefs.UserName))
		fmt.Println(infoStyle.Render("Tema rengi: #" + prefs.AccentColor))
	default:
		fmt.Println(infoStyle.Render("Bilinmeyen komut: " + cmd))
	}
	return false
}

// printNewMessages renders every message appended since the submit,
// normally the user turn followed by the reply or the apology.
func printNewMessages(conversations *store.ConversationStore, settings *store.SettingsStore, since int) {
	buf := conversations.Buffer()
	userName := settings.Get().UserName

	for _, msg := range buf[min(since, len(buf)):] {
		switch {
		case msg.Role == model.RoleUser:
			label := userName
			if label == "" {
				label = msg.Role.DisplayLabel()
			}
			fmt.Println(userStyle.Render(label+":") + " " + msg.Content)
		case msg.Content == session.Apology:
			fmt.Println(assistantStyle.Render("Memu:") + " " + apologyStyle.Render(msg.Content))
		default:
			fmt.Println(assistantStyle.Render("Memu:"))
			fmt.Println(renderReply(msg.Content))
		}
	}
}

// renderReply lays out an assistant reply per its presentation format.
func renderReply(content string) string {
	parsed := format.Parse(content)

	switch parsed.Format.Kind {
	case model.FormatList:
		var b strings.Builder
		for i, item := range parsed.Format.Items {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("  • " + item)
		}
		return b.String()

	case model.FormatGameRecommendation:
		var b strings.Builder
		for i, g := range parsed.Format.Games {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("  " + g.Name + "\n")
			if g.Platform != "" {
				b.WriteString("    Platform: " + g.Platform + "\n")
			}
			if g.Genre != "" {
				b.WriteString("    Tür: " + g.Genre + "\n")
			}
			if g.Description != "" {
				b.WriteString("    " + g.Description + "\n")
			}
		}
		return strings.TrimRight(b.String(), "\n")

	default:
		return content
	}
}
