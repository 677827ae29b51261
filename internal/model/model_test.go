// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"strings"
	"testing"
	"time"
)

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewUserMessage(t *testing.T) {
	msg := NewUserMessage("Merhaba")

	if msg.Role != RoleUser {
		t.Errorf("Role = %q, want 'user'", msg.Role)
	}
	if msg.Content != "Merhaba" {
		t.Errorf("Content = %q, want 'Merhaba'", msg.Content)
	}
	if msg.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("Expected a generated ID")
	}
	if msg.Timestamp.IsZero() {
		t.Error("Expected a timestamp")
	}
}

func TestNewAssistantMessage(t *testing.T) {
	msg := NewAssistantMessage("Selam! 😊")

	if msg.Role != RoleAssistant {
		t.Errorf("Role = %q, want 'assistant'", msg.Role)
	}
	if msg.Content != "Selam! 😊" {
		t.Errorf("Content = %q", msg.Content)
	}
}

func TestMessage_Equal(t *testing.T) {
	a := NewUserMessage("hello")
	b := a

	if !a.Equal(b) {
		t.Error("Identical messages should be equal")
	}

	b.Content = "changed"
	if a.Equal(b) {
		t.Error("Messages with different content should not be equal")
	}

	c := a
	c.Timestamp = a.Timestamp.Add(time.Second)
	if a.Equal(c) {
		t.Error("Messages with different timestamps should not be equal")
	}

	d := NewUserMessage("hello")
	if a.Equal(d) {
		t.Error("Messages with different IDs should not be equal")
	}
}

func TestRole_DisplayLabel(t *testing.T) {
	if got := RoleUser.DisplayLabel(); got != "Kullanıcı" {
		t.Errorf("DisplayLabel(user) = %q, want 'Kullanıcı'", got)
	}
	if got := RoleAssistant.DisplayLabel(); got != "Memu" {
		t.Errorf("DisplayLabel(assistant) = %q, want 'Memu'", got)
	}
}

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestConversation_TitleDefault(t *testing.T) {
	conv := NewConversation()

	if got := conv.Title(); got != DefaultTitle {
		t.Errorf("Title() = %q, want %q", got, DefaultTitle)
	}
}

func TestConversation_TitleFromFirstMessage(t *testing.T) {
	conv := NewConversation()
	conv.Messages = append(conv.Messages, NewUserMessage("Kısa başlık"))
	conv.Messages = append(conv.Messages, NewAssistantMessage("cevap"))

	if got := conv.Title(); got != "Kısa başlık" {
		t.Errorf("Title() = %q, want first message content", got)
	}
}

func TestConversation_TitleTruncation(t *testing.T) {
	// Multi-byte characters must count as single code points.
	long := strings.Repeat("ş", 45)
	conv := NewConversation()
	conv.Messages = append(conv.Messages, NewUserMessage(long))

	title := conv.Title()
	if got := len([]rune(title)); got != TitleRunes {
		t.Errorf("Title rune count = %d, want %d", got, TitleRunes)
	}
	if !strings.HasPrefix(long, title) {
		t.Error("Title should be a prefix of the first message")
	}
}

func TestConversation_Clone(t *testing.T) {
	conv := NewConversation()
	conv.Messages = append(conv.Messages, NewUserMessage("a"))

	clone := conv.Clone()
	clone.Messages = append(clone.Messages, NewAssistantMessage("b"))

	if len(conv.Messages) != 1 {
		t.Errorf("Original message count = %d, want 1", len(conv.Messages))
	}
	if len(clone.Messages) != 2 {
		t.Errorf("Clone message count = %d, want 2", len(clone.Messages))
	}
}

// =============================================================================
// FORMAT TESTS
// =============================================================================

func TestFormatKind_String(t *testing.T) {
	cases := map[FormatKind]string{
		FormatNormal:             "normal",
		FormatList:               "list",
		FormatGameRecommendation: "gameRecommendation",
		FormatError:              "error",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("String(%d) = %q, want %q", kind, got, want)
		}
	}
}
