// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// TitleRunes is the number of code points a derived conversation title keeps.
const TitleRunes = 30

// DefaultTitle is shown for conversations that have no messages yet.
const DefaultTitle = "Yeni Sohbet"

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds an ordered chat history. Messages are append-only:
// individual messages are never reordered or removed.
type Conversation struct {
	ID       uuid.UUID `json:"id"`
	Messages []Message `json:"messages"`
}

// NewConversation creates an empty conversation with a generated ID.
func NewConversation() Conversation {
	return Conversation{
		ID:       uuid.New(),
		Messages: make([]Message, 0),
	}
}

// Title derives the display title from the first message, truncated to
// TitleRunes code points. Empty conversations use DefaultTitle.
func (c Conversation) Title() string {
	if len(c.Messages) == 0 {
		return DefaultTitle
	}
	runes := []rune(c.Messages[0].Content)
	if len(runes) > TitleRunes {
		runes = runes[:TitleRunes]
	}
	return string(runes)
}

// MessageCount returns the number of messages.
func (c Conversation) MessageCount() int {
	return len(c.Messages)
}

// IsEmpty returns true if there are no messages.
func (c Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}

// LastActivity returns the timestamp of the most recent message, or the
// zero time for an empty conversation.
func (c Conversation) LastActivity() time.Time {
	if len(c.Messages) == 0 {
		return time.Time{}
	}
	return c.Messages[len(c.Messages)-1].Timestamp
}

// Clone returns a copy of the conversation with its own message slice.
func (c Conversation) Clone() Conversation {
	msgs := make([]Message, len(c.Messages))
	copy(msgs, c.Messages)
	return Conversation{ID: c.ID, Messages: msgs}
}
