// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// This package defines the core domain types used throughout the
// application for representing chat conversations, messages, and the
// presentation formats of assistant replies.
//
// # Key Types
//
//   - Conversation: Container for a chat session; its title derives from
//     the first message
//   - Message: Single message with role, content and timestamp
//   - Role: Message role enumeration (user, assistant)
//   - Format: Presentation format of an assistant reply (normal, list,
//     game recommendation)
//
// # Usage
//
// Create messages and derive a title:
//
//	conv := model.NewConversation()
//	conv.Messages = append(conv.Messages, model.NewUserMessage("Merhaba!"))
//	fmt.Println(conv.Title())
package model
