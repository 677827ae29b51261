// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store owns conversation and settings state plus persistence.
//
// Two stores live here. ConversationStore holds the conversation list,
// the selection pointer and the active message buffer; SettingsStore
// holds the user's display preferences. Both serialize state to JSON
// and hand the bytes to a background write queue, so callers never
// block on disk and a write failure degrades to in-memory operation.
//
// # Key Types
//
//   - ConversationStore: list, selection and active buffer operations
//   - SettingsStore: user name and accent color preferences
//   - Meta: lightweight conversation metadata for listings
//
// # Invariants
//
//   - New conversations insert at the front of the list
//   - Once any conversation exists, exactly one is selected
//   - Deleting the last conversation starts a fresh one; the selection
//     never dangles
package store
