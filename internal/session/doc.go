// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session drives the send/receive lifecycle of a chat turn.
//
// The Engine is the only component allowed to move a conversation
// forward: it appends the user message, builds the prompt from the
// history as it stood before that message, dispatches the request on a
// worker goroutine, and settles the turn with either the reply or a
// fixed apology message. At most one request is in flight; submissions
// during Sending are dropped rather than queued.
//
// Cancelled and superseded requests are tracked by generation number so
// a late reply can never land in the wrong conversation state.
package session
