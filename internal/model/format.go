// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

// =============================================================================
// PRESENTATION FORMAT
// =============================================================================

// FormatKind identifies the presentation format of a reply.
type FormatKind int

const (
	// FormatNormal is plain text.
	FormatNormal FormatKind = iota
	// FormatList is an ordered sequence of text items.
	FormatList
	// FormatGameRecommendation is a sequence of game cards.
	FormatGameRecommendation
	// FormatError marks an error reply.
	FormatError
)

// String returns a short name for the format kind.
func (k FormatKind) String() string {
	switch k {
	case FormatNormal:
		return "normal"
	case FormatList:
		return "list"
	case FormatGameRecommendation:
		return "gameRecommendation"
	case FormatError:
		return "error"
	default:
		return "unknown"
	}
}

// Game is a single recommended game. Only the name is mandatory.
type Game struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Platform    string `json:"platform,omitempty"`
	Genre       string `json:"genre,omitempty"`
}

// Format is the tagged result of parsing a reply. Kind selects which of
// the payload fields is meaningful.
type Format struct {
	Kind  FormatKind
	Items []string // FormatList
	Games []Game   // FormatGameRecommendation
}

// FormattedMessage is the transient view model produced by the response
// formatter. It is never persisted; Content always carries the raw reply
// text regardless of format.
type FormattedMessage struct {
	Content string
	Format  Format
}
