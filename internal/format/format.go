// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package format parses raw assistant replies into presentation formats.
//
// The remote model is instructed to emit two marker-based layouts: a plain
// bullet list introduced by "liste:" and a game recommendation block
// introduced by "oyun önerisi:". Everything else is treated as plain text.
// Parsing is pure and total: malformed input never fails, it degrades to
// the normal format.
package format

import (
	"strings"

	"github.com/jeranaias/memu-tui/internal/model"
)

// Marker tokens checked as literal substrings, lowercase and capitalized.
const (
	listMarker      = "liste:"
	listMarkerUpper = "Liste:"
	gameMarker      = "oyun önerisi:"
	gameMarkerUpper = "Oyun önerisi:"

	itemPrefix     = "- "
	platformPrefix = "Platform:"
	genrePrefix    = "Tür:"
)

// Parse maps a raw reply to its presentation format. The returned Content
// is always the raw input; the format only guides rendering.
//
// The list check runs first, so a reply carrying both markers renders as
// a list.
func Parse(raw string) model.FormattedMessage {
	if f, ok := parseList(raw); ok {
		return model.FormattedMessage{Content: raw, Format: f}
	}
	if f, ok := parseGames(raw); ok {
		return model.FormattedMessage{Content: raw, Format: f}
	}
	return model.FormattedMessage{
		Content: raw,
		Format:  model.Format{Kind: model.FormatNormal},
	}
}

// parseList extracts list items from lines containing "- ". Returns false
// when the marker is absent or no items were found, letting the caller
// fall through to the next format.
func parseList(raw string) (model.Format, bool) {
	if !strings.Contains(raw, listMarker) && !strings.Contains(raw, listMarkerUpper) {
		return model.Format{}, false
	}

	var items []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.Contains(line, itemPrefix) {
			items = append(items, strings.ReplaceAll(line, itemPrefix, ""))
		}
	}
	if len(items) == 0 {
		return model.Format{}, false
	}
	return model.Format{Kind: model.FormatList, Items: items}, true
}

// parseGames scans line by line, accumulating one game at a time. A "- "
// line starts a new game and flushes the previous one; "Platform:" and
// "Tür:" lines fill the current game's fields; any other non-empty line
// becomes the description (last one wins). Lines before the first "- "
// are ignored.
func parseGames(raw string) (model.Format, bool) {
	if !strings.Contains(raw, gameMarker) && !strings.Contains(raw, gameMarkerUpper) {
		return model.Format{}, false
	}

	var games []model.Game
	var current *model.Game

	for _, line := range strings.Split(raw, "\n") {
		switch {
		case strings.Contains(line, itemPrefix):
			if current != nil {
				games = append(games, *current)
			}
			current = &model.Game{Name: strings.ReplaceAll(line, itemPrefix, "")}
		case current == nil:
			// No game started yet.
		case strings.Contains(line, platformPrefix):
			current.Platform = strings.ReplaceAll(line, platformPrefix+" ", "")
		case strings.Contains(line, genrePrefix):
			current.Genre = strings.ReplaceAll(line, genrePrefix+" ", "")
		case line != "":
			current.Description = line
		}
	}
	if current != nil {
		games = append(games, *current)
	}

	if len(games) == 0 {
		return model.Format{}, false
	}
	return model.Format{Kind: model.FormatGameRecommendation, Games: games}, true
}
