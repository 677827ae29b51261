// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package format parses raw assistant replies into presentation formats.
package format

import (
	"testing"

	"github.com/jeranaias/memu-tui/internal/model"
)

// =============================================================================
// LIST FORMAT TESTS
// =============================================================================

func TestParse_List(t *testing.T) {
	raw := "liste:\n- a\n- b"
	got := Parse(raw)

	if got.Format.Kind != model.FormatList {
		t.Fatalf("Kind = %v, want list", got.Format.Kind)
	}
	if got.Content != raw {
		t.Errorf("Content = %q, want raw input", got.Content)
	}
	if len(got.Format.Items) != 2 {
		t.Fatalf("Items count = %d, want 2", len(got.Format.Items))
	}
	if got.Format.Items[0] != "a" || got.Format.Items[1] != "b" {
		t.Errorf("Items = %v, want [a b]", got.Format.Items)
	}
}

func TestParse_ListCapitalizedMarker(t *testing.T) {
	got := Parse("Liste:\n- elma\n- armut")

	if got.Format.Kind != model.FormatList {
		t.Fatalf("Kind = %v, want list", got.Format.Kind)
	}
	if len(got.Format.Items) != 2 {
		t.Errorf("Items count = %d, want 2", len(got.Format.Items))
	}
}

func TestParse_ListMarkerWithoutItems(t *testing.T) {
	// Marker present but no "- " lines: falls through to normal.
	got := Parse("liste:\nama madde yok")

	if got.Format.Kind != model.FormatNormal {
		t.Errorf("Kind = %v, want normal fallthrough", got.Format.Kind)
	}
}

func TestParse_ListWinsOverGames(t *testing.T) {
	// Both markers present: the list check runs first.
	raw := "liste:\noyun önerisi:\n- tek satır"
	got := Parse(raw)

	if got.Format.Kind != model.FormatList {
		t.Errorf("Kind = %v, want list priority", got.Format.Kind)
	}
}

// =============================================================================
// GAME RECOMMENDATION TESTS
// =============================================================================

func TestParse_GameRecommendation(t *testing.T) {
	raw := "oyun önerisi:\n- Game A\nPlatform: PC\nTür: RPG\ndesc one"
	got := Parse(raw)

	if got.Format.Kind != model.FormatGameRecommendation {
		t.Fatalf("Kind = %v, want gameRecommendation", got.Format.Kind)
	}
	if len(got.Format.Games) != 1 {
		t.Fatalf("Games count = %d, want 1", len(got.Format.Games))
	}

	game := got.Format.Games[0]
	if game.Name != "Game A" {
		t.Errorf("Name = %q, want 'Game A'", game.Name)
	}
	if game.Platform != "PC" {
		t.Errorf("Platform = %q, want 'PC'", game.Platform)
	}
	if game.Genre != "RPG" {
		t.Errorf("Genre = %q, want 'RPG'", game.Genre)
	}
	if game.Description != "desc one" {
		t.Errorf("Description = %q, want 'desc one'", game.Description)
	}
}

func TestParse_MultipleGames(t *testing.T) {
	raw := "Oyun önerisi:\n- Birinci\nPlatform: PS5\n- İkinci\nTür: Yarış"
	got := Parse(raw)

	if got.Format.Kind != model.FormatGameRecommendation {
		t.Fatalf("Kind = %v, want gameRecommendation", got.Format.Kind)
	}
	if len(got.Format.Games) != 2 {
		t.Fatalf("Games count = %d, want 2", len(got.Format.Games))
	}
	if got.Format.Games[0].Name != "Birinci" || got.Format.Games[0].Platform != "PS5" {
		t.Errorf("First game = %+v", got.Format.Games[0])
	}
	if got.Format.Games[1].Name != "İkinci" || got.Format.Games[1].Genre != "Yarış" {
		t.Errorf("Second game = %+v", got.Format.Games[1])
	}
}

func TestParse_GameDescriptionLastWins(t *testing.T) {
	raw := "oyun önerisi:\n- Oyun\nilk açıklama\nson açıklama"
	got := Parse(raw)

	if len(got.Format.Games) != 1 {
		t.Fatalf("Games count = %d, want 1", len(got.Format.Games))
	}
	if got.Format.Games[0].Description != "son açıklama" {
		t.Errorf("Description = %q, want last non-empty line", got.Format.Games[0].Description)
	}
}

func TestParse_GameMarkerWithoutGames(t *testing.T) {
	got := Parse("oyun önerisi:\nsadece metin")

	if got.Format.Kind != model.FormatNormal {
		t.Errorf("Kind = %v, want normal fallthrough", got.Format.Kind)
	}
}

func TestParse_LinesBeforeFirstGameIgnored(t *testing.T) {
	raw := "oyun önerisi:\nbu satır atlanır\n- Oyun"
	got := Parse(raw)

	if got.Format.Kind != model.FormatGameRecommendation {
		t.Fatalf("Kind = %v, want gameRecommendation", got.Format.Kind)
	}
	if got.Format.Games[0].Description != "" {
		t.Errorf("Description = %q, want empty (line precedes first game)", got.Format.Games[0].Description)
	}
}

// =============================================================================
// NORMAL FORMAT TESTS
// =============================================================================

func TestParse_NormalIdentity(t *testing.T) {
	// Content passes through unchanged for any input without a marker.
	inputs := []string{
		"",
		"Selam! 😊",
		"çok satırlı\nmetin\nörneği",
		"- madde var ama marker yok",
		"Platform: PC",
	}
	for _, raw := range inputs {
		got := Parse(raw)
		if got.Format.Kind != model.FormatNormal {
			t.Errorf("Parse(%q).Kind = %v, want normal", raw, got.Format.Kind)
		}
		if got.Content != raw {
			t.Errorf("Parse(%q).Content = %q, want input unchanged", raw, got.Content)
		}
	}
}
