// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package prompt assembles the instruction prompt sent to the endpoint.
package prompt

import (
	"strings"
	"testing"

	"github.com/jeranaias/memu-tui/internal/model"
	"github.com/jeranaias/memu-tui/internal/util"
)

func TestBuild_ContainsPersonaAndUserName(t *testing.T) {
	got := Build(nil, "Merhaba", "Edex")

	if !strings.Contains(got, "Sen Memu'sun") {
		t.Error("Prompt should contain the persona instruction")
	}
	if !strings.Contains(got, "Kullanıcının adı: Edex") {
		t.Error("Prompt should embed the user name")
	}
	if !strings.HasSuffix(got, "Kullanıcı: Merhaba") {
		t.Errorf("Prompt should end with the new user text, got tail %q", util.TruncateRunes(got[len(got)-40:], 40))
	}
}

func TestBuild_HistoryLabels(t *testing.T) {
	history := []model.Message{
		model.NewUserMessage("soru"),
		model.NewAssistantMessage("cevap"),
	}

	got := Build(history, "devam", "Kullanıcı")

	if !strings.Contains(got, "Kullanıcı: soru") {
		t.Error("User history line missing or mislabeled")
	}
	if !strings.Contains(got, "Memu: cevap") {
		t.Error("Assistant history line missing or mislabeled")
	}
}

func TestBuild_WindowKeepsLastTen(t *testing.T) {
	var history []model.Message
	for i := 0; i < 15; i++ {
		history = append(history, model.NewUserMessage("mesaj-"+util.IntToStr(i)))
	}

	got := Build(history, "yeni", "Kullanıcı")

	if strings.Contains(got, "mesaj-4\n") {
		t.Error("Messages outside the 10-message window should be dropped")
	}
	for i := 5; i < 15; i++ {
		if !strings.Contains(got, "mesaj-"+util.IntToStr(i)) {
			t.Errorf("Message %d inside the window is missing", i)
		}
	}

	// Oldest of the window comes first.
	idx5 := strings.Index(got, "mesaj-5")
	idx14 := strings.Index(got, "mesaj-14")
	if idx5 < 0 || idx14 < 0 || idx5 > idx14 {
		t.Error("Window should be rendered oldest first")
	}
}

func TestBuild_FormatExamplesPresent(t *testing.T) {
	got := Build(nil, "oyun öner", "Kullanıcı")

	if !strings.Contains(got, "liste:") {
		t.Error("List format example missing")
	}
	if !strings.Contains(got, "oyun önerisi:") {
		t.Error("Game format example missing")
	}
}
