// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package prompt assembles the instruction prompt sent to the endpoint.
package prompt

import (
	"strings"

	"github.com/jeranaias/memu-tui/internal/model"
)

// HistoryWindow is the number of trailing messages included in a prompt.
const HistoryWindow = 10

// instructionHeader is the fixed persona and output-format template.
// The %USERNAME% placeholder is substituted at build time.
const instructionHeader = `Sistem: Sen Memu'sun. Türkçe konuşan, arkadaş canlısı ve yardımsever bir yapay zeka asistanısın.

Özellikler:
- Her zaman Memu olarak kendinden bahset
- Emoji kullanmayı sev
- Samimi ve arkadaş canlısı ol
- Türkçe karakterleri doğru kullan
- Kullanıcının adı: %USERNAME%
- Önceki mesajları dikkate al ve tutarlı cevaplar ver

Özel formatlar:
1. Liste formatı:
Bir liste oluştururken şu formatı kullan:
liste:
- öğe 1
- öğe 2
- öğe 3

2. Oyun önerisi formatı:
Oyun önerirken şu formatı kullan:
oyun önerisi:
- [Oyun Adı]
Platform: [Platform]
Tür: [Tür]
[Kısa açıklama]

Sohbet Geçmişi:
`

// Build renders the full prompt: persona instructions, the last
// HistoryWindow messages as "<Label>: <content>" lines, and the new user
// text. The new text enters only through the newText parameter; callers
// must pass the history as it was before appending it, so it is never
// included twice.
func Build(history []model.Message, newText, userName string) string {
	recent := history
	if len(recent) > HistoryWindow {
		recent = recent[len(recent)-HistoryWindow:]
	}

	lines := make([]string, 0, len(recent))
	for _, msg := range recent {
		lines = append(lines, msg.Role.DisplayLabel()+": "+msg.Content)
	}

	var sb strings.Builder
	sb.WriteString(strings.ReplaceAll(instructionHeader, "%USERNAME%", userName))
	sb.WriteString(strings.Join(lines, "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(model.RoleUser.DisplayLabel())
	sb.WriteString(": ")
	sb.WriteString(newText)
	return sb.String()
}
