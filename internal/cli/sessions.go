// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// sessions.go - Saved conversation listing for the memu CLI.
package cli

import (
	"fmt"
	"io"

	"github.com/jeranaias/memu-tui/internal/store"
	"github.com/jeranaias/memu-tui/internal/util"
)

// RunSessions prints the saved conversations as a table.
func RunSessions(conversations *store.ConversationStore, out io.Writer) error {
	printSessions(conversations, out)
	return nil
}

func printSessions(conversations *store.ConversationStore, out io.Writer) {
	metas := conversations.List()
	if len(metas) == 0 {
		fmt.Fprintln(out, "Kayıtlı sohbet yok.")
		return
	}

	titleWidth := len("BAŞLIK")
	for _, meta := range metas {
		if w := util.RuneLen(meta.Title); w > titleWidth {
			titleWidth = w
		}
	}

	fmt.Fprintf(out, "  %s  %s  %s\n",
		util.PadRight("BAŞLIK", titleWidth),
		util.PadRight("MESAJ", 6),
		"SON ETKİNLİK")

	for _, meta := range metas {
		marker := " "
		if meta.Selected {
			marker = "*"
		}
		last := "-"
		if !meta.LastActivity.IsZero() {
			last = meta.LastActivity.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(out, "%s %s  %s  %s\n",
			marker,
			util.PadRight(meta.Title, titleWidth),
			util.PadRight(util.IntToStr(meta.MessageCount), 6),
			last)
	}
}
