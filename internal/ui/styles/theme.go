// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application. It detects
// the terminal's color capability and follows the user's accent color
// preference.
type Theme struct {
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	Accent lipgloss.TerminalColor

	// ==========================================================================
	// HEADER AND STATUS STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	StatusBar   lipgloss.Style
	Shortcut    lipgloss.Style
	Composing   lipgloss.Style

	// ==========================================================================
	// MESSAGE STYLES
	// ==========================================================================

	UserLabel      lipgloss.Style
	AssistantLabel lipgloss.Style
	MessageText    lipgloss.Style
	ApologyText    lipgloss.Style
	Timestamp      lipgloss.Style

	ListBullet lipgloss.Style
	ListItem   lipgloss.Style

	GameCard  lipgloss.Style
	GameName  lipgloss.Style
	GameField lipgloss.Style
	GameValue lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style

	// ==========================================================================
	// OVERLAY STYLES
	// ==========================================================================

	OverlayBox   lipgloss.Style
	OverlayTitle lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	ItemMeta     lipgloss.Style
	Swatch       lipgloss.Style
}

// NewTheme creates a theme for the given accent color preference
// (a bare hex string like "58A6FF").
func NewTheme(accentHex string) *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
		Accent:       AccentColor(accentHex),
	}

	t.initStyles()
	return t
}

// SetAccent swaps the accent color and rebuilds the dependent styles.
func (t *Theme) SetAccent(accentHex string) {
	t.Accent = AccentColor(accentHex)
	t.initStyles()
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Header and status
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.Shortcut = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.Composing = lipgloss.NewStyle().
		Foreground(Amber).
		Italic(true)

	// Messages
	t.UserLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	t.AssistantLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(Emerald)

	t.MessageText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.ApologyText = lipgloss.NewStyle().
		Foreground(Rose)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ListBullet = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ListItem = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.GameCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)

	t.GameName = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	t.GameField = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.GameValue = lipgloss.NewStyle().
		Foreground(TextPrimary)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	// Overlays
	t.OverlayBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 2)

	t.OverlayTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	t.Item = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.ItemSelected = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ItemMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Swatch = lipgloss.NewStyle().
		Bold(true)
}
