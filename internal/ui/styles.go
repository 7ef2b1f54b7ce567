package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DisableColor strips color and boldness from all subsequent renders.
// Styles consult the renderer profile at render time, so flipping it
// here affects every helper in this package.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Color palette.
var (
	ColorSuccess   = lipgloss.Color("#00D26A") // green  — success, up to date
	ColorWarning   = lipgloss.Color("#FFB800") // yellow — warning
	ColorError     = lipgloss.Color("#FF4444") // red    — error, stale output
	ColorCode      = lipgloss.Color("#00B4D8") // cyan   — generated code, digests
	ColorValue     = lipgloss.Color("#FFFFFF") // white bold — counts, paths
	ColorMeta      = lipgloss.Color("#555555") // dim gray  — hints, metadata
	ColorBorder    = lipgloss.Color("#1E3A5F") // dark blue — UI chrome
	ColorAccent    = lipgloss.Color("#9B5DE5") // purple    — titles, type names
	ColorHighlight = lipgloss.Color("#F15BB5") // pink      — selected rows
)

// Base styles.
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleCode    = lipgloss.NewStyle().Foreground(ColorCode)
	StyleValue   = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	StyleMeta    = lipgloss.NewStyle().Foreground(ColorMeta)
	StyleAccent  = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)

	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Underline(true)

	StyleSelected = lipgloss.NewStyle().
			Background(ColorHighlight).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			MarginBottom(1)

	StyleDim = lipgloss.NewStyle().Foreground(ColorMeta)
)

// Success formats a success message.
func Success(msg string) string { return StyleSuccess.Render("✓ " + msg) }

// Warn formats a warning message.
func Warn(msg string) string { return StyleWarning.Render("⚠ " + msg) }

// Err formats an error message.
func Err(msg string) string { return StyleError.Render("✗ " + msg) }

// Code formats a code snippet or digest.
func Code(s string) string { return StyleCode.Render(s) }

// Val formats a value.
func Val(v string) string { return StyleValue.Render(v) }

// Meta formats metadata text.
func Meta(m string) string { return StyleMeta.Render(m) }

// TypeName formats a Solidity type name.
func TypeName(n string) string { return StyleAccent.Render(n) }

// TruncateDigest shortens a 0x-prefixed digest for display: 0x1234…5678.
func TruncateDigest(d string) string {
	if len(d) <= 10 {
		return d
	}
	return d[:6] + "…" + d[len(d)-4:]
}
