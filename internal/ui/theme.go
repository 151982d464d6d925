package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CR-AudioViz-AI/crav-games/internal/catalog"
)

// CRAV Games theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconJoystick = "🕹️"
	IconSparkle  = "✨"
	IconCard     = "🃏"
	IconTrophy   = "🏆"
	IconBolt     = "⚡"
	IconLocked   = "🔒"
	IconSecret   = "❓"
	IconError    = "🧨"
	IconFire     = "🔥"
	IconClock    = "⏰"
	IconStar     = "⭐"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BannerNew = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("NEW CARD")
)

// Per-rarity styles, mirroring the collection's color tiers.
var rarityStyles = map[catalog.Rarity]lipgloss.Style{
	catalog.RarityCommon:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	catalog.RarityUncommon:  lipgloss.NewStyle().Foreground(lipgloss.Color("41")),
	catalog.RarityRare:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	catalog.RarityEpic:      lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	catalog.RarityLegendary: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	catalog.RarityMythic:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
}

func RarityStyle(r catalog.Rarity) lipgloss.Style {
	if s, ok := rarityStyles[r]; ok {
		return s
	}
	return Muted
}

// RarityBadge renders the rarity label in its tier color.
func RarityBadge(r catalog.Rarity) string {
	return RarityStyle(r).Render(strings.ToUpper(string(r)))
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// CardLine renders a one-line card entry for lists: name in rarity color,
// or the locked placeholder for undiscovered cards.
func CardLine(card catalog.Card, isDiscovered bool, showHint bool) string {
	if isDiscovered {
		return fmt.Sprintf("%s %s  %s", IconCard, RarityStyle(card.Rarity).Render(card.Name), RarityBadge(card.Rarity))
	}
	if card.Secret {
		return fmt.Sprintf("%s %s", IconSecret, Muted.Render("???"))
	}
	line := fmt.Sprintf("%s %s", IconLocked, Muted.Render(card.Name))
	if showHint {
		line += "  " + Muted.Render("("+card.HintText()+")")
	}
	return line
}

func ProgressBar(done, total, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
