package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CR-AudioViz-AI/crav-games/internal/config"
	"github.com/CR-AudioViz-AI/crav-games/internal/engine"
	"github.com/CR-AudioViz-AI/crav-games/internal/events"
	"github.com/CR-AudioViz-AI/crav-games/internal/games"
	"github.com/CR-AudioViz-AI/crav-games/internal/tracker"
	"github.com/CR-AudioViz-AI/crav-games/internal/ui"
)

type boardView int

const (
	viewMenu boardView = iota
	viewCollection
	viewHistory
	viewGame
)

type boardModel struct {
	ctx     context.Context
	svc     *engine.Service
	tracker *tracker.Tracker
	bus     *events.Bus
	cfg     *config.Config

	width  int
	height int

	view     boardView
	selected int

	snap   *engine.Snapshot
	series []engine.SeriesProgress
	bar    progress.Model

	game     tea.Model
	gameName string

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	snap   *engine.Snapshot
	series []engine.SeriesProgress
	err    error
}

type visitedMsg struct{ err error }

type tickMsg time.Time

func newBoardModel(ctx context.Context, svc *engine.Service, tr *tracker.Tracker, bus *events.Bus, cfg *config.Config) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		tracker: tr,
		bus:     bus,
		cfg:     cfg,
		bar:     progress.New(progress.WithDefaultGradient()),
		loading: true,
		lastLog: "Welcome back, " + cfg.PlayerName() + ".",
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.visitCmd(), m.loadCmd(), tickCmd())
}

// visitCmd runs the session-start checks. The tracker is called directly
// here instead of through the bus, so the bus stays on the Update goroutine.
func (m boardModel) visitCmd() tea.Cmd {
	return func() tea.Msg {
		now := time.Now()
		if err := m.tracker.CheckDailyVisit(m.ctx, now); err != nil {
			return visitedMsg{err: err}
		}
		return visitedMsg{err: m.tracker.CheckMidnight(m.ctx, now)}
	}
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.svc.Snapshot(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		series, err := m.svc.SeriesProgress(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{snap: snap, series: series}
	}
}

func (m boardModel) eggCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.tracker.ReportEasterEgg(m.ctx, ""); err != nil {
			return visitedMsg{err: err}
		}
		return m.loadCmd()()
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := msg.Width - 20
		if w < 10 {
			w = 10
		}
		if w > 50 {
			w = 50
		}
		m.bar.Width = w
		if m.game != nil {
			var cmd tea.Cmd
			m.game, cmd = m.game.Update(msg)
			return m, cmd
		}
		return m, nil

	case tickMsg:
		// The banner expires on its own timer; ticking keeps View current.
		return m, tickCmd()

	case visitedMsg:
		if msg.err != nil {
			m.lastLog = "Session check failed: " + msg.err.Error()
			return m, nil
		}
		return m, m.loadCmd()

	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.snap = msg.snap
		m.series = msg.series
		return m, nil

	case games.DoneMsg:
		m.lastLog = fmt.Sprintf("%s over: %d points.", msg.Game, msg.Score)
		m.game = nil
		m.gameName = ""
		m.view = viewMenu
		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.view == viewGame && m.game != nil {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.game, cmd = m.game.Update(msg)
			return m, cmd
		}
		return m.handleBoardKey(msg)
	}

	if m.view == viewGame && m.game != nil {
		var cmd tea.Cmd
		m.game, cmd = m.game.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m boardModel) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// The board feeds the raw key stream to the sequence detectors.
	// Publish is synchronous, so any unlock lands before the reload below.
	m.bus.Publish(events.KeyPressed{Key: key})

	switch key {
	case "ctrl+c", "q":
		if m.view == viewMenu {
			return m, tea.Quit
		}
		m.view = viewMenu
		return m, nil
	case "ctrl+j":
		// The joystick in the footer is more than decoration.
		return m, m.eggCmd()
	case "r":
		m.loading = true
		return m, m.loadCmd()
	case "c":
		m.view = viewCollection
		return m, m.loadCmd()
	case "h":
		m.view = viewHistory
		return m, m.loadCmd()
	case "up", "k":
		if m.view == viewMenu && m.selected > 0 {
			m.selected--
		}
		return m, m.loadCmd()
	case "down", "j":
		if m.view == viewMenu && m.selected < len(games.All())-1 {
			m.selected++
		}
		return m, m.loadCmd()
	case "enter", " ":
		if m.view != viewMenu {
			return m, m.loadCmd()
		}
		infos := games.All()
		if m.selected < 0 || m.selected >= len(infos) {
			return m, nil
		}
		info := infos[m.selected]
		g, err := games.New(info.Name, m.bus)
		if err != nil {
			m.lastLog = "Launch failed: " + err.Error()
			return m, nil
		}
		m.game = g
		m.gameName = info.Name
		m.view = viewGame
		m.lastLog = "Playing " + info.Title + "."
		return m, g.Init()
	}
	// Unbound keys still went to the detectors; refresh in case one hit.
	return m, m.loadCmd()
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.view == viewGame && m.game != nil {
		return m.game.View() + m.renderBanner()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderBanner())
	switch m.view {
	case viewCollection:
		b.WriteString(m.renderCollection())
	case viewHistory:
		b.WriteString(m.renderHistory())
	default:
		b.WriteString(m.renderMenu())
	}
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m boardModel) renderHeader() string {
	title := ui.Title.Render(ui.IconJoystick + " CRAV Arcade")
	if m.loading || m.snap == nil {
		return title + "  " + ui.Muted.Render("loading…")
	}
	total := m.svc.Catalog().Len()
	done := len(m.snap.History)
	pct := 0.0
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	stats := fmt.Sprintf("%s %d XP  %s %d credits  %s %d/%d cards",
		ui.IconBolt, m.snap.TotalXP, ui.IconStar, m.snap.TotalCredits, ui.IconCard, done, total)
	return title + "  " + stats + "\n" + m.bar.ViewAs(pct)
}

func (m boardModel) renderBanner() string {
	note := m.svc.Notifier().Current()
	if note == nil {
		return "\n"
	}
	line := fmt.Sprintf("%s %s  %s %s", ui.IconSparkle, ui.BannerNew,
		ui.RarityStyle(note.Card.Rarity).Render(note.Card.Name), ui.RarityBadge(note.Card.Rarity))
	return "\n" + ui.Panel.Render(line+"\n"+ui.Muted.Render(note.Card.Description)) + "\n"
}

func (m boardModel) renderMenu() string {
	var out []string
	out = append(out, ui.Heading(ui.IconTrophy, "Games"))
	for i, info := range games.All() {
		cursor := "  "
		line := fmt.Sprintf("%s (%s)", info.Title, info.Genre)
		if i == m.selected {
			cursor = "> "
			line = ui.SelectedRow.Render(line)
		}
		out = append(out, cursor+line)
	}
	out = append(out, "")
	if len(m.series) > 0 {
		out = append(out, ui.Heading(ui.IconCard, "Collection"))
		for _, sp := range m.series {
			out = append(out, fmt.Sprintf("  %-10s %s %d/%d",
				sp.Series, ui.ProgressBar(sp.Discovered, sp.Total, 14), sp.Discovered, sp.Total))
		}
	}
	return strings.Join(out, "\n") + "\n"
}

func (m boardModel) renderCollection() string {
	if m.loading || m.snap == nil {
		return "Loading…\n"
	}
	showHints := m.cfg.HintsEnabled()
	var out []string
	for _, name := range m.svc.Catalog().Series() {
		out = append(out, ui.Heading(ui.IconCard, titleCase(name)+" Series"))
		for _, card := range m.svc.Catalog().BySeries(name) {
			out = append(out, "  "+ui.CardLine(card, m.snap.Discovered[card.ID], showHints))
		}
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderHistory() string {
	if m.loading || m.snap == nil {
		return "Loading…\n"
	}
	var out []string
	out = append(out, ui.Heading(ui.IconClock, "Discovery Log"))
	if len(m.snap.History) == 0 {
		out = append(out, ui.Muted.Render("  (nothing discovered yet)"))
	}
	for _, d := range m.snap.History {
		name := d.CardID
		if card, ok := m.svc.Catalog().Get(d.CardID); ok {
			name = card.Name
		}
		out = append(out, fmt.Sprintf("  %s  %-22s %s",
			d.DiscoveredAt.Format("2006-01-02 15:04"), name, ui.Muted.Render("via "+d.Location)))
	}
	return strings.Join(out, "\n") + "\n"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (m boardModel) renderFooter() string {
	keys := "↑/↓ move · enter play · c collection · h history · r refresh · q quit"
	return "\n" + ui.Muted.Render(keys) + "   " + ui.Muted.Render(ui.IconJoystick) + "\n" + m.lastLog + "\n"
}
