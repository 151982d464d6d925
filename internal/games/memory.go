package games

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CR-AudioViz-AI/crav-games/internal/events"
	"github.com/CR-AudioViz-AI/crav-games/internal/ui"
)

// MemoryDifficulty sizes the pair grid.
type MemoryDifficulty struct {
	Name      string
	Pairs     int
	Cols      int
	TimeBonus int // per-pair bonus budget, eroded by elapsed seconds
}

var (
	MemoryEasy   = MemoryDifficulty{Name: "easy", Pairs: 6, Cols: 4, TimeBonus: 100}
	MemoryMedium = MemoryDifficulty{Name: "medium", Pairs: 8, Cols: 4, TimeBonus: 80}
	MemoryHard   = MemoryDifficulty{Name: "hard", Pairs: 12, Cols: 6, TimeBonus: 60}
)

var memorySymbols = []rune("♠♥♦♣★☀☽♪☂⚓⚡❄☘☮⚙✈")

const (
	memoryName       = "memory"
	matchPoints      = 150
	memoryFlipMillis = 700
)

type memoryCard struct {
	Symbol  rune
	FaceUp  bool
	Matched bool
}

type flipBackMsg struct{ a, b int }

// MemoryModel is a pair-matching grid. A perfect game finds every pair
// without a single miss.
type MemoryModel struct {
	bus  *events.Bus
	diff MemoryDifficulty

	cards   []memoryCard
	cursor  int
	first   int // index of the face-up unmatched pick, -1 when none
	waiting bool

	moves   int
	matched int
	score   int
	started time.Time
	done    bool
}

func NewMemory(bus *events.Bus, diff MemoryDifficulty) *MemoryModel {
	cards := make([]memoryCard, 0, diff.Pairs*2)
	for i := 0; i < diff.Pairs; i++ {
		sym := memorySymbols[i%len(memorySymbols)]
		cards = append(cards, memoryCard{Symbol: sym}, memoryCard{Symbol: sym})
	}
	rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })

	return &MemoryModel{
		bus:     bus,
		diff:    diff,
		cards:   cards,
		first:   -1,
		started: time.Now(),
	}
}

func (m *MemoryModel) Init() tea.Cmd {
	m.bus.Publish(events.GameStarted{Game: memoryName, Genre: GenrePuzzle})
	return nil
}

func (m *MemoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case flipBackMsg:
		m.cards[msg.a].FaceUp = false
		m.cards[msg.b].FaceUp = false
		m.waiting = false
		return m, nil
	case tea.KeyMsg:
		if m.done {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, m.finish(false)
		case "left", "h":
			if m.cursor%m.diff.Cols > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor%m.diff.Cols < m.diff.Cols-1 && m.cursor+1 < len(m.cards) {
				m.cursor++
			}
		case "up", "k":
			if m.cursor-m.diff.Cols >= 0 {
				m.cursor -= m.diff.Cols
			}
		case "down", "j":
			if m.cursor+m.diff.Cols < len(m.cards) {
				m.cursor += m.diff.Cols
			}
		case "enter", " ":
			return m, m.pick()
		}
	}
	return m, nil
}

func (m *MemoryModel) pick() tea.Cmd {
	if m.waiting {
		return nil
	}
	c := &m.cards[m.cursor]
	if c.FaceUp || c.Matched {
		return nil
	}
	c.FaceUp = true

	if m.first < 0 {
		m.first = m.cursor
		return nil
	}

	m.moves++
	a, b := m.first, m.cursor
	m.first = -1

	if m.cards[a].Symbol == m.cards[b].Symbol {
		m.cards[a].Matched = true
		m.cards[b].Matched = true
		m.matched++
		m.score += matchPoints
		m.bus.Publish(events.ScoreReported{Game: memoryName, Delta: matchPoints})
		if m.matched == m.diff.Pairs {
			return m.finish(true)
		}
		return nil
	}

	m.waiting = true
	return tea.Tick(memoryFlipMillis*time.Millisecond, func(time.Time) tea.Msg {
		return flipBackMsg{a: a, b: b}
	})
}

func (m *MemoryModel) finish(won bool) tea.Cmd {
	if m.done {
		return nil
	}
	m.done = true

	if won {
		elapsed := int(time.Since(m.started).Seconds())
		bonus := m.diff.TimeBonus*m.diff.Pairs - elapsed
		if bonus > 0 {
			m.score += bonus
			m.bus.Publish(events.ScoreReported{Game: memoryName, Delta: bonus})
		}
	}

	m.bus.Publish(events.GameOver{
		Game:     memoryName,
		Genre:    GenrePuzzle,
		Score:    m.score,
		Won:      won,
		Perfect:  won && m.moves == m.diff.Pairs,
		Duration: time.Since(m.started),
	})
	score := m.score
	return func() tea.Msg { return DoneMsg{Game: memoryName, Score: score} }
}

func (m *MemoryModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconJoystick, "Memory Match ("+m.diff.Name+")"))
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(fmt.Sprintf("Matched %d/%d  ·  Moves %d  ·  Score %d",
		m.matched, m.diff.Pairs, m.moves, m.score)))
	b.WriteString("\n\n")

	for i, c := range m.cards {
		cell := "[ ]"
		switch {
		case c.Matched:
			cell = ui.Good.Render("[" + string(c.Symbol) + "]")
		case c.FaceUp:
			cell = ui.Gold.Render("[" + string(c.Symbol) + "]")
		}
		if i == m.cursor {
			cell = ui.SelectedRow.Render(cell)
		}
		b.WriteString(cell)
		if (i+1)%m.diff.Cols == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}

	b.WriteString("\n")
	b.WriteString(ui.Muted.Render("arrows move · enter flip · q quit"))
	b.WriteString("\n")
	return b.String()
}
