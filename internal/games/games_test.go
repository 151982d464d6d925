package games

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CR-AudioViz-AI/crav-games/internal/events"
)

func collectFacts(bus *events.Bus) *[]events.Fact {
	var facts []events.Fact
	events.Subscribe(bus, func(f events.GameStarted) { facts = append(facts, f) })
	events.Subscribe(bus, func(f events.ScoreReported) { facts = append(facts, f) })
	events.Subscribe(bus, func(f events.GameOver) { facts = append(facts, f) })
	events.Subscribe(bus, func(f events.QuestionAnswered) { facts = append(facts, f) })
	return &facts
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "q":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestTriviaReportsStartAndAnswers(t *testing.T) {
	bus := events.NewBus()
	facts := collectFacts(bus)

	m := NewTrivia(bus)
	m.Init()

	if len(*facts) != 1 {
		t.Fatalf("facts after init=%d, want GameStarted only", len(*facts))
	}
	if _, ok := (*facts)[0].(events.GameStarted); !ok {
		t.Fatalf("first fact=%T, want GameStarted", (*facts)[0])
	}

	// Answer the first question correctly: move the cursor to the known
	// answer index, then submit.
	for i := 0; i < triviaDeck[0].Answer; i++ {
		m.Update(key("down"))
	}
	m.Update(key("enter"))

	if m.score != 100 {
		t.Fatalf("score=%d after first correct answer, want 100", m.score)
	}

	var sawAnswer, sawScore bool
	for _, f := range *facts {
		switch f := f.(type) {
		case events.QuestionAnswered:
			if !f.Correct {
				t.Fatalf("answer reported incorrect")
			}
			sawAnswer = true
		case events.ScoreReported:
			if f.Delta != 100 {
				t.Fatalf("score delta=%d, want 100", f.Delta)
			}
			sawScore = true
		}
	}
	if !sawAnswer || !sawScore {
		t.Fatalf("missing facts: answer=%v score=%v", sawAnswer, sawScore)
	}
}

func TestTriviaStreakBonus(t *testing.T) {
	bus := events.NewBus()
	m := NewTrivia(bus)
	m.Init()

	answer := func() {
		t.Helper()
		for i := 0; i < m.question().Answer; i++ {
			m.Update(key("down"))
		}
		m.Update(key("enter")) // submit
		m.Update(key("enter")) // advance
	}

	answer()
	answer()
	answer()
	// 100 + 125 + 150
	if m.score != 375 {
		t.Fatalf("score=%d after 3-streak, want 375", m.score)
	}
}

func TestTriviaQuitReportsGameOver(t *testing.T) {
	bus := events.NewBus()
	facts := collectFacts(bus)

	m := NewTrivia(bus)
	m.Init()
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatalf("quit returned no command")
	}
	if msg, ok := cmd().(DoneMsg); !ok || msg.Game != "trivia" {
		t.Fatalf("cmd msg=%#v, want DoneMsg", cmd())
	}

	last := (*facts)[len(*facts)-1]
	over, ok := last.(events.GameOver)
	if !ok {
		t.Fatalf("last fact=%T, want GameOver", last)
	}
	if over.Won || over.Perfect {
		t.Fatalf("quit run reported won/perfect: %+v", over)
	}
}

func TestMemoryGridAndMatching(t *testing.T) {
	bus := events.NewBus()
	facts := collectFacts(bus)

	m := NewMemory(bus, MemoryEasy)
	m.Init()

	if len(m.cards) != MemoryEasy.Pairs*2 {
		t.Fatalf("cards=%d, want %d", len(m.cards), MemoryEasy.Pairs*2)
	}

	// Count symbols: every symbol appears exactly twice.
	counts := map[rune]int{}
	for _, c := range m.cards {
		counts[c.Symbol]++
	}
	for sym, n := range counts {
		if n != 2 {
			t.Fatalf("symbol %c appears %d times", sym, n)
		}
	}

	// Find a matching pair directly and flip both.
	var first, second int = -1, -1
	for i := 1; i < len(m.cards); i++ {
		if m.cards[i].Symbol == m.cards[0].Symbol {
			first, second = 0, i
			break
		}
	}
	m.cursor = first
	m.pick()
	m.cursor = second
	cmd := m.pick()

	if !m.cards[first].Matched || !m.cards[second].Matched {
		t.Fatalf("pair not matched")
	}
	if m.score != matchPoints {
		t.Fatalf("score=%d, want %d", m.score, matchPoints)
	}
	if cmd != nil && m.matched != m.diff.Pairs {
		t.Fatalf("unexpected command on non-final match")
	}

	sawDelta := false
	for _, f := range *facts {
		if s, ok := f.(events.ScoreReported); ok && s.Delta == matchPoints {
			sawDelta = true
		}
	}
	if !sawDelta {
		t.Fatalf("match did not report a score delta")
	}
}

func TestMemoryMismatchFlipsBack(t *testing.T) {
	bus := events.NewBus()
	m := NewMemory(bus, MemoryEasy)
	m.Init()

	// Find two cards with different symbols.
	var second = -1
	for i := 1; i < len(m.cards); i++ {
		if m.cards[i].Symbol != m.cards[0].Symbol {
			second = i
			break
		}
	}
	m.cursor = 0
	m.pick()
	m.cursor = second
	cmd := m.pick()
	if cmd == nil {
		t.Fatalf("mismatch must schedule a flip-back")
	}
	if m.moves != 1 {
		t.Fatalf("moves=%d, want 1", m.moves)
	}

	m.Update(flipBackMsg{a: 0, b: second})
	if m.cards[0].FaceUp || m.cards[second].FaceUp {
		t.Fatalf("cards still face up after flip-back")
	}
}

func TestNewRegistry(t *testing.T) {
	bus := events.NewBus()
	for _, info := range All() {
		if _, err := New(info.Name, bus); err != nil {
			t.Fatalf("New(%s): %v", info.Name, err)
		}
	}
	if _, err := New("bogus", bus); err == nil {
		t.Fatalf("expected error for unknown game")
	}
}
