package games

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CR-AudioViz-AI/crav-games/internal/events"
	"github.com/CR-AudioViz-AI/crav-games/internal/ui"
)

type triviaQuestion struct {
	Prompt  string
	Choices [4]string
	Answer  int
}

var triviaDeck = []triviaQuestion{
	{
		Prompt:  "Which 1972 arcade game is widely credited with starting the industry?",
		Choices: [4]string{"Space Invaders", "Pong", "Asteroids", "Computer Space"},
		Answer:  1,
	},
	{
		Prompt:  "What does the Konami code end with?",
		Choices: [4]string{"A B", "B A", "Start Select", "Up Down"},
		Answer:  1,
	},
	{
		Prompt:  "Which ghost chases Pac-Man directly?",
		Choices: [4]string{"Blinky", "Pinky", "Inky", "Clyde"},
		Answer:  0,
	},
	{
		Prompt:  "In Space Invaders, what happens as you destroy more aliens?",
		Choices: [4]string{"They slow down", "They speed up", "They multiply", "Nothing"},
		Answer:  1,
	},
	{
		Prompt:  "What shape is the player's ship in Asteroids?",
		Choices: [4]string{"A square", "A circle", "A triangle", "A hexagon"},
		Answer:  2,
	},
	{
		Prompt:  "Which company released Donkey Kong in 1981?",
		Choices: [4]string{"Sega", "Atari", "Namco", "Nintendo"},
		Answer:  3,
	},
	{
		Prompt:  "How many tetromino shapes exist in standard Tetris?",
		Choices: [4]string{"5", "6", "7", "8"},
		Answer:  2,
	},
	{
		Prompt:  "What is the maximum possible score level in classic Snake before the grid fills?",
		Choices: [4]string{"When the snake fills the grid", "255 apples", "100 apples", "There is none"},
		Answer:  0,
	},
	{
		Prompt:  "Breakout was an early project of which future company founders?",
		Choices: [4]string{"Microsoft", "Apple", "Commodore", "IBM"},
		Answer:  1,
	},
	{
		Prompt:  "What was the first commercially successful arcade game?",
		Choices: [4]string{"Pong", "Galaga", "Frogger", "Centipede"},
		Answer:  0,
	},
	{
		Prompt:  "Which game popularized the phrase 'kill screen'?",
		Choices: [4]string{"Tetris", "Pac-Man", "Dig Dug", "Q*bert"},
		Answer:  1,
	},
	{
		Prompt:  "In pinball, what is a 'tilt'?",
		Choices: [4]string{"A bonus round", "A penalty for shaking the machine", "A flipper upgrade", "A high score"},
		Answer:  1,
	},
}

const triviaName = "trivia"

// TriviaModel runs a fixed-deck quiz. Each correct answer scores 100
// points plus a streak bonus; a perfect deck reports a perfect game.
type TriviaModel struct {
	bus *events.Bus

	index    int
	cursor   int
	score    int
	streak   int
	correct  int
	answered int

	revealed bool
	lastGood bool
	started  time.Time
	done     bool
}

func NewTrivia(bus *events.Bus) *TriviaModel {
	return &TriviaModel{bus: bus, started: time.Now()}
}

func (m *TriviaModel) Init() tea.Cmd {
	m.bus.Publish(events.GameStarted{Game: triviaName, Genre: GenreTrivia})
	return nil
}

func (m *TriviaModel) question() triviaQuestion {
	return triviaDeck[m.index]
}

func (m *TriviaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, m.finish(false)
	case "up", "k":
		if !m.revealed && m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if !m.revealed && m.cursor < len(m.question().Choices)-1 {
			m.cursor++
		}
	case "enter", " ":
		if m.revealed {
			return m, m.advance()
		}
		m.submit()
	}
	return m, nil
}

func (m *TriviaModel) submit() {
	q := m.question()
	m.revealed = true
	m.answered++
	m.lastGood = m.cursor == q.Answer

	m.bus.Publish(events.QuestionAnswered{Correct: m.lastGood})

	if m.lastGood {
		m.streak++
		m.correct++
		points := 100 + 25*(m.streak-1)
		m.score += points
		m.bus.Publish(events.ScoreReported{Game: triviaName, Delta: points})
	} else {
		m.streak = 0
	}
}

func (m *TriviaModel) advance() tea.Cmd {
	m.revealed = false
	m.cursor = 0
	m.index++
	if m.index >= len(triviaDeck) {
		return m.finish(true)
	}
	return nil
}

func (m *TriviaModel) finish(completed bool) tea.Cmd {
	if m.done {
		return nil
	}
	m.done = true
	m.bus.Publish(events.GameOver{
		Game:     triviaName,
		Genre:    GenreTrivia,
		Score:    m.score,
		Won:      completed,
		Perfect:  completed && m.correct == len(triviaDeck),
		Duration: time.Since(m.started),
	})
	score := m.score
	return func() tea.Msg { return DoneMsg{Game: triviaName, Score: score} }
}

func (m *TriviaModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	q := m.question()

	b.WriteString(ui.Heading(ui.IconJoystick, "Retro Trivia"))
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(fmt.Sprintf("Question %d/%d  ·  Score %d  ·  Streak %d",
		m.index+1, len(triviaDeck), m.score, m.streak)))
	b.WriteString("\n\n")
	b.WriteString(q.Prompt)
	b.WriteString("\n\n")

	for i, choice := range q.Choices {
		line := "  " + choice
		switch {
		case m.revealed && i == q.Answer:
			line = ui.Good.Render("✔ " + choice)
		case m.revealed && i == m.cursor && !m.lastGood:
			line = ui.Bad.Render("✘ " + choice)
		case !m.revealed && i == m.cursor:
			line = ui.SelectedRow.Render("> " + choice)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.revealed {
		if m.lastGood {
			b.WriteString(ui.Good.Render("Correct!"))
		} else {
			b.WriteString(ui.Bad.Render("Wrong."))
		}
		b.WriteString(ui.Muted.Render("  enter: next question"))
	} else {
		b.WriteString(ui.Muted.Render("↑/↓ select · enter answer · q quit"))
	}
	b.WriteString("\n")
	return b.String()
}
