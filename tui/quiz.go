// Package tui is the interactive quiz game over the station catalogue,
// built on bubbletea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "answer/next")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the root bubbletea model for the quiz.
type Model struct {
	questions []Question
	index     int
	cursor    int
	score     int
	answered  bool
	lastRight bool
	done      bool
	width     int
}

// NewModel creates a quiz model over a prepared question list.
func NewModel(questions []Question) *Model {
	return &Model{questions: questions}
}

// Score returns the number of correct answers so far.
func (m *Model) Score() int { return m.score }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if !m.answered && m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if !m.answered && m.cursor < len(m.current().Options)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Select):
			if m.done {
				return m, tea.Quit
			}
			if !m.answered {
				m.answered = true
				m.lastRight = m.cursor == m.current().Answer
				if m.lastRight {
					m.score++
				}
			} else {
				m.advance()
			}
		}
	}
	return m, nil
}

func (m *Model) current() Question {
	return m.questions[m.index]
}

func (m *Model) advance() {
	if m.index+1 >= len(m.questions) {
		m.done = true
		return
	}
	m.index++
	m.cursor = 0
	m.answered = false
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Station Roulette"))
	b.WriteString("\n\n")

	if m.done {
		b.WriteString(fmt.Sprintf("Final score: %d/%d\n\n", m.score, len(m.questions)))
		b.WriteString(faintStyle.Render("enter/q to exit"))
		b.WriteString("\n")
		return b.String()
	}

	q := m.current()
	b.WriteString(fmt.Sprintf("Question %d of %d — score %d\n\n", m.index+1, len(m.questions), m.score))
	b.WriteString("Which line serves ")
	b.WriteString(stationStyle.Render(q.Station.String()))
	b.WriteString("?\n\n")

	for i, opt := range q.Options {
		line := "  " + opt
		switch {
		case m.answered && i == q.Answer:
			line = correctStyle.Render("✓ " + opt)
		case m.answered && i == m.cursor && !m.lastRight:
			line = wrongStyle.Render("✗ " + opt)
		case !m.answered && i == m.cursor:
			line = selectedStyle.Render("> " + opt)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.answered {
		if m.lastRight {
			b.WriteString(correctStyle.Render("Correct!"))
		} else {
			b.WriteString(wrongStyle.Render("Wrong — it's the " + q.Options[q.Answer] + "."))
		}
		b.WriteString("\n")
		b.WriteString(faintStyle.Render("enter for next question"))
	} else {
		b.WriteString(faintStyle.Render("↑/↓ to choose, enter to answer, q to quit"))
	}
	b.WriteString("\n")
	return b.String()
}

// Run starts the quiz and blocks until the player quits or finishes.
// It returns the final score.
func Run(questions []Question) (int, error) {
	m := NewModel(questions)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return 0, err
	}
	return m.score, nil
}
