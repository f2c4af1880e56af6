package docs

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)
)

// model is the interactive docs browser: a chapter list on the first
// screen, the chapter's pages on the second.
type model struct {
	cursor   int
	chapter  *Chapter
	quitting bool
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.chapter == nil && m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.chapter == nil && m.cursor < len(Chapters)-1 {
			m.cursor++
		}

	case "enter":
		if m.chapter == nil {
			m.chapter = &Chapters[m.cursor]
		}

	case "esc", "backspace":
		m.chapter = nil
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	if m.chapter == nil {
		b.WriteString(titleStyle.Render("krapi docs") + "\n\n")
		for i, ch := range Chapters {
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("> "+ch.Title) + "\n")
			} else {
				b.WriteString(normalStyle.Render(ch.Title) + "\n")
			}
		}
		b.WriteString(dimStyle.Render("\nj/k: move  enter: open  q: quit\n"))
		return b.String()
	}

	b.WriteString(titleStyle.Render(m.chapter.Title) + "\n\n")
	if m.chapter.Intro != "" {
		b.WriteString(dimStyle.Render(m.chapter.Intro) + "\n\n")
	}
	for _, p := range m.chapter.Pages {
		b.WriteString(renderPage(p) + "\n")
	}
	b.WriteString(dimStyle.Render("esc: back  q: quit\n"))
	return b.String()
}

// Browse opens the interactive documentation browser.
func Browse() error {
	if _, err := tea.NewProgram(model{}).Run(); err != nil {
		return fmt.Errorf("docs browser: %w", err)
	}
	return nil
}
