package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akshat/quizzy/internal/api"
	"github.com/akshat/quizzy/internal/config"
	"github.com/akshat/quizzy/internal/feedback"
	"github.com/akshat/quizzy/internal/router"
	"github.com/akshat/quizzy/internal/screen"
	quizscreen "github.com/akshat/quizzy/internal/screens/quiz"
	"github.com/akshat/quizzy/internal/screens/welcome"
	"github.com/akshat/quizzy/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Client *api.Client
	Config config.Config
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the welcome screen. Every
// session start builds a fresh quiz screen so no state leaks between
// sessions.
func newAppModel(opts Options) AppModel {
	player := feedback.NewPlayer()
	quizFactory := func() screen.Screen {
		return quizscreen.New(opts.Client, opts.Config, player)
	}
	return AppModel{
		router: router.New(welcome.New(quizFactory)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var stats layout.Stats
	if sp, ok := active.(screen.StatsProvider); ok {
		stats = sp.Stats()
	}
	header := layout.RenderHeader(title, stats, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
