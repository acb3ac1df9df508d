package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const scoreboardRuns = 50

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("10")).
			Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

type scoreboardKeys struct {
	Scroll key.Binding
	Rules  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Rules, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Rules:  key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab", "shift+tab"), key.WithHelp("←/→", "rules")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows recorded runs per rule variant together with the
// all-time high score from the high score file.
type ScoreboardModel struct {
	variants  []registry.GameInfo
	current   int
	store     *storage.Store // may be nil when history is unavailable
	highScore int

	stats *storage.GameStats
	runs  []storage.ScoreEntry

	table  table.Model
	help   help.Model
	keys   scoreboardKeys
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first variant.
func NewScoreboardModel(store *storage.Store, highScore, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants:  registry.List(),
		store:     store,
		highScore: highScore,
		help:      help.New(),
		keys:      newScoreboardKeys(),
		width:     width,
		height:    height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Apples", Width: 7},
			{Title: "Length", Width: 7},
			{Title: "Played", Width: 16},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("10"))
	t.SetStyles(s)
	return t
}

// load fetches the runs of the current variant. Storage errors show as an
// empty board.
func (m *ScoreboardModel) load() {
	m.stats, m.runs = nil, nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.current].ID
		if runs, err := m.store.TopScores(id, scoreboardRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Score + 1), // One segment per apple plus the head
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// step moves the variant cursor by delta, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.current = (m.current + delta + n) % n
	m.load()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Rules):
			switch msg.String() {
			case "left", "h", "shift+tab":
				m.step(-1)
			default:
				m.step(1)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(3, m.height-10))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("S C O R E S"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("All-time high: %d", m.highScore), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(boardDimStyle.Render(m.summary()), m.width))
	b.WriteString("\n\n")

	var body string
	if len(m.runs) == 0 {
		body = boardDimStyle.Italic(true).Padding(1, 4).
			Render("No runs recorded yet.\nEat some apples to get on the board!")
	} else {
		body = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(body)))
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			tabs[i] = boardActiveTab.Render(v.Title)
		} else {
			tabs[i] = boardTabStyle.Render(v.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width-2 && len(m.variants) > 0 {
		return boardActiveTab.Render("< " + m.variants[m.current].Title + " >")
	}
	return line
}

func (m ScoreboardModel) summary() string {
	if m.stats == nil {
		return "Runs: 0"
	}
	return fmt.Sprintf("Runs: %d  Best: %d  Average: %.1f", m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore)
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard in its own program.
// It returns true when the user went back rather than quitting.
func RunScoreboard(store *storage.Store, highScore, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, highScore, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
