package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-rescue/internal/registry"
	"github.com/vovakirdan/tui-rescue/internal/storage"
)

// boardView selects what the scoreboard table lists.
type boardView int

const (
	viewBest boardView = iota // Top scores of the selected game
	viewRuns                  // Recent missions of the selected game
)

func (v boardView) String() string {
	if v == viewRuns {
		return "Recent missions"
	}
	return "Best scores"
}

const (
	minWidthForSidebar = 80
	sidebarWidth       = 26
	maxScores          = 100
	maxRuns            = 50
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextGame   key.Binding
	PrevGame   key.Binding
	SwitchView key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextGame, k.SwitchView, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextGame, k.PrevGame, k.SwitchView},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextGame:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		PrevGame:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		SwitchView: key.NewBinding(key.WithKeys("v", " "), key.WithHelp("v", "scores/missions")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best scores and the recent missions of each
// registered game.
type ScoreboardModel struct {
	store  *storage.Store // nil shows empty tables
	games  []registry.GameInfo
	best   map[string]int // Best score per game, for the sidebar
	cursor int
	view   boardView

	scores []storage.ScoreEntry
	runs   []storage.Run
	stats  *storage.GameStats

	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over every registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	return newScoreboard(store, registry.List(), width, height)
}

func newScoreboard(store *storage.Store, games []registry.GameInfo, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  games,
		best:   make(map[string]int),
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	if store != nil {
		if all, err := store.GetAllGamesStats(); err == nil {
			for id, st := range all {
				m.best[id] = st.HighScore
			}
		}
	}
	m.reload()
	return m
}

// gameID returns the selected game, or "" when nothing is registered.
func (m *ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.cursor].ID
}

// reload fetches the selected game's data and rebuilds the table.
func (m *ScoreboardModel) reload() {
	m.scores, m.runs, m.stats = nil, nil, nil
	if id := m.gameID(); id != "" && m.store != nil {
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if runs, err := m.store.RecentRuns(id, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.rebuildTable()
}

func (m *ScoreboardModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

// tableWidth is the room left for table columns inside the border.
func (m *ScoreboardModel) tableWidth() int {
	w := m.width - 6
	if m.showSidebar() {
		w -= sidebarWidth + 4
	}
	return max(w, 30)
}

func (m *ScoreboardModel) columns() []table.Column {
	w := m.tableWidth()
	if m.view == viewRuns {
		cols := []table.Column{
			{Title: "When", Width: 14},
			{Title: "Result", Width: 7},
			{Title: "Saved", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Time", Width: 6},
		}
		// Seed gets what is left, it is the longest value.
		used := 0
		for _, c := range cols {
			used += c.Width + 2
		}
		return append(cols, table.Column{Title: "Seed", Width: min(max(w-used, 6), 20)})
	}
	return []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 10},
		{Title: "When", Width: min(max(w-19, 10), 24)},
	}
}

func (m *ScoreboardModel) rows() []table.Row {
	if m.view == viewRuns {
		rows := make([]table.Row, 0, len(m.runs))
		for _, r := range m.runs {
			rows = append(rows, table.Row{
				humanize.Time(r.CreatedAt),
				outcomeLabel(r.Won),
				fmt.Sprintf("%d/%d", r.Rescues, r.Target),
				humanize.Comma(int64(r.Score)),
				clockTime(r.Duration),
				fmt.Sprintf("%d", r.Seed),
			})
		}
		return rows
	}
	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d.", i+1),
			humanize.Comma(int64(s.Score)),
			humanize.Time(s.CreatedAt),
		})
	}
	return rows
}

func (m *ScoreboardModel) rebuildTable() {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("16")).
		Background(lipgloss.Color("43"))
	t.SetStyles(s)
	m.table = t
}

// outcomeLabel names a finished mission's outcome.
func outcomeLabel(won bool) string {
	if won {
		return "won"
	}
	return "lost"
}

// clockTime formats a mission length as m:ss.
func clockTime(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
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
		case key.Matches(msg, m.keys.NextGame):
			m.selectGame(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.selectGame(-1)
			return m, nil
		case key.Matches(msg, m.keys.SwitchView):
			m.view = 1 - m.view
			m.rebuildTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selectGame moves the game cursor by step, wrapping around.
func (m *ScoreboardModel) selectGame(step int) {
	if len(m.games) == 0 {
		return
	}
	m.cursor = (m.cursor + step + len(m.games)) % len(m.games)
	m.reload()
}

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("43"))
	boardDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Underline(true)
	boardFrameStyle  = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "SCOREBOARD"
	if len(m.games) > 0 {
		title += "  " + m.games[m.cursor].Title
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.viewTabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(boardDimStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")

	body := boardFrameStyle.Render(m.tableContent())
	if m.showSidebar() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", body)
	}
	b.WriteString(centerBlock(body, m.width))

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// viewTabs shows both views with the active one highlighted.
func (m ScoreboardModel) viewTabs() string {
	tabs := make([]string, 0, 2)
	for _, v := range []boardView{viewBest, viewRuns} {
		if v == m.view {
			tabs = append(tabs, boardActiveStyle.Render(v.String()))
		} else {
			tabs = append(tabs, boardDimStyle.Render(v.String()))
		}
	}
	return strings.Join(tabs, "   ")
}

// statsLine summarizes missions played for the selected game.
func (m ScoreboardModel) statsLine() string {
	st := m.stats
	if st == nil || st.GamesCount == 0 {
		return "No missions flown yet"
	}
	return fmt.Sprintf("Missions: %d  Won: %d  Lost: %d  Citizens helped: %s  Last: %s",
		st.GamesCount, st.Wins, st.Losses,
		humanize.Comma(int64(st.TotalRescues)), humanize.Time(st.LastPlayed))
}

// sidebar lists the games with their best score.
func (m ScoreboardModel) sidebar() string {
	var b strings.Builder
	for i, g := range m.games {
		name := g.Title
		if limit := sidebarWidth - 12; len(name) > limit {
			name = name[:limit-1] + "."
		}
		line := fmt.Sprintf("%-*s %7s", sidebarWidth-12, name, humanize.Comma(int64(m.best[g.ID])))
		if i == m.cursor {
			b.WriteString(boardActiveStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return boardFrameStyle.Width(sidebarWidth).Render(strings.TrimRight(b.String(), "\n"))
}

// tableContent renders the table, or a hint when there is nothing to list.
func (m ScoreboardModel) tableContent() string {
	empty := len(m.scores) == 0
	hint := "No scores yet.\nSave a citizen to get on the board!"
	if m.view == viewRuns {
		empty = len(m.runs) == 0
		hint = "No missions yet.\nFinished missions show up here."
	}
	if empty {
		return boardDimStyle.Italic(true).Padding(2, 4).Render(hint)
	}
	return m.table.View()
}

// centerBlock centers every line of a multi-line block as one unit.
func centerBlock(block string, width int) string {
	pad := (width - lipgloss.Width(block)) / 2
	if pad <= 0 {
		return block
	}
	return lipgloss.NewStyle().PaddingLeft(pad).Render(block)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
