package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/rncourse/internal/cli/formatter"
	"github.com/alexanderramin/rncourse/internal/contract"
	"github.com/alexanderramin/rncourse/internal/gate"
	"github.com/alexanderramin/rncourse/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 40

type browseKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Collapse key.Binding
	Sidebar  key.Binding
	Solution key.Binding
	Quit     key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Collapse, k.Sidebar, k.Solution, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var browseKeys = browseKeyMap{
	Next:     key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n/→", "next")),
	Prev:     key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p/←", "previous")),
	Collapse: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collapse day")),
	Sidebar:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "sidebar")),
	Solution: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "solution")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// browseModel is the interactive course viewer: a collapsible outline on
// the left and the active session page on the right.
type browseModel struct {
	ctx  context.Context
	nav  service.NavigationService
	gate *gate.Gate

	style string
	width int

	outline       []contract.DayOutline
	collapsedDays map[int]bool
	sidebarHidden bool

	page     *contract.SessionPage
	viewport viewport.Model
	help     help.Model

	form     *huh.Form
	password string

	notice string
	err    error

	termWidth  int
	termHeight int
}

func newBrowseModel(ctx context.Context, app *App, page *contract.SessionPage) *browseModel {
	m := &browseModel{
		ctx:           ctx,
		nav:           app.Navigation,
		gate:          app.Gate,
		style:         app.Config.Style,
		width:         app.Config.Width,
		outline:       app.Navigation.Outline(ctx),
		collapsedDays: make(map[int]bool),
		viewport:      viewport.New(app.Config.Width, 20),
		help:          help.New(),
	}
	m.setPage(page)
	return m
}

func (m *browseModel) Init() tea.Cmd { return nil }

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, browseKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, browseKeys.Next):
			m.step(contract.Forward)
			return m, nil
		case key.Matches(msg, browseKeys.Prev):
			m.step(contract.Backward)
			return m, nil
		case key.Matches(msg, browseKeys.Collapse):
			m.collapsedDays[m.page.ID.Day] = !m.collapsedDays[m.page.ID.Day]
			return m, nil
		case key.Matches(msg, browseKeys.Sidebar):
			m.sidebarHidden = !m.sidebarHidden
			m.resize()
			return m, nil
		case key.Matches(msg, browseKeys.Solution):
			return m, m.openGate()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *browseModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		m.closeForm(formatter.Dim("Cancelled."))
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		m.submitPassword(m.password)
		return m, nil
	case huh.StateAborted:
		m.closeForm(formatter.Dim("Cancelled."))
		return m, nil
	}
	return m, cmd
}

func (m *browseModel) openGate() tea.Cmd {
	if !m.page.IsChallenge {
		m.notice = formatter.Dim("Solutions exist only on challenge pages.")
		return nil
	}
	if m.gate.Unlocked() {
		m.notice = formatter.StyleGreen.Render("Solutions are already unlocked.")
		return nil
	}
	m.password = ""
	m.form = passwordForm(&m.password)
	return m.form.Init()
}

func (m *browseModel) submitPassword(attempt string) {
	if m.gate.Unlock(attempt) {
		m.closeForm(formatter.StyleGreen.Render("✔ Solutions unlocked."))
		m.render()
		return
	}
	m.closeForm(formatter.StyleRed.Render("✖ Wrong password."))
}

func (m *browseModel) closeForm(notice string) {
	m.form = nil
	m.password = ""
	m.notice = notice
}

func (m *browseModel) step(dir contract.Direction) {
	page, err := m.nav.Step(m.ctx, m.page.ID, dir)
	if err != nil {
		if dir == contract.Forward {
			m.notice = formatter.Dim("You are at the end of the course.")
		} else {
			m.notice = formatter.Dim("You are at the start of the course.")
		}
		return
	}
	m.notice = ""
	m.setPage(page)
}

func (m *browseModel) setPage(page *contract.SessionPage) {
	if m.page == nil || m.page.ID.Day != page.ID.Day {
		delete(m.collapsedDays, page.ID.Day)
	}
	m.page = page
	m.render()
	m.viewport.GotoTop()
}

func (m *browseModel) resize() {
	w := m.termWidth
	if !m.sidebarHidden {
		w -= sidebarWidth + 1
	}
	if w < 20 {
		w = 20
	}
	if w > m.width {
		w = m.width
	}
	m.viewport.Width = w
	if h := m.termHeight - 3; h > 0 {
		m.viewport.Height = h
	}
	m.render()
}

func (m *browseModel) render() {
	md := formatter.PageMarkdown(m.page, m.gate.Unlocked())
	out, err := formatter.RenderMarkdown(md, m.style, m.viewport.Width)
	m.err = err
	if err != nil {
		out = md
	}
	m.viewport.SetContent(out)
}

func (m *browseModel) View() string {
	if m.form != nil {
		return formatter.RenderBox(m.page.Title, m.form.View())
	}

	body := m.viewport.View()
	if !m.sidebarHidden {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), " ", body)
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(m.page.Title))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(m.notice + "  ")
	}
	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render(m.err.Error()) + "  ")
	}
	b.WriteString(m.help.ShortHelpView(browseKeys.ShortHelp()))
	return b.String()
}

func (m *browseModel) sidebarView() string {
	var b strings.Builder
	for _, d := range m.outline {
		arrow := "▾"
		if m.collapsedDays[d.Day] {
			arrow = "▸"
		}
		heading := fmt.Sprintf("%s Day %d · %s", arrow, d.Day, d.Title)
		if d.Day == m.page.ID.Day {
			heading = formatter.StyleHeader.Render(heading)
		} else {
			heading = formatter.Dim(heading)
		}
		b.WriteString(heading + "\n")
		if m.collapsedDays[d.Day] {
			continue
		}
		for _, e := range d.Entries {
			if e.ID == m.page.ID {
				b.WriteString(formatter.StyleYellowBold.Render("  ▶ "+e.Title) + "\n")
				continue
			}
			b.WriteString("    " + e.Title + "\n")
		}
	}
	return lipgloss.NewStyle().Width(sidebarWidth).Render(strings.TrimSuffix(b.String(), "\n"))
}
