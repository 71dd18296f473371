// Package tui is an interactive preview for termkit documents. It renders
// every block into a scrolling viewport and lets the user change the render
// width to watch tables shrink and expand.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/termkit/display/widgets"
)

const (
	// minRenderWidth is the narrowest width the preview renders at.
	minRenderWidth = 8
	// gutterWidth is reserved left of every line for the focus marker.
	gutterWidth = 2

	zoneNarrow = "termkit-narrow"
	zoneWiden  = "termkit-widen"
)

// Block is one named widget of the previewed document.
type Block struct {
	Name   string
	Widget widgets.Renderable
}

func blockZone(i int) string {
	return fmt.Sprintf("termkit-block-%d", i)
}

// Model is the top-level Bubbletea model for the preview.
type Model struct {
	blocks     []Block
	width      int // fixed render width; 0 follows the window
	termWidth  int
	termHeight int
	focus      int
	offsets    []int
	viewport   viewport.Model
	help       help.Model
	zones      *zone.Manager
	ready      bool
}

// NewModel returns a preview of blocks rendered at width. A width of 0
// follows the window width.
func NewModel(blocks []Block, width int) Model {
	return Model{
		blocks: blocks,
		width:  max(width, 0),
		help:   help.New(),
		zones:  zone.New(),
	}
}

// Run starts the preview on the alternate screen and blocks until the user
// quits.
func Run(blocks []Block, width int) error {
	p := tea.NewProgram(NewModel(blocks, width), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// RenderWidth is the width blocks are currently rendered at.
func (m Model) RenderWidth() int {
	w := m.width
	if w == 0 {
		w = m.termWidth - gutterWidth
	}
	return max(w, minRenderWidth)
}

// maxRenderWidth keeps rendered lines inside the viewport.
func (m Model) maxRenderWidth() int {
	if m.termWidth == 0 {
		return 0
	}
	return max(m.termWidth-gutterWidth, minRenderWidth)
}

// Init implements tea.Model. No initial commands are needed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, 1)
			m.ready = true
		}
		m.viewport.Width = msg.Width
		if w := m.maxRenderWidth(); m.width > w {
			m.width = w
		}
		m.refresh()
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil
		case key.Matches(msg, keys.NextBlock):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(msg, keys.PrevBlock):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(msg, keys.Narrow):
			m.setWidth(m.RenderWidth() - 1)
			return m, nil
		case key.Matches(msg, keys.Widen):
			m.setWidth(m.RenderWidth() + 1)
			return m, nil
		case key.Matches(msg, keys.ResetWidth):
			m.width = 0
			m.refresh()
			return m, nil
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			switch {
			case m.clicked(zoneNarrow, msg):
				m.setWidth(m.RenderWidth() - 1)
				return m, nil
			case m.clicked(zoneWiden, msg):
				m.setWidth(m.RenderWidth() + 1)
				return m, nil
			}
			for i := range m.blocks {
				if m.clicked(blockZone(i), msg) {
					m.setFocus(i)
					return m, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) clicked(id string, msg tea.MouseMsg) bool {
	z := m.zones.Get(id)
	return z != nil && z.InBounds(msg)
}

// setWidth fixes the render width, clamped to what the window can show.
func (m *Model) setWidth(w int) {
	w = max(w, minRenderWidth)
	if limit := m.maxRenderWidth(); limit > 0 {
		w = min(w, limit)
	}
	m.width = w
	m.refresh()
}

// setFocus moves focus to block i, wrapping around, and scrolls it into view.
func (m *Model) setFocus(i int) {
	n := len(m.blocks)
	if n == 0 {
		return
	}
	m.focus = ((i % n) + n) % n
	m.refresh()
	m.viewport.SetYOffset(m.offsets[m.focus])
}

// refresh re-renders every block at the current width.
func (m *Model) refresh() {
	w := m.RenderWidth()
	offsets := make([]int, len(m.blocks))
	var lines []string
	for i, b := range m.blocks {
		offsets[i] = len(lines)
		gutter := strings.Repeat(" ", gutterWidth)
		if i == m.focus {
			gutter = styleFocusGutter.Render("▌") + " "
		}
		for _, l := range b.Widget.Render(w) {
			lines = append(lines, gutter+l)
		}
	}
	m.offsets = offsets
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// resize fits the viewport between the header and footer.
func (m *Model) resize() {
	chrome := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.renderFooter())
	m.viewport.Height = max(m.termHeight-chrome, 1)
}

// View implements tea.Model. It renders the block bar, the document, and
// the footer.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	))
}

// renderHeader renders one clickable tab per block with the focused block
// highlighted.
func (m Model) renderHeader() string {
	tabs := make([]string, len(m.blocks))
	for i, b := range m.blocks {
		label := fmt.Sprintf("%d %s", i+1, b.Name)
		style := styleInactiveTab
		if i == m.focus {
			style = styleActiveTab
		}
		tabs[i] = m.zones.Mark(blockZone(i), style.Render(label))
	}
	return styleHeader.Width(m.termWidth).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderFooter renders the width controls and the key help.
func (m Model) renderFooter() string {
	mode := "fixed"
	if m.width == 0 {
		mode = "fit"
	}
	controls := m.zones.Mark(zoneNarrow, "[-]") +
		" width " + styleWidth.Render(fmt.Sprintf("%d", m.RenderWidth())) + " (" + mode + ") " +
		m.zones.Mark(zoneWiden, "[+]")
	return styleFooter.Render(controls + "  " + m.help.View(keys))
}
