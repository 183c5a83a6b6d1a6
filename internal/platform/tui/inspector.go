// Package tui provides the Bubble Tea stat inspector for statnerf.
// It only reads stats for display and hands every change to the nerf and
// farm packages.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/statnerf/internal/config"
	"github.com/vovakirdan/statnerf/internal/core"
	"github.com/vovakirdan/statnerf/internal/farm"
	"github.com/vovakirdan/statnerf/internal/nerf"
	"github.com/vovakirdan/statnerf/internal/storage"
)

// Inspector limits
const (
	minWidthForSideBySide = 90 // Minimum width to show the crop bank next to the stats
	maxEditValue          = 99 // Highest value reachable with the raise key
	rerollMax             = 10 // Rerolled stats fall in [1, rerollMax]
)

// InspectorConfig wires the inspector to the rest of the program.
// Live, Farm and Store are optional.
type InspectorConfig struct {
	Nerfer *nerf.Nerfer
	RNG    nerf.Source
	Live   *config.Live
	Farm   *farm.Farm
	Store  *storage.Store
	Start  core.PlantStats
	Width  int
	Height int
}

// InspectorModel is the Bubble Tea model for the stat inspector.
type InspectorModel struct {
	cfg       InspectorConfig
	stats     core.PlantStats
	cursor    nerf.FieldID
	last      *nerf.Result
	crops     []storage.Crop
	table     table.Model
	bankFocus bool
	status    string
	keys      InspectorKeyMap
	help      help.Model
	width     int
	height    int
	quitting  bool
}

// NewInspectorModel creates a new inspector model.
func NewInspectorModel(cfg InspectorConfig) InspectorModel {
	h := help.New()
	h.ShowAll = false

	m := InspectorModel{
		cfg:    cfg,
		stats:  cfg.Start,
		keys:   DefaultInspectorKeyMap(),
		help:   h,
		width:  cfg.Width,
		height: cfg.Height,
	}
	m.table = m.createTable()
	m.loadCrops()
	return m
}

// createTable creates the crop bank table.
func (m *InspectorModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Crop", Width: 14},
		{Title: "Gain", Width: 5},
		{Title: "Growth", Width: 7},
		{Title: "Str", Width: 5},
		{Title: "Score", Width: 6},
	}

	height := m.height - 10
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(m.bankFocus),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadCrops refreshes the crop bank table from storage.
func (m *InspectorModel) loadCrops() {
	if m.cfg.Store == nil {
		m.crops = nil
		return
	}

	crops, err := m.cfg.Store.ListCrops()
	if err != nil {
		m.status = fmt.Sprintf("cannot load crops: %v", err)
		m.crops = nil
	} else {
		m.crops = crops
	}

	rows := make([]table.Row, len(m.crops))
	for i, c := range m.crops {
		rows[i] = table.Row{
			c.Name,
			fmt.Sprintf("%d", c.Stats.GainValue),
			fmt.Sprintf("%d", c.Stats.GrowthValue),
			fmt.Sprintf("%d", c.Stats.StrengthValue),
			fmt.Sprintf("%d", nerf.Score(&c.Stats)),
		}
	}
	m.table.SetRows(rows)
}

// selectedCrop returns the crop under the table cursor.
func (m InspectorModel) selectedCrop() (storage.Crop, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.crops) {
		return storage.Crop{}, false
	}
	return m.crops[i], true
}

// Init initializes the inspector model.
func (m InspectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the inspector.
func (m InspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.loadCrops()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m InspectorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		m.reloadConfig()
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		if m.cfg.Store != nil {
			m.bankFocus = !m.bankFocus
			if m.bankFocus {
				m.table.Focus()
			} else {
				m.table.Blur()
			}
		}
		return m, nil
	}

	if m.bankFocus {
		return m.handleBankKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + 2) % 3
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % 3
	case key.Matches(msg, m.keys.Lower):
		m.adjust(-1)
	case key.Matches(msg, m.keys.Raise):
		m.adjust(1)
	case key.Matches(msg, m.keys.Nerf):
		m.nerfEditor()
	case key.Matches(msg, m.keys.Reroll):
		m.reroll()
	}

	return m, nil
}

// handleBankKey processes keys while the crop bank has focus.
func (m InspectorModel) handleBankKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Load):
		if crop, ok := m.selectedCrop(); ok {
			m.stats = crop.Stats
			m.last = nil
			m.status = fmt.Sprintf("loaded %s", crop.Name)
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		m.nerfBanked()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// adjust moves the selected stat by delta within [Floor, maxEditValue].
func (m *InspectorModel) adjust(delta int) {
	f, ok := nerf.FieldByID(m.cursor)
	if !ok {
		return
	}
	v := f.Get(&m.stats) + delta
	if v < nerf.Floor || v > maxEditValue {
		return
	}
	f.Set(&m.stats, v)
	m.last = nil
}

// nerfEditor nerfs the stats in the editor.
func (m *InspectorModel) nerfEditor() {
	res := m.cfg.Nerfer.Nerf(&m.stats)
	m.last = &res
	if res.Reached {
		m.status = ""
	} else {
		m.status = "bound cannot be reached above the floor"
	}
}

// nerfBanked nerfs the selected crop in the bank and shows the outcome.
func (m *InspectorModel) nerfBanked() {
	crop, ok := m.selectedCrop()
	if !ok {
		return
	}
	if m.cfg.Farm == nil {
		m.status = "crop bank is read-only"
		return
	}

	out, err := m.cfg.Farm.NerfCrop(crop.ID)
	if err != nil {
		if errors.Is(err, storage.ErrCropNotFound) {
			m.status = fmt.Sprintf("%s is gone", crop.Name)
		} else {
			m.status = fmt.Sprintf("nerf failed: %v", err)
		}
		m.loadCrops()
		return
	}

	m.stats = out.Result.After
	m.last = &out.Result
	m.status = fmt.Sprintf("nerfed %s", crop.Name)
	m.loadCrops()
}

// reroll replaces the editor stats with random values.
func (m *InspectorModel) reroll() {
	if m.cfg.RNG == nil {
		return
	}
	for _, f := range nerf.Fields() {
		f.Set(&m.stats, 1+m.cfg.RNG.Intn(rerollMax))
	}
	m.last = nil
}

// reloadConfig re-reads the config file and reports the bound in use.
func (m *InspectorModel) reloadConfig() {
	if m.cfg.Live == nil {
		m.status = "no config to reload"
		return
	}
	if _, err := m.cfg.Live.Reload(); err != nil {
		m.status = fmt.Sprintf("reload failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("bound is now %d", m.cfg.Live.MaxScore())
}

// Stats returns the stats currently shown in the editor.
func (m InspectorModel) Stats() core.PlantStats {
	return m.stats
}

// View renders the inspector.
func (m InspectorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(centerText("STAT INSPECTOR", m.width)))
	b.WriteString("\n\n")

	editor := panelStyle.Render(m.renderEditor())
	if m.cfg.Store != nil {
		bank := panelStyle.Render(m.renderBank())
		if m.width >= minWidthForSideBySide {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, editor, "  ", bank))
		} else {
			b.WriteString(lipgloss.JoinVertical(lipgloss.Left, editor, bank))
		}
	} else {
		b.WriteString(editor)
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(mutedStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderEditor renders the stat bars, the score and the last nerf.
func (m InspectorModel) renderEditor() string {
	var b strings.Builder

	for _, f := range nerf.Fields() {
		cursor := "  "
		name := fmt.Sprintf("%-8s", f.Name())
		if f.ID == m.cursor && !m.bankFocus {
			cursor = "> "
			name = cursorStyle.Render(name)
		}
		v := f.Get(&m.stats)
		fmt.Fprintf(&b, "%s%s %s %2d\n", cursor, name, fieldStyles[f.ID].Render(RenderBar(v)), v)
	}

	b.WriteString("\n")
	b.WriteString(RenderScoreLine(nerf.Score(&m.stats), m.cfg.Nerfer.MaxScore()))
	if m.cfg.Nerfer.Reporter().Reported() {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("unreachable bound already reported"))
	}

	if m.last != nil {
		b.WriteString("\n")
		fmt.Fprintf(&b, "last nerf: %d -> %d (%s)",
			m.last.ScoreBefore, m.last.ScoreAfter, RenderSteps(m.last.Steps))
	}

	return b.String()
}

// renderBank renders the crop bank table or an empty message.
func (m InspectorModel) renderBank() string {
	if len(m.crops) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		return emptyStyle.Render("No crops banked yet.\nAdd one with 'statnerf crops add'.")
	}
	return m.table.View()
}

// RunInspector runs the inspector and returns the stats left in the editor.
func RunInspector(cfg InspectorConfig) (core.PlantStats, error) {
	model := NewInspectorModel(cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return cfg.Start, err
	}

	m, ok := finalModel.(InspectorModel)
	if !ok {
		return cfg.Start, nil
	}
	return m.Stats(), nil
}
