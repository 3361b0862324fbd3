// Package tui provides a live terminal view that marches the catalyst
// bed and draws the evolving flow profiles.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/shift-lab/shiftsim/internal/dynamo"
	"github.com/shift-lab/shiftsim/internal/metrics"
	"github.com/shift-lab/shiftsim/internal/reactor"
)

const (
	graphWidth      = 72
	graphHeight     = 8
	stepsPerFrame   = 8
	historyCapacity = 600
)

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(0, 1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps the bed integration frame by frame and renders the
// profile history.
type Model struct {
	sys        dynamo.System
	integrator dynamo.Integrator
	state      dynamo.State
	initial    dynamo.State
	w, dw      float64
	wMax       float64

	running     bool
	finished    bool
	reactorName string

	history [reactor.NumSpecies][]float64

	params    map[string]float64
	paramKeys []string
	selected  int
}

func NewModel(sys dynamo.System, integ dynamo.Integrator, initState []float64, dw float64, wMax float64, name string) Model {
	params := make(map[string]float64)
	if tunable, ok := sys.(dynamo.Configurable); ok {
		for k, v := range tunable.GetParams() {
			params[k] = v
		}
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := Model{
		sys:         sys,
		integrator:  integ,
		state:       dynamo.State(initState).Clone(),
		initial:     dynamo.State(initState).Clone(),
		dw:          dw,
		wMax:        wMax,
		running:     true,
		reactorName: name,
		params:      params,
		paramKeys:   keys,
	}
	m.observe()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.02)
		case "down", "j":
			m.adjustParam(0.98)
		}
	case TickMsg:
		if m.running && !m.finished {
			for i := 0; i < stepsPerFrame && !m.finished; i++ {
				m.step()
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	if m.w >= m.wMax {
		m.finished = true
		return
	}

	h := m.dw
	if m.w+h > m.wMax {
		h = m.wMax - m.w
	}

	next := m.integrator.Step(m.sys, m.state, m.w, h)
	if !next.IsValid() {
		m.finished = true
		return
	}

	m.state = next
	m.w += h
	m.observe()
}

func (m *Model) observe() {
	for i := 0; i < reactor.NumSpecies && i < len(m.state); i++ {
		m.history[i] = append(m.history[i], m.state[i])
		if len(m.history[i]) > historyCapacity {
			m.history[i] = m.history[i][1:]
		}
	}
}

func (m *Model) reset() {
	m.state = m.initial.Clone()
	m.w = 0
	m.finished = false
	for i := range m.history {
		m.history[i] = nil
	}
	m.observe()
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	tunable, ok := m.sys.(dynamo.Configurable)
	if !ok {
		return
	}

	key := m.paramKeys[m.selected]
	newVal := m.params[key] * factor
	if err := tunable.SetParam(key, newVal); err != nil {
		return
	}
	m.params[key] = newVal
}

func (m Model) View() string {
	var b strings.Builder

	status := "marching"
	switch {
	case m.finished:
		status = "done"
	case !m.running:
		status = "paused"
	}
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s bed  |  w = %.1f / %.0f kg  |  %s", m.reactorName, m.w, m.wMax, status)))
	b.WriteString("\n")

	for i := 0; i < reactor.NumSpecies; i++ {
		if len(m.history[i]) < 2 {
			continue
		}
		graph := asciigraph.Plot(m.history[i],
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption(reactor.SpeciesNames[i]+" (mol/s)"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statsView())
	b.WriteString(helpStyle.Render("space pause  r reset  tab select param  up/down adjust  q quit"))
	return b.String()
}

func (m Model) statsView() string {
	var b strings.Builder

	for i := 0; i < reactor.NumSpecies && i < len(m.state); i++ {
		b.WriteString(labelStyle.Render(reactor.SpeciesNames[i]))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%9.1f mol/s", m.state[i])))
		b.WriteString("\n")
	}

	if src, ok := m.sys.(metrics.BetaSource); ok && m.state.IsValid() {
		b.WriteString(labelStyle.Render("beta"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%9.4f", src.Beta(m.state))))
		b.WriteString("\n")
	}

	for i, key := range m.paramKeys {
		style := valueStyle
		if i == m.selected {
			style = activeParamStyle
		}
		b.WriteString(labelStyle.Render(key))
		b.WriteString(style.Render(fmt.Sprintf("%12.4g", m.params[key])))
		b.WriteString("\n")
	}

	return b.String()
}
