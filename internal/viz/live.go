// Package viz renders a live terminal view of an amplitude sweep: one
// diagonalization per tick with the ac-Stark curve growing as points land.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/floqsim/internal/floquet"
)

const (
	graphWidth  = 70
	graphHeight = 12
)

type TickMsg time.Time

// Model steps through sweep amplitudes and accumulates the labeled curves.
type Model struct {
	driven     *floquet.DrivenQubit
	frequency  float64
	amplitudes []float64
	idxs       []int

	next      int
	running   bool
	qubitFreq []float64
	anharm    []float64
	err       error
}

// NewModel precomputes the zero-photon index assignment for the sweep
// frequency and prepares an empty curve.
func NewModel(d *floquet.DrivenQubit, frequency float64, amplitudes []float64) (Model, error) {
	assignment, err := d.AssignStateIndices(frequency)
	if err != nil {
		return Model{}, err
	}

	idxs := d.ZeroPhotonIndices(assignment)
	if len(idxs) < 2 {
		return Model{}, fmt.Errorf("viz: need at least two qubit levels, have %d", len(idxs))
	}
	if len(idxs) > 3 {
		idxs = idxs[:3]
	}

	return Model{
		driven:     d,
		frequency:  frequency,
		amplitudes: amplitudes,
		idxs:       idxs,
		running:    true,
		qubitFreq:  make([]float64, 0, len(amplitudes)),
		anharm:     make([]float64, 0, len(amplitudes)),
	}, nil
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
			m.next = 0
			m.qubitFreq = m.qubitFreq[:0]
			m.anharm = m.anharm[:0]
			m.err = nil
			m.running = true
		}
	case TickMsg:
		if m.running && m.err == nil && m.next < len(m.amplitudes) {
			m.step()
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// step diagonalizes the next sweep point and appends the derived values.
func (m *Model) step() {
	vals, _, err := m.driven.Eigensystem(m.frequency, m.amplitudes[m.next])
	if err != nil {
		m.err = err
		return
	}

	e0 := vals[m.idxs[0]]
	e1 := vals[m.idxs[1]]
	m.qubitFreq = append(m.qubitFreq, e1-e0)
	if len(m.idxs) >= 3 {
		e2 := vals[m.idxs[2]]
		m.anharm = append(m.anharm, e2+e0-2*e1)
	}
	m.next++
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("FLOQUET SWEEP") + "\n")

	status := "RUNNING"
	switch {
	case m.err != nil:
		status = fmt.Sprintf("ERROR: %v", m.err)
	case m.next >= len(m.amplitudes):
		status = "DONE"
	case !m.running:
		status = "PAUSED"
	}
	s.WriteString(status + "\n")

	if len(m.qubitFreq) >= 2 {
		graph := asciigraph.Plot(m.qubitFreq,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("qubit frequency (GHz) vs sweep point"),
		)
		s.WriteString(graphStyle.Render(graph) + "\n")
	}

	s.WriteString(m.statsView())
	s.WriteString(helpStyle.Render("space pause · r restart · q quit"))
	return s.String()
}

func (m Model) statsView() string {
	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
	}

	var b strings.Builder
	b.WriteString(row("drive freq", fmt.Sprintf("%.6f GHz", m.frequency)))
	b.WriteString(row("points", fmt.Sprintf("%d / %d", m.next, len(m.amplitudes))))
	if m.next > 0 && len(m.qubitFreq) > 0 {
		b.WriteString(row("amplitude", fmt.Sprintf("%.4f GHz", m.amplitudes[m.next-1])))
		b.WriteString(row("qubit freq", fmt.Sprintf("%.6f GHz", m.qubitFreq[len(m.qubitFreq)-1])))
		if len(m.anharm) > 0 {
			b.WriteString(row("anharmonicity", fmt.Sprintf("%.3f MHz", m.anharm[len(m.anharm)-1]*1e3)))
		}
		b.WriteString(row("stark shift", fmt.Sprintf("%.3f MHz", (m.qubitFreq[len(m.qubitFreq)-1]-m.qubitFreq[0])*1e3)))
	}
	return statsStyle.Render(b.String()) + "\n"
}
