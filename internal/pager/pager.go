// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package pager shows a text report in a scrollable terminal view with keys
// to jump between differences.
package pager

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var statusStyle = lipgloss.NewStyle().Reverse(true)

// Run shows lines until the user quits. The first header lines stay pinned
// above the scrolling area. marks flags the lines holding a difference.
func Run(title string, lines []string, marks []bool, header int) error {
	p := tea.NewProgram(New(title, lines, marks, header), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Model is the bubbletea model of the pager.
type Model struct {
	title  string
	header []string
	body   []string
	marks  []bool

	vp    viewport.Model
	ready bool
	width int
}

// New builds a pager model. header is clamped to the number of lines.
func New(title string, lines []string, marks []bool, header int) Model {
	header = max(0, min(header, len(lines)))
	bodyMarks := make([]bool, len(lines)-header)
	if header < len(marks) {
		copy(bodyMarks, marks[header:])
	}
	return Model{
		title:  title,
		header: lines[:header],
		body:   lines[header:],
		marks:  bodyMarks,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(1, msg.Height-len(m.header)-1)
		m.width = msg.Width
		if !m.ready {
			m.vp = viewport.New(msg.Width, height)
			m.vp.SetContent(strings.Join(m.body, "\n"))
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = height
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "n":
			if i := NextMark(m.marks, m.vp.YOffset); i >= 0 {
				m.vp.SetYOffset(i)
			}
			return m, nil
		case "N":
			if i := PrevMark(m.marks, m.vp.YOffset); i >= 0 {
				m.vp.SetYOffset(i)
			}
			return m, nil
		case "g", "home":
			m.vp.GotoTop()
			return m, nil
		case "G", "end":
			m.vp.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	var sb strings.Builder
	for _, h := range m.header {
		sb.WriteString(h + "\n")
	}
	sb.WriteString(m.vp.View() + "\n")
	sb.WriteString(m.statusLine())
	return sb.String()
}

// Offset is the index of the first visible body line.
func (m Model) Offset() int {
	return m.vp.YOffset
}

func (m Model) statusLine() string {
	total := 0
	for _, mark := range m.marks {
		if mark {
			total++
		}
	}
	status := fmt.Sprintf(" %s  %d diff lines  %3.f%%  n/N next/prev  q quit ", m.title, total, m.vp.ScrollPercent()*100) //nolint:mnd
	if m.width > 0 && lipgloss.Width(status) < m.width {
		status += strings.Repeat(" ", m.width-lipgloss.Width(status))
	}
	return statusStyle.Render(status)
}

// NextMark returns the first marked index after from, or -1.
func NextMark(marks []bool, from int) int {
	for i := max(from+1, 0); i < len(marks); i++ {
		if marks[i] {
			return i
		}
	}
	return -1
}

// PrevMark returns the last marked index before from, or -1.
func PrevMark(marks []bool, from int) int {
	for i := min(from, len(marks)) - 1; i >= 0; i-- {
		if marks[i] {
			return i
		}
	}
	return -1
}
