package picker

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bandcode/internal/app/calculator"
	"github.com/alexisbeaulieu97/bandcode/internal/domain/resistor"
)

// Model is the Bubbletea state of the band picker. It owns the selection;
// all decoding goes through the calculator service.
type Model struct {
	svc *calculator.Service

	layout    resistor.Layout
	selection resistor.Selection
	cursor    int

	report calculator.Report
	err    error

	keys     keyMap
	help     help.Model
	width    int
	quitting bool
}

// New creates a picker showing the default selection for bandCount.
func New(svc *calculator.Service, bandCount int) (Model, error) {
	if svc == nil {
		svc = calculator.NewService(nil)
	}

	m := Model{
		svc:  svc,
		keys: defaultKeyMap(),
		help: help.New(),
	}
	if err := m.setBandCount(bandCount); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// BandCount returns the active number of bands.
func (m Model) BandCount() int {
	return m.layout.BandCount()
}

// Selection returns a copy of the selected colors.
func (m Model) Selection() resistor.Selection {
	return append(resistor.Selection(nil), m.selection...)
}

// Cursor returns the band position being edited.
func (m Model) Cursor() int {
	return m.cursor
}

// Report returns the decoded current selection.
func (m Model) Report() calculator.Report {
	return m.report
}

// Err returns the last decode failure, if any.
func (m Model) Err() error {
	return m.err
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) setBandCount(bandCount int) error {
	layout, err := resistor.LayoutFor(bandCount)
	if err != nil {
		return err
	}
	selection, err := resistor.DefaultSelection(bandCount)
	if err != nil {
		return err
	}

	m.layout = layout
	m.selection = selection
	if m.cursor >= len(layout) {
		m.cursor = len(layout) - 1
	}
	m.recompute()
	return nil
}

// cycle moves the band under the cursor to the next (dir > 0) or previous
// color that is legal for its role.
func (m *Model) cycle(dir int) {
	valid := resistor.ValidColorsFor(m.layout[m.cursor])
	if len(valid) == 0 {
		return
	}

	current := -1
	for i, name := range valid {
		if name == m.selection[m.cursor] {
			current = i
			break
		}
	}

	next := 0
	if current >= 0 {
		next = (current + dir + len(valid)) % len(valid)
	}
	m.selection[m.cursor] = valid[next]
	m.recompute()
}

func (m *Model) moveCursor(delta int) {
	n := len(m.layout)
	m.cursor = (m.cursor + delta + n) % n
}

func (m *Model) recompute() {
	report, err := m.svc.DecodeSelection(len(m.layout), m.selection)
	m.err = err
	if err == nil {
		m.report = report
	}
}
