package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/salesflow/internal/model"
)

// ProgramDisplay forwards filtered views from the pipeline to a running
// program. It implements service.Display. Views shown before a program is
// attached are dropped.
type ProgramDisplay struct {
	program *tea.Program
	mu      sync.RWMutex
}

// NewProgramDisplay creates an unattached display.
func NewProgramDisplay() *ProgramDisplay {
	return &ProgramDisplay{}
}

func (d *ProgramDisplay) attach(p *tea.Program) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.program = p
}

// ShowFilteredView sends the view to the attached program.
func (d *ProgramDisplay) ShowFilteredView(view model.FilteredView) {
	d.mu.RLock()
	p := d.program
	d.mu.RUnlock()
	if p != nil {
		p.Send(viewShownMsg{view: view})
	}
}
