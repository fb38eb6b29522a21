// Package console is the interactive terminal front end: a line-oriented
// shell that reads commands and a View that prints what the services report.
package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/catalogadmin/console/internal/core/domain"
	"github.com/catalogadmin/console/internal/core/ports"
)

// Terminal prints view updates as plain text lines. It is safe for the
// concurrent renders of the post-login load.
type Terminal struct {
	mu    sync.Mutex
	out   io.Writer
	panel domain.Panel
}

var _ ports.View = (*Terminal)(nil)

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out, panel: domain.PanelLogin}
}

func (t *Terminal) RenderList(kind domain.ResourceKind, items []domain.Entity) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.out, "== %s (%d) ==\n", kind.Plural(), len(items))
	for _, it := range items {
		fmt.Fprintf(t.out, "  %s\n", it.Summary())
	}
}

func (t *Terminal) ShowError(form domain.Form, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "[%s] error: %s\n", form, message)
}

func (t *Terminal) ShowSuccess(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, message)
}

func (t *Terminal) SwitchPanel(panel domain.Panel) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.panel = panel
	fmt.Fprintf(t.out, "-- %s --\n", panel)
}

// Panel is the screen currently shown.
func (t *Terminal) Panel() domain.Panel {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.panel
}

// Printf writes shell output under the same lock as view updates.
func (t *Terminal) Printf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, format, args...)
}
