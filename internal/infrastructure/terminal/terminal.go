// Package terminal provides the named terminal sessions commands are sent to.
package terminal

import (
	"fmt"

	"github.com/doeshing/ctxrun/internal/domain"
	"github.com/doeshing/ctxrun/internal/ports"
)

// Providers selects a backend by kind.
type Providers struct {
	Exec ports.TerminalProvider
	Tmux ports.TerminalProvider
}

// For returns the provider for kind; empty means exec.
func (p Providers) For(kind domain.TerminalKind) (ports.TerminalProvider, error) {
	switch kind {
	case "", domain.TerminalExec:
		if p.Exec != nil {
			return p.Exec, nil
		}
	case domain.TerminalTmux:
		if p.Tmux != nil {
			return p.Tmux, nil
		}
	default:
		return nil, fmt.Errorf("unknown terminal kind %q (want exec or tmux)", kind)
	}
	return nil, fmt.Errorf("terminal backend %q unavailable", kind)
}
