package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/doeshing/ctxrun/internal/ports"
)

// Notifier prints transient status lines to stderr.
type Notifier struct {
	out  io.Writer
	info lipgloss.Style
	warn lipgloss.Style
}

// NewNotifier constructs a notifier writing to out (stderr when nil).
func NewNotifier(out io.Writer) *Notifier {
	if out == nil {
		out = os.Stderr
	}
	renderer := lipgloss.NewRenderer(out)
	return &Notifier{
		out:  out,
		info: renderer.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		warn: renderer.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	}
}

// Info implements ports.Notifier.
func (n *Notifier) Info(msg string) {
	fmt.Fprintf(n.out, "%s %s\n", n.info.Render("info"), msg)
}

// Warn implements ports.Notifier.
func (n *Notifier) Warn(msg string) {
	fmt.Fprintf(n.out, "%s %s\n", n.warn.Render("warning"), msg)
}

var _ ports.Notifier = (*Notifier)(nil)
