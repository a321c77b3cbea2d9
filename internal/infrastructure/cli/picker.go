package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/doeshing/ctxrun/internal/domain"
	"github.com/doeshing/ctxrun/internal/ports"
)

// Picker implements CommandSelector with a filterable huh select.
type Picker struct {
	in          io.Reader
	out         io.Writer
	interactive func() bool
}

// NewPicker constructs a picker on stdin/stdout when in/out are nil.
func NewPicker(in io.Reader, out io.Writer) *Picker {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Picker{in: in, out: out, interactive: func() bool { return isTerminal(in) }}
}

// Select shows the eligible commands; typing filters on label, key and template.
func (p *Picker) Select(ctx context.Context, items []domain.PickItem) (domain.PickItem, bool, error) {
	if len(items) == 0 {
		return domain.PickItem{}, false, nil
	}
	if !p.interactive() {
		return domain.PickItem{}, false, domain.ErrNotInteractive
	}

	var choice int
	field := huh.NewSelect[int]().
		Title("Select the command to run").
		Options(pickOptions(items)...).
		Filtering(true).
		Value(&choice)
	form := huh.NewForm(huh.NewGroup(field)).
		WithInput(p.in).
		WithOutput(p.out)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return domain.PickItem{}, false, nil
		}
		return domain.PickItem{}, false, err
	}
	if choice < 0 || choice >= len(items) {
		return domain.PickItem{}, false, nil
	}
	return items[choice], true, nil
}

func pickOptions(items []domain.PickItem) []huh.Option[int] {
	options := make([]huh.Option[int], 0, len(items))
	for i, item := range items {
		options = append(options, huh.NewOption(OptionText(item), i))
	}
	return options
}

// OptionText renders a picker row as "label (key)  template".
func OptionText(item domain.PickItem) string {
	if item.Label == item.Description {
		return fmt.Sprintf("%s  %s", item.Label, item.Detail)
	}
	return fmt.Sprintf("%s (%s)  %s", item.Label, item.Description, item.Detail)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var _ ports.CommandSelector = (*Picker)(nil)
