package logger

import (
	"io"
	"os"
	"sort"

	charmlog "github.com/charmbracelet/log"
)

// CharmLogger adapts charmbracelet/log to ports.Logger.
type CharmLogger struct {
	log *charmlog.Logger
}

// New creates a logger writing to w (stderr when nil). Verbose enables debug output;
// otherwise only warnings and errors are shown.
func New(w io.Writer, verbose bool) *CharmLogger {
	if w == nil {
		w = os.Stderr
	}
	level := charmlog.WarnLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	return &CharmLogger{log: charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		Prefix:          "ctxrun",
		ReportTimestamp: verbose,
		TimeFormat:      "15:04:05",
	})}
}

// NewStd creates a logger on stderr.
func NewStd(verbose bool) *CharmLogger {
	return New(nil, verbose)
}

func (l *CharmLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug(msg, keyvals(fields)...)
}

func (l *CharmLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info(msg, keyvals(fields)...)
}

func (l *CharmLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn(msg, keyvals(fields)...)
}

func (l *CharmLogger) Error(msg string, err error, fields map[string]interface{}) {
	kv := keyvals(fields)
	if err != nil {
		kv = append([]interface{}{"err", err}, kv...)
	}
	l.log.Error(msg, kv...)
}

func keyvals(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]interface{}, 0, len(names)*2)
	for _, name := range names {
		out = append(out, name, fields[name])
	}
	return out
}
