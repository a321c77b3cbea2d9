package domain

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Invocation is the shell line sent to the terminal.
type Invocation struct {
	Dir     string
	Shell   string
	Flag    string
	Command string
	Line    string
}

// ComposeInvocation builds `cd <dir> && <shell> <flag> <command>`.
//
// In the default mode the directory is wrapped in double quotes as is and the
// only escaping applied to the command is `"` -> `\"`. Dollar signs,
// backticks and backslashes are still interpreted by the outer shell; this is
// a known limitation, not full injection safety. With strict set, both the
// directory and the command are quoted as single bash words.
func ComposeInvocation(dir string, cfg CommandConfig, command string, strict bool) (Invocation, error) {
	inv := Invocation{
		Dir:     dir,
		Shell:   cfg.EffectiveShell(),
		Flag:    cfg.ShellFlag(),
		Command: command,
	}
	if !strict {
		escaped := strings.ReplaceAll(command, `"`, `\"`)
		inv.Line = fmt.Sprintf(`cd "%s" && %s %s "%s"`, dir, inv.Shell, inv.Flag, escaped)
		return inv, nil
	}
	quotedDir, err := syntax.Quote(dir, syntax.LangBash)
	if err != nil {
		return Invocation{}, fmt.Errorf("quote directory: %w", err)
	}
	quotedCmd, err := syntax.Quote(command, syntax.LangBash)
	if err != nil {
		return Invocation{}, fmt.Errorf("quote command: %w", err)
	}
	inv.Line = fmt.Sprintf("cd %s && %s %s %s", quotedDir, inv.Shell, inv.Flag, quotedCmd)
	return inv, nil
}
