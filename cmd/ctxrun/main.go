package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/ctxrun/internal/domain"
	"github.com/doeshing/ctxrun/internal/infrastructure/cli"
	"github.com/doeshing/ctxrun/internal/infrastructure/cli/commands"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose()}

	root := cli.NewRootCmd(opts)
	if err := root.ExecuteContext(ctx); err != nil {
		var exitErr *commands.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	value := os.Getenv(domain.EnvDebug)
	return strings.EqualFold(value, "1") || strings.EqualFold(value, "true")
}
