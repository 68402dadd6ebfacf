package main

import (
	"context"
	"os"

	"github.com/spf13/afero"
)

func main() {
	env, err := NewEnvironment()
	logger := newLogger(env)
	if err != nil {
		logger.Error("failed to load environment", "error", err)
		os.Exit(1)
	}
	cmd := NewRootCommand(afero.NewOsFs(), env, logger)
	if err = cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
