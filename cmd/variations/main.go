package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/variations/cmd/variations/commands"
	"github.com/katalvlaran/variations/internal/logger"
)

func main() {
	defer logger.Sync()

	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		logger.Sync()
		os.Exit(1)
	}
}
