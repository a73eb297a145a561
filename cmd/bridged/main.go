package main

import (
	"os"

	"github.com/paw-chain/trading-bridge/cmd/bridged/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		cmd.PrintError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
