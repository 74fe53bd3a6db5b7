package main

import (
	"os"

	"gitvend.dev/gitvend/internal/cli"
	"gitvend.dev/gitvend/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	err := rootCmd.Execute()
	if err != nil {
		output.Default().Error("%v", err)
	}
	_ = output.Default().Close()
	if err != nil {
		os.Exit(1)
	}
}
