package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/abcdlsj/devcon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Error("Command failed", "err", err)
		os.Exit(1)
	}
}
