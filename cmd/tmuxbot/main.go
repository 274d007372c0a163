package main

import (
	"os"

	"github.com/tmuxbot/tmuxbot/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
