package main

import (
	"os"

	"github.com/livp123/grouplog/cmd/grouplog/commands"
	"github.com/livp123/grouplog/internal/utils/logger"
)

func main() {
	err := commands.RootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
