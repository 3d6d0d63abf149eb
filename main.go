package main

import (
	"context"
	"os"

	"github.com/dmorgan81/logoforge/internal/command"
)

func main() {
	if err := command.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
