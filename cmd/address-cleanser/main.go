package main

import (
	"os"

	"github.com/address-cleanser/address-cleanser/internal/cli"
	"github.com/address-cleanser/address-cleanser/internal/logger"
)

func main() {
	err := cli.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
