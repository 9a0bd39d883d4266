package main

import (
	"os"

	"github.com/greendaybank/greenday-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
