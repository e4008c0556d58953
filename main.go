package main

import (
	"os"

	"github.com/smahajan/openbook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
