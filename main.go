package main

import (
	"os"

	"github.com/ycchou/corrnet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
