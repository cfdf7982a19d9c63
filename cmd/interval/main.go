package main

import (
	"os"

	"github.com/vipcxj/interval/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
