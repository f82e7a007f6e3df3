package main

import (
	"os"

	"github.com/josephlewis42/minish/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
