package main

import (
	"os"

	"github.com/albertoruibal/kotlin/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
