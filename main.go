package main

import (
	"github.com/codyps/microtime/lib/cli"
)

func main() {
	cli.Execute()
}
