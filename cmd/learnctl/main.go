package main

import "github.com/lalitgarg2005/CodeGurus/internal/cli"

func main() {
	cli.Execute()
}
