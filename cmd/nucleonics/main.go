package main

import "nucleonics/internal/cli"

func main() {
	cli.Execute()
}
