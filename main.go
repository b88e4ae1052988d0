package main

import "github.com/asttools/treediff/cmd"

func main() {
	cmd.Execute()
}
