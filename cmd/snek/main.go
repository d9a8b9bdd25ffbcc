package main

import "github.com/battlesnakeio/snek/cmd/snek/commands"

func main() {
	commands.Execute()
}
