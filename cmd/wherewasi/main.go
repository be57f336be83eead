package main

import "github.com/strrl/wherewasi/cmd/wherewasi/commands"

func main() {
	commands.Execute()
}
