package main

import (
	"travel/cmd/console/commands"
	"travel/di"
)

func main() {
	commands.Execute(di.InitializeConsole)
}
