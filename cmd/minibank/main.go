package main

import "github.com/minibank/minibank/cmd/minibank/commands"

func main() {
	commands.Execute()
}
