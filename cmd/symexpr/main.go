package main

import "github.com/njchilds90/symexpr/cmd/symexpr/commands"

func main() {
	commands.Execute()
}
