package main

import "github.com/compozy/tokencase/cmd/tokencase/commands"

func main() {
	commands.Execute()
}
