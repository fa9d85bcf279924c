package main

import "indigo-pricing/cmd/indigo/commands"

func main() {
	commands.Execute()
}
