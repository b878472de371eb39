package main

import "github.com/agentflare-ai/jsondiffpatch/cmd/jsondiffpatch/commands"

func main() {
	commands.Execute()
}
