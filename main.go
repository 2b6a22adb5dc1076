package main

import "fusus-cli/cmd"

func main() {
	cmd.Execute()
}
