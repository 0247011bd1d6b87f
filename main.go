package main

import "github.com/dotupsh/dotup-cli/cmd"

func main() {
	cmd.Execute()
}
