package main

import "github.com/pr0digi/jspass-cli/cmd"

func main() {
	cmd.Execute()
}
