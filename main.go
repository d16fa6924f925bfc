package main

import "github.com/Sena-ops/thoughtscan/cmd"

func main() {
	cmd.Execute()
}
