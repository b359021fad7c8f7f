package main

import "github.com/notargets/mesh2inp/cmd"

func main() {
	cmd.Execute()
}
