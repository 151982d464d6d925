package main

import "github.com/CR-AudioViz-AI/crav-games/cmd/crav/root"

func main() {
	root.Execute()
}
