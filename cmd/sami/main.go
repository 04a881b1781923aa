package main

import "github.com/JohanGylseth/SAMI/cmd/sami/root"

func main() {
	root.Execute()
}
