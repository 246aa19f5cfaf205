package main

import "github.com/arja-subbalaxmi/Progress-Tracker/cmd/pt/root"

func main() {
	root.Execute()
}
