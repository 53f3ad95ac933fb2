package main

import "idealab/cmd/idealab/root"

func main() {
	root.Execute()
}
