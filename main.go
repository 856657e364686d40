package main

import "backend-games/cmd"

func main() {
	cmd.Execute()
}
