package main

import "dropship-sync/cmd"

func main() {
	cmd.Execute()
}
