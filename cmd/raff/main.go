package main

import "raff/cmd/raff/cmd"

func main() {
	cmd.Execute()
}
