package main

import "csmap/internal/cli"

func main() {
	cli.Execute()
}
