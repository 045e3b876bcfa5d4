package main

import "github.com/pfrederiksen/golf-catalog/internal/cli"

func main() {
	cli.Execute()
}
